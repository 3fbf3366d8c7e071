//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// executes HTTP request with optional bearer authorization
func PerformRequest(t *testing.T, h http.Handler, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	req := newRequest(t, method, path, body)
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// performs HTTP request with cookies support
func PerformRequestWithCookies(t *testing.T, h http.Handler, method, path string, body any, cookies []*http.Cookie, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	req := newRequest(t, method, path, body)
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// Browser keeps cookies between requests so a session survives across calls.
type Browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
	headers map[string]string
}

func NewBrowser(t *testing.T, h http.Handler) *Browser {
	return &Browser{t: t, handler: h, cookies: map[string]*http.Cookie{}, headers: map[string]string{}}
}

// SetHeader adds a header sent with every following request.
func (b *Browser) SetHeader(key, value string) {
	b.headers[key] = value
}

func (b *Browser) Do(method, path string, body any) *httptest.ResponseRecorder {
	b.t.Helper()

	req := newRequest(b.t, method, path, body)
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return w
}

func (b *Browser) Cookie(name string) *http.Cookie {
	return b.cookies[name]
}

// extracts specific cookie by name from response
func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
