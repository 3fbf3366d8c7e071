//go:build unit

package middleware_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestCrossOriginProtection(t *testing.T) {
	cfg := config.NewTestConfig()
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := middleware.NewCrossOriginProtection(cfg.Session, "/stripe/webhook")(ok)

	tests := []struct {
		name    string
		method  string
		path    string
		headers map[string]string
		want    int
	}{
		{
			name:    "same-origin post",
			method:  http.MethodPost,
			path:    "/login",
			headers: map[string]string{"Sec-Fetch-Site": "same-origin"},
			want:    http.StatusOK,
		},
		{
			name:    "cross-site post",
			method:  http.MethodPost,
			path:    "/login",
			headers: map[string]string{"Sec-Fetch-Site": "cross-site", "Origin": "https://evil.example"},
			want:    http.StatusForbidden,
		},
		{
			name:    "cross-site get is safe",
			method:  http.MethodGet,
			path:    "/restaurants",
			headers: map[string]string{"Sec-Fetch-Site": "cross-site"},
			want:    http.StatusOK,
		},
		{
			name:   "non-browser client without fetch metadata",
			method: http.MethodPost,
			path:   "/api/token",
			want:   http.StatusOK,
		},
		{
			name:    "webhook path is never checked",
			method:  http.MethodPost,
			path:    "/stripe/webhook",
			headers: map[string]string{"Sec-Fetch-Site": "cross-site", "Origin": "https://api.stripe.com"},
			want:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := stdhttptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := stdhttptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), "不正なリクエストです")
			}
		})
	}
}
