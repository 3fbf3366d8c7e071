//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/tests/common/builder"
	"nagoyameshi/tests/common/dbtest"
	"nagoyameshi/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

// LoginMember signs b in as a member through the session endpoint.
func LoginMember(t *testing.T, b *httptest.Browser, email, password string) {
	t.Helper()

	w := b.Do(http.MethodPost, "/login", request.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func LoginAdmin(t *testing.T, b *httptest.Browser, email, password string) {
	t.Helper()

	w := b.Do(http.MethodPost, "/admin/login", request.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

// MemberBrowser creates a member and returns a browser logged in as them.
func MemberBrowser(t *testing.T, db dbtest.DBLike, h http.Handler, email string) (*httptest.Browser, int64) {
	t.Helper()
	id := dbtest.CreateMember(t, db, email)
	b := httptest.NewBrowser(t, h)
	LoginMember(t, b, email, builder.DefaultPassword)
	return b, id
}

func AdminBrowser(t *testing.T, db dbtest.DBLike, h http.Handler, email string) (*httptest.Browser, int64) {
	t.Helper()
	id := dbtest.CreateAdmin(t, db, email)
	b := httptest.NewBrowser(t, h)
	LoginAdmin(t, b, email, builder.DefaultPassword)
	return b, id
}

// IssueMemberToken exchanges credentials for a bearer token.
func IssueMemberToken(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, h, http.MethodPost, "/api/token",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func Logout(t *testing.T, b *httptest.Browser) {
	t.Helper()

	w := b.Do(http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
