//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/tests/common/authtest"
	"nagoyameshi/tests/common/builder"
	"nagoyameshi/tests/common/dbtest"
	"nagoyameshi/tests/common/httptest"
	"nagoyameshi/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	adminEmail  = "admin@example.com"
	memberEmail = "taro.samurai@example.com"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestAdminLogin() {
	s.Run("guest sees the admin login page", func() {
		b := httptest.NewBrowser(s.T(), s.Handler)

		w := b.Do(http.MethodGet, "/admin/login", nil)

		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("valid credentials open the admin home", func() {
		dbtest.CreateAdmin(s.T(), s.DB, adminEmail)
		b := httptest.NewBrowser(s.T(), s.Handler)

		w := b.Do(http.MethodPost, "/admin/login", request.LoginRequest{Email: adminEmail, Password: builder.DefaultPassword})

		var body struct {
			RedirectTo string `json:"redirect_to"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal("/admin/home", body.RedirectTo)
		s.Equal(http.StatusOK, b.Do(http.MethodGet, "/admin/home", nil).Code)
	})

	s.Run("member credentials do not open the admin realm", func() {
		dbtest.CreateMember(s.T(), s.DB, memberEmail)
		b := httptest.NewBrowser(s.T(), s.Handler)

		w := b.Do(http.MethodPost, "/admin/login", request.LoginRequest{Email: memberEmail, Password: builder.DefaultPassword})

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "")
		httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, "/admin/home", nil), "/admin/login")
	})

	s.Run("logged in admin is sent away from the login page", func() {
		b, _ := authtest.AdminBrowser(s.T(), s.DB, s.Handler, adminEmail)

		httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, "/admin/login", nil), "/admin/home")
	})
}

func (s *authSuite) TestAdminOnMemberPages() {
	s.Run("admin on the top page is redirected to the admin home", func() {
		b, _ := authtest.AdminBrowser(s.T(), s.DB, s.Handler, adminEmail)

		httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, "/", nil), "/admin/home")
	})

	s.Run("admin cannot reach member-only pages", func() {
		b, _ := authtest.AdminBrowser(s.T(), s.DB, s.Handler, adminEmail)

		for _, path := range []string{"/restaurants", "/user", "/reservations", "/subscription/create"} {
			httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, path, nil), "/admin/home")
		}
	})
}

func (s *authSuite) TestMemberSession() {
	s.Run("guest is asked to log in", func() {
		b := httptest.NewBrowser(s.T(), s.Handler)

		httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, "/user", nil), "/login")
		httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, "/admin/home", nil), "/admin/login")
	})

	s.Run("denial leaves a flash for the next page", func() {
		b := httptest.NewBrowser(s.T(), s.Handler)
		httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, "/favorites", nil), "/login")

		w := b.Do(http.MethodGet, "/login", nil)

		var page struct {
			Flash string `json:"flash"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		s.NotEmpty(page.Flash)
	})

	s.Run("login then logout", func() {
		b, _ := authtest.MemberBrowser(s.T(), s.DB, s.Handler, memberEmail)
		s.Equal(http.StatusOK, b.Do(http.MethodGet, "/user", nil).Code)
		httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, "/login", nil), "/")

		authtest.Logout(s.T(), b)

		httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, "/user", nil), "/login")
	})

	s.Run("register logs the new member in", func() {
		b := httptest.NewBrowser(s.T(), s.Handler)

		w := b.Do(http.MethodPost, "/register", builder.NewUserBuilder().WithEmail("hanako@example.com").BuildRegisterDTO())

		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
		s.Equal(http.StatusOK, b.Do(http.MethodGet, "/user", nil).Code)
		httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, "/reservations", nil), "/subscription/create")
	})

	s.Run("deleted member falls back to guest", func() {
		b, id := authtest.MemberBrowser(s.T(), s.DB, s.Handler, memberEmail)
		_, err := s.DB.Exec(s.T().Context(), `DELETE FROM users WHERE id = $1`, id)
		s.Require().NoError(err)

		httptest.AssertRedirect(s.T(), b.Do(http.MethodGet, "/user", nil), "/login")
	})
}

func (s *authSuite) TestTokens() {
	s.Run("member token opens member pages", func() {
		dbtest.CreateMember(s.T(), s.DB, memberEmail)
		token := authtest.IssueMemberToken(s.T(), s.Handler, memberEmail, builder.DefaultPassword)

		w := httptest.PerformRequest(s.T(), s.Handler, http.MethodGet, "/user", nil, token)

		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("admin token is refused by member pages", func() {
		dbtest.CreateAdmin(s.T(), s.DB, adminEmail)
		w := httptest.PerformRequest(s.T(), s.Handler, http.MethodPost, "/api/admin/token",
			request.LoginRequest{Email: adminEmail, Password: builder.DefaultPassword}, "")
		var body struct {
			AccessToken string `json:"access_token"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Require().NotEmpty(body.AccessToken)

		w = httptest.PerformRequest(s.T(), s.Handler, http.MethodGet, "/user", nil, body.AccessToken)

		httptest.AssertRedirect(s.T(), w, "/admin/home")
	})

	s.Run("garbage token is a guest", func() {
		w := httptest.PerformRequest(s.T(), s.Handler, http.MethodGet, "/user", nil, "not-a-token")

		httptest.AssertRedirect(s.T(), w, "/login")
	})
}
