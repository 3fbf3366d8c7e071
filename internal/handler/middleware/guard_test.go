//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/handler/respond"
	"nagoyameshi/tests/common/httptest"
	accessmock "nagoyameshi/tests/mock/access"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuardMiddlewareTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockResolver *accessmock.MockEntitlementResolver
	handler      http.Handler
	principal    access.Principal
}

func (s *GuardMiddlewareTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockResolver = accessmock.NewMockEntitlementResolver(s.mockCtrl)
	s.principal = access.Guest{}

	r, sm, h := newEngine()
	s.handler = h
	responder := respond.NewResponder(sm)
	guard := middleware.NewGuardMiddleware(access.NewGuard(s.mockResolver), responder)

	r.Use(func(c *gin.Context) {
		middleware.SetPrincipal(c, s.principal)
		c.Next()
	})
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r.GET("/restaurants", guard.Require(access.MemberPublic), ok)
	r.GET("/login", guard.Require(access.GuestOnly), ok)
	r.GET("/user", guard.Require(access.MemberAuthenticated), ok)
	r.GET("/favorites", guard.Require(access.MemberPremium), ok)
	r.GET("/subscription/create", guard.Require(access.SubscriptionOnboarding), ok)
	r.GET("/admin/home", guard.Require(access.AdminOnly), ok)
	r.GET("/admin/login", guard.Require(access.AdminGuestOnly), ok)
	r.GET("/flash", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"flash": responder.PopFlash(c)}) })
}

func (s *GuardMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuardMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(GuardMiddlewareTestSuite))
}

func (s *GuardMiddlewareTestSuite) TestRedirects() {
	member := access.Member{ID: 1, Email: "taro@example.com"}
	admin := access.Administrator{ID: 9, Email: "admin@example.com"}

	tests := []struct {
		name      string
		principal access.Principal
		path      string
		premium   *bool
		location  string
		reason    access.Reason
	}{
		{name: "guest on member page", principal: access.Guest{}, path: "/user", location: "/login", reason: access.ReasonUnauthenticated},
		{name: "guest on premium page", principal: access.Guest{}, path: "/favorites", location: "/login", reason: access.ReasonUnauthenticated},
		{name: "guest on admin page", principal: access.Guest{}, path: "/admin/home", location: "/admin/login", reason: access.ReasonUnauthenticated},
		{name: "admin on public member page", principal: admin, path: "/restaurants", location: "/admin/home", reason: access.ReasonWrongRealm},
		{name: "admin on admin login", principal: admin, path: "/admin/login", location: "/admin/home", reason: access.ReasonAlreadyAuthenticated},
		{name: "member on login", principal: member, path: "/login", location: "/", reason: access.ReasonAlreadyAuthenticated},
		{name: "member on admin page", principal: member, path: "/admin/home", location: "/admin/login", reason: access.ReasonUnauthenticated},
		{name: "free member on premium page", principal: member, path: "/favorites", premium: boolPtr(false), location: "/subscription/create", reason: access.ReasonInsufficientEntitlement},
		{name: "premium member on onboarding", principal: member, path: "/subscription/create", premium: boolPtr(true), location: "/subscription/edit", reason: access.ReasonAlreadySubscribed},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.principal = tt.principal
			if tt.premium != nil {
				ent := access.Free
				if *tt.premium {
					ent = access.Premium
				}
				s.mockResolver.EXPECT().Resolve(gomock.Any(), member.ID).Return(ent, nil).Times(1)
			}

			b := httptest.NewBrowser(s.T(), s.handler)
			rec := b.Do(http.MethodGet, tt.path, nil)

			body := httptest.AssertRedirect(s.T(), rec, tt.location)
			s.Equal(string(tt.reason), body.Reason)

			var flash struct {
				Flash string `json:"flash"`
			}
			httptest.AssertSuccessResponse(s.T(), b.Do(http.MethodGet, "/flash", nil), http.StatusOK, &flash)
			s.NotEmpty(flash.Flash)
		})
	}
}

func (s *GuardMiddlewareTestSuite) TestAllows() {
	member := access.Member{ID: 1, Email: "taro@example.com"}

	s.Run("guest browses public pages", func() {
		s.principal = access.Guest{}
		rec := httptest.PerformRequest(s.T(), s.handler, http.MethodGet, "/restaurants", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("entitlement is not looked up for ungated classes", func() {
		s.principal = member
		rec := httptest.PerformRequest(s.T(), s.handler, http.MethodGet, "/user", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("entitlement is resolved on every gated request", func() {
		s.principal = member
		s.mockResolver.EXPECT().Resolve(gomock.Any(), member.ID).Return(access.Premium, nil).Times(1)
		s.mockResolver.EXPECT().Resolve(gomock.Any(), member.ID).Return(access.Free, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.handler, http.MethodGet, "/favorites", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.handler, http.MethodGet, "/favorites", nil, "")
		httptest.AssertRedirect(s.T(), rec, "/subscription/create")
	})

	s.Run("admin reaches admin pages", func() {
		s.principal = access.Administrator{ID: 9}
		rec := httptest.PerformRequest(s.T(), s.handler, http.MethodGet, "/admin/home", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *GuardMiddlewareTestSuite) TestResolverFailure() {
	s.principal = access.Member{ID: 1}
	s.mockResolver.EXPECT().Resolve(gomock.Any(), int64(1)).Return(access.Free, errors.New("db down"))

	rec := httptest.PerformRequest(s.T(), s.handler, http.MethodGet, "/favorites", nil, "")

	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	s.Empty(rec.Header().Get("Location"))
}

func boolPtr(b bool) *bool { return &b }
