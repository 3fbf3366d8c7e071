//go:build unit

package middleware_test

import (
	"net/http"
	"strconv"
	"testing"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/infra/session"
	"nagoyameshi/internal/pkg/cookie"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/tests/common/httptest"
	queriesmock "nagoyameshi/tests/mock/queries"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IdentityMiddlewareTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockIdentities *queriesmock.MockIdentityQueries
	sessions       *scs.SessionManager
	handler        http.Handler
}

func (s *IdentityMiddlewareTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockIdentities = queriesmock.NewMockIdentityQueries(s.mockCtrl)

	r, sm, h := newEngine()
	s.sessions = sm
	s.handler = h

	seed := func(key string) gin.HandlerFunc {
		return func(c *gin.Context) {
			id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
			sm.Put(c.Request.Context(), key, id)
			c.Status(http.StatusNoContent)
		}
	}
	r.POST("/seed/member/:id", seed(session.KeyMemberID))
	r.POST("/seed/admin/:id", seed(session.KeyAdminID))

	resolved := r.Group("/", middleware.NewIdentityMiddleware(s.mockIdentities, sm).Resolve())
	resolved.GET("/who", principalEcho)
	resolved.GET("/keys", func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"member": sm.Exists(ctx, session.KeyMemberID),
			"admin":  sm.Exists(ctx, session.KeyAdminID),
		})
	})
}

func (s *IdentityMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIdentityMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(IdentityMiddlewareTestSuite))
}

func (s *IdentityMiddlewareTestSuite) who(b *httptest.Browser) echoBody {
	var body echoBody
	httptest.AssertSuccessResponse(s.T(), b.Do(http.MethodGet, "/who", nil), http.StatusOK, &body)
	return body
}

func (s *IdentityMiddlewareTestSuite) TestGuest() {
	b := httptest.NewBrowser(s.T(), s.handler)
	s.Equal(echoBody{Kind: "guest"}, s.who(b))
}

func (s *IdentityMiddlewareTestSuite) TestSession() {
	s.Run("member id resolves to a member", func() {
		b := httptest.NewBrowser(s.T(), s.handler)
		b.Do(http.MethodPost, "/seed/member/1", nil)
		s.mockIdentities.EXPECT().Member(gomock.Any(), int64(1)).Return(access.Member{ID: 1, Email: "taro@example.com"}, nil)

		s.Equal(echoBody{Kind: "member", ID: 1}, s.who(b))
	})

	s.Run("admin id resolves to an administrator", func() {
		b := httptest.NewBrowser(s.T(), s.handler)
		b.Do(http.MethodPost, "/seed/admin/9", nil)
		s.mockIdentities.EXPECT().Admin(gomock.Any(), int64(9)).Return(access.Administrator{ID: 9}, nil)

		s.Equal(echoBody{Kind: "admin", ID: 9}, s.who(b))
	})

	s.Run("stale member id is a guest and the key is dropped", func() {
		b := httptest.NewBrowser(s.T(), s.handler)
		b.Do(http.MethodPost, "/seed/member/404", nil)
		s.mockIdentities.EXPECT().Member(gomock.Any(), int64(404)).Return(access.Guest{}, nil).Times(1)

		s.Equal(echoBody{Kind: "guest"}, s.who(b))

		var keys map[string]bool
		httptest.AssertSuccessResponse(s.T(), b.Do(http.MethodGet, "/keys", nil), http.StatusOK, &keys)
		s.False(keys["member"])
	})

	s.Run("lookup failure aborts", func() {
		b := httptest.NewBrowser(s.T(), s.handler)
		b.Do(http.MethodPost, "/seed/member/1", nil)
		s.mockIdentities.EXPECT().Member(gomock.Any(), int64(1)).Return(nil, errs.New("db down"))

		rec := b.Do(http.MethodGet, "/who", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

func (s *IdentityMiddlewareTestSuite) TestToken() {
	s.Run("bearer token wins over the session", func() {
		b := httptest.NewBrowser(s.T(), s.handler)
		b.Do(http.MethodPost, "/seed/member/1", nil)
		b.SetHeader("Authorization", "Bearer admin-token")
		s.mockIdentities.EXPECT().FromToken(gomock.Any(), "admin-token").Return(access.Administrator{ID: 9}, nil)

		s.Equal(echoBody{Kind: "admin", ID: 9}, s.who(b))
	})

	s.Run("access_token cookie is read like a bearer token", func() {
		s.mockIdentities.EXPECT().FromToken(gomock.Any(), "cookie-token").Return(access.Member{ID: 3}, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.handler, http.MethodGet, "/who", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}, "")

		var body echoBody
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(echoBody{Kind: "member", ID: 3}, body)
	})

	s.Run("invalid token falls back to the session", func() {
		b := httptest.NewBrowser(s.T(), s.handler)
		b.Do(http.MethodPost, "/seed/member/1", nil)
		b.SetHeader("Authorization", "Bearer expired")
		s.mockIdentities.EXPECT().FromToken(gomock.Any(), "expired").Return(nil, errs.New("token expired"))
		s.mockIdentities.EXPECT().Member(gomock.Any(), int64(1)).Return(access.Member{ID: 1}, nil)

		s.Equal(echoBody{Kind: "member", ID: 1}, s.who(b))
	})

	s.Run("invalid token without a session is a guest", func() {
		s.mockIdentities.EXPECT().FromToken(gomock.Any(), "garbage").Return(nil, errs.New("malformed"))

		rec := httptest.PerformRequest(s.T(), s.handler, http.MethodGet, "/who", nil, "garbage")

		var body echoBody
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("guest", body.Kind)
	})
}
