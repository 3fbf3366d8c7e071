//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/handler/api"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/handler/respond"
	"nagoyameshi/internal/infra/session"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/pkg/cookie"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/tests/common/builder"
	"nagoyameshi/tests/common/httptest"
	"nagoyameshi/tests/common/testutil"
	commandsmock "nagoyameshi/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const sessionCookie = "nagoyameshi_session"

type AuthHandlerTestSuite struct {
	suite.Suite
	ts       *testServer
	mockCtrl *gomock.Controller
	mockAuth *commandsmock.MockAuthCommands
}

// sessionIDs is what the /whoami route reports back.
type sessionIDs struct {
	MemberID int64 `json:"member_id"`
	AdminID  int64 `json:"admin_id"`
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.ts = newTestServer()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthCommands(s.mockCtrl)
	h := api.NewAuthHandler(s.mockAuth, s.ts.sessions, s.ts.responder, config.NewTestConfig())

	r := s.ts.engine
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.POST("/logout", h.Logout)
	r.POST("/admin/login", h.AdminLogin)
	r.POST("/admin/logout", h.AdminLogout)
	r.POST("/api/token", h.IssueMemberToken)
	r.POST("/api/admin/token", h.IssueAdminToken)
	r.GET("/whoami", func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, sessionIDs{
			MemberID: s.ts.sessions.GetInt64(ctx, session.KeyMemberID),
			AdminID:  s.ts.sessions.GetInt64(ctx, session.KeyAdminID),
		})
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) whoami(b *httptest.Browser) sessionIDs {
	var ids sessionIDs
	rec := b.Do(http.MethodGet, "/whoami", nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ids)
	return ids
}

func (s *AuthHandlerTestSuite) TestLogin() {
	login := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: member id lands in a fresh session", func() {
		b := httptest.NewBrowser(s.T(), s.ts.handler)
		s.mockAuth.EXPECT().AuthenticateMember(gomock.Any(), login.Email, login.Password).Return(member, nil)

		rec := b.Do(http.MethodPost, "/login", login)

		var body respond.DoneBody
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("/", body.RedirectTo)
		s.Require().NotNil(b.Cookie(sessionCookie))
		s.Equal(sessionIDs{MemberID: member.ID}, s.whoami(b))
	})

	s.Run("success: session token changes on every login", func() {
		b := httptest.NewBrowser(s.T(), s.ts.handler)
		s.mockAuth.EXPECT().AuthenticateMember(gomock.Any(), gomock.Any(), gomock.Any()).Return(member, nil).Times(2)

		b.Do(http.MethodPost, "/login", login)
		before := b.Cookie(sessionCookie)
		s.Require().NotNil(before)
		b.Do(http.MethodPost, "/login", login)
		after := b.Cookie(sessionCookie)

		s.Require().NotNil(after)
		s.NotEqual(before.Value, after.Value)
	})

	s.Run("error: wrong credentials are a validation failure", func() {
		b := httptest.NewBrowser(s.T(), s.ts.handler)
		s.mockAuth.EXPECT().AuthenticateMember(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(access.Member{}, commands.ErrInvalidCredentials)

		rec := b.Do(http.MethodPost, "/login", login)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "メールアドレスまたはパスワードが正しくありません")
		s.Equal(sessionIDs{}, s.whoami(b))
	})

	s.Run("error: missing password never reaches the use case", func() {
		b := httptest.NewBrowser(s.T(), s.ts.handler)
		rec := b.Do(http.MethodPost, "/login", testutil.DtoMap(s.T(), login, testutil.Field("password", nil)))

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
		s.Equal("required", body.Detail["password"])
	})
}

func (s *AuthHandlerTestSuite) TestRealmSwitch() {
	b := httptest.NewBrowser(s.T(), s.ts.handler)
	login := builder.NewAuthBuilder().BuildDTO()

	s.mockAuth.EXPECT().AuthenticateMember(gomock.Any(), gomock.Any(), gomock.Any()).Return(member, nil)
	b.Do(http.MethodPost, "/login", login)
	s.Equal(member.ID, s.whoami(b).MemberID)

	s.mockAuth.EXPECT().AuthenticateAdmin(gomock.Any(), gomock.Any(), gomock.Any()).Return(admin, nil)
	rec := b.Do(http.MethodPost, "/admin/login", login)

	var body respond.DoneBody
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("/admin/home", body.RedirectTo)
	s.Equal(sessionIDs{AdminID: admin.ID}, s.whoami(b), "admin login drops the member id")
}

func (s *AuthHandlerTestSuite) TestRegister() {
	reg := builder.NewUserBuilder().BuildRegisterDTO()

	s.Run("success: 201 and logged in", func() {
		b := httptest.NewBrowser(s.T(), s.ts.handler)
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.RegisterInput) (access.Member, error) {
				s.Equal(reg.Email, in.Profile.Email)
				s.Equal(reg.Password, in.Password)
				return access.Member{ID: 5, Email: in.Profile.Email}, nil
			})

		rec := b.Do(http.MethodPost, "/register", reg)

		var body struct {
			Message string                 `json:"message"`
			Data    resdto.CreatedResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(5), body.Data.ID)
		s.Equal(int64(5), s.whoami(b).MemberID)
	})

	s.Run("error: password too short", func() {
		b := httptest.NewBrowser(s.T(), s.ts.handler)
		rec := b.Do(http.MethodPost, "/register", testutil.DtoMap(s.T(), reg,
			testutil.Field("password", "short"), testutil.Field("password_confirmation", "short")))

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
		s.Contains(body.Detail, "password")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	b := httptest.NewBrowser(s.T(), s.ts.handler)
	s.mockAuth.EXPECT().AuthenticateMember(gomock.Any(), gomock.Any(), gomock.Any()).Return(member, nil)
	b.Do(http.MethodPost, "/login", builder.NewAuthBuilder().BuildDTO())

	rec := b.Do(http.MethodPost, "/logout", nil)

	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	s.Equal(sessionIDs{}, s.whoami(b))
}

func (s *AuthHandlerTestSuite) TestIssueMemberToken() {
	login := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: token in body and cookie", func() {
		s.mockAuth.EXPECT().AuthenticateMember(gomock.Any(), login.Email, login.Password).Return(member, nil)
		s.mockAuth.EXPECT().IssueToken(member).Return(&commands.IssuedToken{AccessToken: "tok", ExpiresIn: 3600}, nil)

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPost, "/api/token", login, "")

		var body resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("tok", body.AccessToken)
		s.Equal("Bearer", body.TokenType)
		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("tok", c.Value)
	})

	s.Run("success: admin token comes from the admin table", func() {
		s.mockAuth.EXPECT().AuthenticateAdmin(gomock.Any(), gomock.Any(), gomock.Any()).Return(admin, nil)
		s.mockAuth.EXPECT().IssueToken(admin).Return(&commands.IssuedToken{AccessToken: "adm", ExpiresIn: 60}, nil)

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPost, "/api/admin/token", login, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: bad credentials issue nothing", func() {
		s.mockAuth.EXPECT().AuthenticateMember(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(access.Member{}, commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPost, "/api/token", login, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
		s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})
}
