package api

import (
	"net/http"
	"time"

	"nagoyameshi/internal/domain/access"
	reqdto "nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/handler/respond"
	"nagoyameshi/internal/infra/session"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/pkg/cookie"
	"nagoyameshi/internal/usecase/commands"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth     commands.AuthCommands
	sessions *scs.SessionManager
	respond  *respond.Responder
	cookies  config.CookieConfig
}

func NewAuthHandler(auth commands.AuthCommands, sessions *scs.SessionManager, responder *respond.Responder, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		respond:  responder,
		cookies:  cfg.Cookie,
	}
}

// @Summary Login page
// @Tags auth
// @Produce json
// @Success 200 {object} respond.PageBody
// @Failure 302 {object} respond.RedirectBody
// @Router /login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.respond.Page(c, nil)
}

// @Summary Member login
// @Description Starts a member session. The session token is renewed on success.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} respond.DoneBody
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	m, err := h.auth.AuthenticateMember(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	if err := h.startSession(c, session.KeyMemberID, session.KeyAdminID, m.ID); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{Route: access.RouteHome}, "ログインしました。", nil)
}

// @Summary Registration page
// @Tags auth
// @Produce json
// @Success 200 {object} respond.PageBody
// @Router /register [get]
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	h.respond.Page(c, nil)
}

// @Summary Member registration
// @Description Creates a free member and logs them in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} respond.DoneBody{data=resdto.CreatedResponse}
// @Failure 422 {object} httperr.Response
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	m, err := h.auth.Register(c.Request.Context(), in)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	if err := h.startSession(c, session.KeyMemberID, session.KeyAdminID, m.ID); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusCreated, access.Target{Route: access.RouteHome}, "会員登録が完了しました。", &resdto.CreatedResponse{ID: m.ID})
}

// @Summary Member logout
// @Tags auth
// @Produce json
// @Success 200 {object} respond.DoneBody
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.endSession(c); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{Route: access.RouteHome}, "ログアウトしました。", nil)
}

// @Summary Admin login page
// @Tags admin
// @Produce json
// @Success 200 {object} respond.PageBody
// @Router /admin/login [get]
func (h *AuthHandler) AdminLoginPage(c *gin.Context) {
	h.respond.Page(c, nil)
}

// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} respond.DoneBody
// @Failure 422 {object} httperr.Response
// @Router /admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	adm, err := h.auth.AuthenticateAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	if err := h.startSession(c, session.KeyAdminID, session.KeyMemberID, adm.ID); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{Route: access.RouteAdminHome}, "ログインしました。", nil)
}

// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} respond.DoneBody
// @Router /admin/logout [post]
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	if err := h.endSession(c); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{Route: access.RouteAdminLogin}, "ログアウトしました。", nil)
}

// @Summary Issue member API token
// @Description Returns a bearer token for the member realm and sets the access_token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 422 {object} httperr.Response
// @Router /api/token [post]
func (h *AuthHandler) IssueMemberToken(c *gin.Context) {
	h.issueToken(c, func(req reqdto.LoginRequest) (access.Principal, error) {
		m, err := h.auth.AuthenticateMember(c.Request.Context(), req.Email, req.Password)
		return m, err
	})
}

// @Summary Issue admin API token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 422 {object} httperr.Response
// @Router /api/admin/token [post]
func (h *AuthHandler) IssueAdminToken(c *gin.Context) {
	h.issueToken(c, func(req reqdto.LoginRequest) (access.Principal, error) {
		adm, err := h.auth.AuthenticateAdmin(c.Request.Context(), req.Email, req.Password)
		return adm, err
	})
}

func (h *AuthHandler) issueToken(c *gin.Context, authenticate func(reqdto.LoginRequest) (access.Principal, error)) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	p, err := authenticate(req)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	token, err := h.auth.IssueToken(p)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	cookie.SetAccessToken(c, h.cookies, token.AccessToken, time.Duration(token.ExpiresIn)*time.Second)
	middleware.SetPrincipal(c, p)
	c.JSON(http.StatusOK, resdto.FromIssuedToken(token))
}

// startSession renews the token before storing the id; the other realm's id is dropped.
func (h *AuthHandler) startSession(c *gin.Context, key, otherKey string, id int64) error {
	ctx := c.Request.Context()
	if err := h.sessions.RenewToken(ctx); err != nil {
		return err
	}
	h.sessions.Remove(ctx, otherKey)
	h.sessions.Put(ctx, key, id)
	return nil
}

func (h *AuthHandler) endSession(c *gin.Context) error {
	cookie.ClearAccessToken(c, h.cookies)
	return h.sessions.Destroy(c.Request.Context())
}
