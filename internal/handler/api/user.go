package api

import (
	"net/http"

	"nagoyameshi/internal/domain/access"
	reqdto "nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/handler/respond"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	q       queries.MemberQueries
	cmds    commands.MemberCommands
	respond *respond.Responder
}

func NewUserHandler(q queries.MemberQueries, cmds commands.MemberCommands, responder *respond.Responder) *UserHandler {
	return &UserHandler{q: q, cmds: cmds, respond: responder}
}

// @Summary Own profile
// @Tags user
// @Produce json
// @Success 200 {object} respond.PageBody{data=resdto.ProfileResponse}
// @Failure 302 {object} respond.RedirectBody
// @Router /user [get]
func (h *UserHandler) Index(c *gin.Context) {
	memberID, _ := middleware.GetMemberID(c)
	view, err := h.q.Profile(c.Request.Context(), memberID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.renderProfile(c, view)
}

// @Summary Profile edit form
// @Description Only the owner may open it; anyone else is sent back to their own profile.
// @Tags user
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} respond.PageBody{data=resdto.ProfileResponse}
// @Failure 302 {object} respond.RedirectBody
// @Router /user/{id}/edit [get]
func (h *UserHandler) Edit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.ProfileForEdit(c.Request.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.renderProfile(c, view)
}

// @Summary Update profile
// @Tags user
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body reqdto.ProfileRequest true "Profile"
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 422 {object} httperr.Response
// @Router /user/{id} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	profile, err := req.ToDomain()
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), middleware.GetPrincipal(c), id, profile); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{Route: access.RouteUser}, "会員情報を編集しました。", nil)
}

func (h *UserHandler) renderProfile(c *gin.Context, view *queries.UserView) {
	res, err := resdto.FromUserView(view)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, res)
}
