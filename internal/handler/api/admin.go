package api

import (
	reqdto "nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/handler/respond"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard and the member directory.
type AdminHandler struct {
	site    queries.SiteQueries
	members queries.MemberQueries
	respond *respond.Responder
}

func NewAdminHandler(site queries.SiteQueries, members queries.MemberQueries, responder *respond.Responder) *AdminHandler {
	return &AdminHandler{site: site, members: members, respond: responder}
}

// @Summary Admin dashboard
// @Description Member and restaurant totals plus this month's sales
// @Tags admin
// @Produce json
// @Success 200 {object} respond.PageBody{data=queries.DashboardView}
// @Failure 302 {object} respond.RedirectBody
// @Router /admin/home [get]
func (h *AdminHandler) Home(c *gin.Context) {
	view, err := h.site.Dashboard(c.Request.Context())
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, view)
}

// @Summary Member directory
// @Tags admin
// @Produce json
// @Param keyword query string false "Matches name or kana"
// @Param page query int false "Page number"
// @Success 200 {object} respond.PageBody{data=queries.Page[queries.UserView]}
// @Failure 302 {object} respond.RedirectBody
// @Router /admin/users [get]
func (h *AdminHandler) Users(c *gin.Context) {
	var q reqdto.KeywordQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	page, err := h.members.Directory(c.Request.Context(), q.Keyword, q.Page)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, page)
}

// @Summary Member detail
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} respond.PageBody{data=queries.UserView}
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id} [get]
func (h *AdminHandler) User(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	view, err := h.members.Member(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, view)
}
