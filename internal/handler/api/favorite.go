package api

import (
	"net/http"

	"nagoyameshi/internal/domain/access"
	reqdto "nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/handler/respond"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	q       queries.MemberQueries
	cmds    commands.MemberCommands
	respond *respond.Responder
}

func NewFavoriteHandler(q queries.MemberQueries, cmds commands.MemberCommands, responder *respond.Responder) *FavoriteHandler {
	return &FavoriteHandler{q: q, cmds: cmds, respond: responder}
}

// @Summary Favorite restaurants
// @Tags favorites
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} respond.PageBody{data=queries.Page[queries.FavoriteView]}
// @Failure 302 {object} respond.RedirectBody
// @Router /favorites [get]
func (h *FavoriteHandler) Index(c *gin.Context) {
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	memberID, _ := middleware.GetMemberID(c)
	page, err := h.q.Favorites(c.Request.Context(), memberID, q.Page)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, page)
}

// @Summary Add favorite
// @Description Adding an existing favorite succeeds without change.
// @Tags favorites
// @Produce json
// @Param restaurant_id path int true "Restaurant ID"
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Router /favorites/{restaurant_id} [post]
func (h *FavoriteHandler) Store(c *gin.Context) {
	restaurantID, ok := idParam(c, "restaurant_id")
	if !ok {
		return
	}
	memberID, _ := middleware.GetMemberID(c)
	if err := h.cmds.AddFavorite(c.Request.Context(), memberID, restaurantID); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{}, "お気に入りに追加しました。", nil)
}

// @Summary Remove favorite
// @Description Removing a restaurant that is not a favorite succeeds without change.
// @Tags favorites
// @Produce json
// @Param restaurant_id path int true "Restaurant ID"
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Router /favorites/{restaurant_id} [delete]
func (h *FavoriteHandler) Destroy(c *gin.Context) {
	restaurantID, ok := idParam(c, "restaurant_id")
	if !ok {
		return
	}
	memberID, _ := middleware.GetMemberID(c)
	if err := h.cmds.RemoveFavorite(c.Request.Context(), memberID, restaurantID); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{}, "お気に入りを解除しました。", nil)
}
