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

type ReviewHandler struct {
	q           queries.ReviewQueries
	restaurants queries.RestaurantQueries
	cmds        commands.MemberCommands
	respond     *respond.Responder
}

func NewReviewHandler(q queries.ReviewQueries, restaurants queries.RestaurantQueries, cmds commands.MemberCommands, responder *respond.Responder) *ReviewHandler {
	return &ReviewHandler{q: q, restaurants: restaurants, cmds: cmds, respond: responder}
}

func reviewsOf(restaurantID int64) access.Target {
	return access.Target{Route: access.RouteRestaurantReviews, ID: restaurantID}
}

// @Summary Restaurant reviews
// @Description Free members see the latest three; premium members page through all of them, five at a time.
// @Tags reviews
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param page query int false "Page number"
// @Success 200 {object} respond.PageBody{data=queries.ReviewListing}
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{id}/reviews [get]
func (h *ReviewHandler) Index(c *gin.Context) {
	restaurantID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	memberID, _ := middleware.GetMemberID(c)
	listing, err := h.q.List(c.Request.Context(), memberID, restaurantID, q.Page)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, listing)
}

// @Summary Review form
// @Tags reviews
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} respond.PageBody{data=resdto.ReviewFormResponse}
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{id}/reviews/create [get]
func (h *ReviewHandler) Create(c *gin.Context) {
	restaurantID, ok := idParam(c, "id")
	if !ok {
		return
	}
	r, err := h.restaurants.Summary(c.Request.Context(), restaurantID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, &resdto.ReviewFormResponse{Restaurant: r})
}

// @Summary Post review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param request body reqdto.ReviewRequest true "Review"
// @Success 201 {object} respond.DoneBody{data=resdto.CreatedResponse}
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /restaurants/{id}/reviews [post]
func (h *ReviewHandler) Store(c *gin.Context) {
	restaurantID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	memberID, _ := middleware.GetMemberID(c)
	id, err := h.cmds.CreateReview(c.Request.Context(), memberID, restaurantID, req.ToInput())
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusCreated, reviewsOf(restaurantID), "レビューを投稿しました。", &resdto.CreatedResponse{ID: id})
}

// @Summary Review edit form
// @Tags reviews
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param review_id path int true "Review ID"
// @Success 200 {object} respond.PageBody{data=resdto.ReviewFormResponse}
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{id}/reviews/{review_id}/edit [get]
func (h *ReviewHandler) Edit(c *gin.Context) {
	restaurantID, ok := idParam(c, "id")
	if !ok {
		return
	}
	reviewID, ok := idParam(c, "review_id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	r, err := h.restaurants.Summary(ctx, restaurantID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	rv, err := h.q.ForEdit(ctx, middleware.GetPrincipal(c), restaurantID, reviewID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, &resdto.ReviewFormResponse{Restaurant: r, Review: rv})
}

// @Summary Update review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param review_id path int true "Review ID"
// @Param request body reqdto.ReviewRequest true "Review"
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /restaurants/{id}/reviews/{review_id} [patch]
func (h *ReviewHandler) Update(c *gin.Context) {
	restaurantID, ok := idParam(c, "id")
	if !ok {
		return
	}
	reviewID, ok := idParam(c, "review_id")
	if !ok {
		return
	}
	var req reqdto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	err := h.cmds.UpdateReview(c.Request.Context(), middleware.GetPrincipal(c), restaurantID, reviewID, req.ToInput())
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, reviewsOf(restaurantID), "レビューを編集しました。", nil)
}

// @Summary Delete review
// @Tags reviews
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param review_id path int true "Review ID"
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{id}/reviews/{review_id} [delete]
func (h *ReviewHandler) Destroy(c *gin.Context) {
	restaurantID, ok := idParam(c, "id")
	if !ok {
		return
	}
	reviewID, ok := idParam(c, "review_id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteReview(c.Request.Context(), middleware.GetPrincipal(c), restaurantID, reviewID); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, reviewsOf(restaurantID), "レビューを削除しました。", nil)
}
