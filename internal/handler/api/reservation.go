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

var reservationsIndex = access.Target{Route: access.RouteReservations}

type ReservationHandler struct {
	q           queries.MemberQueries
	restaurants queries.RestaurantQueries
	cmds        commands.MemberCommands
	respond     *respond.Responder
}

func NewReservationHandler(q queries.MemberQueries, restaurants queries.RestaurantQueries, cmds commands.MemberCommands, responder *respond.Responder) *ReservationHandler {
	return &ReservationHandler{q: q, restaurants: restaurants, cmds: cmds, respond: responder}
}

// @Summary Own reservations
// @Description Latest reservation time first, 15 per page
// @Tags reservations
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} respond.PageBody{data=queries.Page[queries.ReservationView]}
// @Failure 302 {object} respond.RedirectBody
// @Router /reservations [get]
func (h *ReservationHandler) Index(c *gin.Context) {
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	memberID, _ := middleware.GetMemberID(c)
	page, err := h.q.Reservations(c.Request.Context(), memberID, q.Page)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, page)
}

// @Summary Reservation form
// @Tags reservations
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} respond.PageBody{data=resdto.ReservationFormResponse}
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{id}/reservations/create [get]
func (h *ReservationHandler) Create(c *gin.Context) {
	restaurantID, ok := idParam(c, "id")
	if !ok {
		return
	}
	r, err := h.restaurants.Summary(c.Request.Context(), restaurantID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, &resdto.ReservationFormResponse{Restaurant: r})
}

// @Summary Make reservation
// @Description Date and time are read in the application time zone. Capacity is not checked.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} respond.DoneBody{data=resdto.CreatedResponse}
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /restaurants/{id}/reservations [post]
func (h *ReservationHandler) Store(c *gin.Context) {
	restaurantID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	memberID, _ := middleware.GetMemberID(c)
	id, err := h.cmds.CreateReservation(c.Request.Context(), memberID, restaurantID, req.ToDomain())
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusCreated, reservationsIndex, "予約が完了しました。", &resdto.CreatedResponse{ID: id})
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Destroy(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.CancelReservation(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, reservationsIndex, "予約をキャンセルしました。", nil)
}
