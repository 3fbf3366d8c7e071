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

const signatureHeader = "Stripe-Signature"

type SubscriptionHandler struct {
	q       queries.SubscriptionQueries
	cmds    commands.SubscriptionCommands
	respond *respond.Responder
}

func NewSubscriptionHandler(q queries.SubscriptionQueries, cmds commands.SubscriptionCommands, responder *respond.Responder) *SubscriptionHandler {
	return &SubscriptionHandler{q: q, cmds: cmds, respond: responder}
}

// @Summary Subscription onboarding page
// @Description Free members only; returns a setup intent secret for card entry.
// @Tags subscription
// @Produce json
// @Success 200 {object} respond.PageBody{data=resdto.SetupIntentResponse}
// @Failure 302 {object} respond.RedirectBody
// @Router /subscription/create [get]
func (h *SubscriptionHandler) Create(c *gin.Context) {
	memberID, _ := middleware.GetMemberID(c)
	secret, err := h.cmds.SetupIntent(c.Request.Context(), memberID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, &resdto.SetupIntentResponse{ClientSecret: secret})
}

// @Summary Start subscription
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentMethodRequest true "Payment method"
// @Success 201 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /subscription [post]
func (h *SubscriptionHandler) Store(c *gin.Context) {
	var req reqdto.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	memberID, _ := middleware.GetMemberID(c)
	if err := h.cmds.Subscribe(c.Request.Context(), memberID, req.PaymentMethodID); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusCreated, access.Target{Route: access.RouteHome}, "有料プランへの登録が完了しました。", nil)
}

// @Summary Payment method page
// @Tags subscription
// @Produce json
// @Success 200 {object} respond.PageBody{data=resdto.SubscriptionResponse}
// @Failure 302 {object} respond.RedirectBody
// @Router /subscription/edit [get]
func (h *SubscriptionHandler) Edit(c *gin.Context) {
	memberID, _ := middleware.GetMemberID(c)
	ctx := c.Request.Context()
	sub, err := h.q.Current(ctx, memberID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	secret, err := h.cmds.SetupIntent(ctx, memberID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, &resdto.SubscriptionResponse{Subscription: sub, ClientSecret: secret})
}

// @Summary Change payment method
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentMethodRequest true "Payment method"
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 422 {object} httperr.Response
// @Router /subscription [patch]
func (h *SubscriptionHandler) Update(c *gin.Context) {
	var req reqdto.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindFailed(c, err)
		return
	}
	memberID, _ := middleware.GetMemberID(c)
	if err := h.cmds.UpdatePaymentMethod(c.Request.Context(), memberID, req.PaymentMethodID); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{Route: access.RouteHome}, "お支払い方法を変更しました。", nil)
}

// @Summary Cancellation page
// @Tags subscription
// @Produce json
// @Success 200 {object} respond.PageBody{data=resdto.SubscriptionResponse}
// @Failure 302 {object} respond.RedirectBody
// @Router /subscription/cancel [get]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	memberID, _ := middleware.GetMemberID(c)
	sub, err := h.q.Current(c.Request.Context(), memberID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Page(c, &resdto.SubscriptionResponse{Subscription: sub})
}

// @Summary Cancel subscription
// @Tags subscription
// @Produce json
// @Success 200 {object} respond.DoneBody
// @Failure 302 {object} respond.RedirectBody
// @Failure 409 {object} httperr.Response
// @Router /subscription [delete]
func (h *SubscriptionHandler) Destroy(c *gin.Context) {
	memberID, _ := middleware.GetMemberID(c)
	if err := h.cmds.Cancel(c.Request.Context(), memberID); err != nil {
		h.respond.Error(c, err)
		return
	}
	h.respond.Done(c, http.StatusOK, access.Target{Route: access.RouteHome}, "有料プランを解約しました。", nil)
}

// @Summary Billing webhook
// @Description Applies subscription status changes pushed by the payment provider.
// @Tags subscription
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Router /stripe/webhook [post]
func (h *SubscriptionHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := h.cmds.SyncFromProvider(c.Request.Context(), payload, c.GetHeader(signatureHeader)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
