//go:build unit

package api_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"strings"
	"testing"

	"nagoyameshi/internal/domain/subscription"
	"nagoyameshi/internal/handler/api"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/handler/respond"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"
	"nagoyameshi/tests/common/httptest"
	commandsmock "nagoyameshi/tests/mock/commands"
	queriesmock "nagoyameshi/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SubscriptionHandlerTestSuite struct {
	suite.Suite
	ts           *testServer
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSubscriptionCommands
	mockQueries  *queriesmock.MockSubscriptionQueries
}

func (s *SubscriptionHandlerTestSuite) SetupTest() {
	s.ts = newTestServer()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSubscriptionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSubscriptionQueries(s.mockCtrl)
	h := api.NewSubscriptionHandler(s.mockQueries, s.mockCommands, s.ts.responder)

	s.ts.actAs(member)
	r := s.ts.engine
	r.GET("/subscription/create", h.Create)
	r.POST("/subscription", h.Store)
	r.GET("/subscription/edit", h.Edit)
	r.PATCH("/subscription", h.Update)
	r.GET("/subscription/cancel", h.Cancel)
	r.DELETE("/subscription", h.Destroy)
	r.POST("/stripe/webhook", h.Webhook)
}

func (s *SubscriptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSubscriptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionHandlerTestSuite))
}

func (s *SubscriptionHandlerTestSuite) TestCreate() {
	s.mockCommands.EXPECT().SetupIntent(gomock.Any(), member.ID).Return("seti_secret", nil)

	rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodGet, "/subscription/create", nil, "")

	var body struct {
		Data resdto.SetupIntentResponse `json:"data"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("seti_secret", body.Data.ClientSecret)
}

func (s *SubscriptionHandlerTestSuite) TestStore() {
	s.Run("success: 201 and back to home", func() {
		s.mockCommands.EXPECT().Subscribe(gomock.Any(), member.ID, "pm_card_visa").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPost, "/subscription",
			map[string]string{"payment_method_id": "pm_card_visa"}, "")

		var body respond.DoneBody
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("/", body.RedirectTo)
		s.Equal("有料プランへの登録が完了しました。", body.Message)
	})

	s.Run("error: payment method is required", func() {
		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPost, "/subscription", map[string]string{}, "")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
		s.Equal("required", body.Detail["payment_method_id"])
	})

	s.Run("error: provider failure", func() {
		s.mockCommands.EXPECT().Subscribe(gomock.Any(), member.ID, "pm_card_declined").
			Return(errs.Wrap(errs.ErrBillingFailed, "card declined"))

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPost, "/subscription",
			map[string]string{"payment_method_id": "pm_card_declined"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "決済処理に失敗しました")
	})
}

func (s *SubscriptionHandlerTestSuite) TestEdit() {
	view := &queries.SubscriptionView{Status: "active", CardBrand: "visa", CardLast4: "4242"}
	s.mockQueries.EXPECT().Current(gomock.Any(), member.ID).Return(view, nil)
	s.mockCommands.EXPECT().SetupIntent(gomock.Any(), member.ID).Return("seti_secret", nil)

	rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodGet, "/subscription/edit", nil, "")

	var body struct {
		Data resdto.SubscriptionResponse `json:"data"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("4242", body.Data.Subscription.CardLast4)
	s.Equal("seti_secret", body.Data.ClientSecret)
}

func (s *SubscriptionHandlerTestSuite) TestUpdate() {
	s.mockCommands.EXPECT().UpdatePaymentMethod(gomock.Any(), member.ID, "pm_new").Return(nil)

	rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPatch, "/subscription",
		map[string]string{"payment_method_id": "pm_new"}, "")

	var body respond.DoneBody
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("お支払い方法を変更しました。", body.Message)
}

func (s *SubscriptionHandlerTestSuite) TestDestroy() {
	s.Run("success: canceled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), member.ID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodDelete, "/subscription", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: canceling twice conflicts", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), member.ID).Return(subscription.ErrAlreadyCanceled)

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodDelete, "/subscription", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *SubscriptionHandlerTestSuite) webhook(payload, signature string) *stdhttptest.ResponseRecorder {
	req := stdhttptest.NewRequest(http.MethodPost, "/stripe/webhook", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", signature)
	w := stdhttptest.NewRecorder()
	s.ts.handler.ServeHTTP(w, req)
	return w
}

func (s *SubscriptionHandlerTestSuite) TestWebhook() {
	payload := `{"type":"customer.subscription.deleted"}`

	s.Run("success: raw payload and signature are passed through", func() {
		s.mockCommands.EXPECT().SyncFromProvider(gomock.Any(), []byte(payload), "t=1,v1=abc").Return(nil)

		rec := s.webhook(payload, "t=1,v1=abc")

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body["received"])
	})

	s.Run("error: bad signature is 400", func() {
		s.mockCommands.EXPECT().SyncFromProvider(gomock.Any(), gomock.Any(), "forged").
			Return(errs.Mark(errs.New("signature mismatch"), commands.ErrInvalidWebhook))

		rec := s.webhook(payload, "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "不正なWebhookです")
	})
}
