//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/domain/reservation"
	"nagoyameshi/internal/handler/api"
	"nagoyameshi/internal/handler/respond"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/queries"
	"nagoyameshi/tests/common/builder"
	"nagoyameshi/tests/common/httptest"
	"nagoyameshi/tests/common/testutil"
	commandsmock "nagoyameshi/tests/mock/commands"
	queriesmock "nagoyameshi/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	ts              *testServer
	mockCtrl        *gomock.Controller
	mockCommands    *commandsmock.MockMemberCommands
	mockQueries     *queriesmock.MockMemberQueries
	mockRestaurants *queriesmock.MockRestaurantQueries
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	s.ts = newTestServer()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMemberCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMemberQueries(s.mockCtrl)
	s.mockRestaurants = queriesmock.NewMockRestaurantQueries(s.mockCtrl)
	h := api.NewReservationHandler(s.mockQueries, s.mockRestaurants, s.mockCommands, s.ts.responder)

	s.ts.actAs(member)
	r := s.ts.engine
	r.GET("/reservations", h.Index)
	r.GET("/restaurants/:id/reservations/create", h.Create)
	r.POST("/restaurants/:id/reservations", h.Store)
	r.DELETE("/reservations/:id", h.Destroy)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestStore() {
	url := "/restaurants/100/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildRequestDTO()

	s.Run("success: 201 and the reservation list as next page", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), member.ID, int64(100), b.BuildRequest()).
			Return(int64(20), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPost, url, reqBody, "")

		var body respond.DoneBody
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("/reservations", body.RedirectTo)
		s.Equal("予約が完了しました。", body.Message)
	})

	s.Run("error: 422 on party size and missing fields", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
			field  string
		}{
			{name: "zero people", mutate: testutil.Field("number_of_people", 0), field: "number_of_people"},
			{name: "51 people", mutate: testutil.Field("number_of_people", 51), field: "number_of_people"},
			{name: "missing date", mutate: testutil.Field("reservation_date", nil), field: "reservation_date"},
			{name: "missing time", mutate: testutil.Field("reservation_time", nil), field: "reservation_time"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
				s.Contains(body.Detail, tc.field)
			})
		}
	})

	s.Run("error: an unparseable date is a validation failure", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), errs.Invalid("reservation_date", reservation.ErrInvalidDate)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPost, url, reqBody, "")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
		s.Contains(body.Detail, "reservation_date")
	})

	s.Run("error: 404 for an unknown restaurant", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), int64(999), gomock.Any()).
			Return(int64(0), errs.ErrRestaurantNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPost, "/restaurants/999/reservations", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *ReservationHandlerTestSuite) TestIndex() {
	s.Run("success: lists the member's own reservations", func() {
		view := builder.NewReservationBuilder().BuildView()
		s.mockQueries.EXPECT().Reservations(gomock.Any(), member.ID, 1).
			Return(queries.NewPage([]queries.ReservationView{view}, 1, 1, queries.DefaultPerPage), nil)

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodGet, "/reservations?page=1", nil, "")

		var body struct {
			Data queries.Page[queries.ReservationView] `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Data.Items, 1)
		s.Equal(view.ID, body.Data.Items[0].ID)
	})
}

func (s *ReservationHandlerTestSuite) TestDestroy() {
	s.Run("success: owner cancels", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), member, int64(20)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodDelete, "/reservations/20", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("redirect: someone else's reservation", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), member, int64(21)).
			Return(access.Deny(access.RedirectTo(access.ReasonNotOwner, access.Target{Route: access.RouteReservations}, access.MessageInvalidAccess)))

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodDelete, "/reservations/21", nil, "")
		httptest.AssertRedirect(s.T(), rec, "/reservations")
	})

	s.Run("error: unknown reservation is 404, storage failure is 500", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), member, int64(22)).Return(errs.ErrReservationNotFound)
		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodDelete, "/reservations/22", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")

		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), member, int64(23)).Return(errors.New("boom"))
		rec = httptest.PerformRequest(s.T(), s.ts.handler, http.MethodDelete, "/reservations/23", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
