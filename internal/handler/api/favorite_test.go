//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"nagoyameshi/internal/handler/api"
	"nagoyameshi/internal/handler/respond"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/queries"
	"nagoyameshi/tests/common/httptest"
	commandsmock "nagoyameshi/tests/mock/commands"
	queriesmock "nagoyameshi/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FavoriteHandlerTestSuite struct {
	suite.Suite
	ts           *testServer
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMemberCommands
	mockQueries  *queriesmock.MockMemberQueries
}

func (s *FavoriteHandlerTestSuite) SetupTest() {
	s.ts = newTestServer()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMemberCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMemberQueries(s.mockCtrl)
	h := api.NewFavoriteHandler(s.mockQueries, s.mockCommands, s.ts.responder)

	s.ts.actAs(member)
	s.ts.engine.GET("/favorites", h.Index)
	s.ts.engine.POST("/favorites/:restaurant_id", h.Store)
	s.ts.engine.DELETE("/favorites/:restaurant_id", h.Destroy)
}

func (s *FavoriteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFavoriteHandlerSuite(t *testing.T) {
	suite.Run(t, new(FavoriteHandlerTestSuite))
}

func (s *FavoriteHandlerTestSuite) TestStore() {
	s.Run("success: adding twice answers 200 both times", func() {
		s.mockCommands.EXPECT().AddFavorite(gomock.Any(), member.ID, int64(100)).Return(nil).Times(2)

		for range 2 {
			rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPost, "/favorites/100", nil, "")
			var body respond.DoneBody
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal("お気に入りに追加しました。", body.Message)
			s.Empty(body.RedirectTo)
		}
	})

	s.Run("error: unknown restaurant", func() {
		s.mockCommands.EXPECT().AddFavorite(gomock.Any(), member.ID, int64(999)).Return(errs.ErrRestaurantNotFound)

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPost, "/favorites/999", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: non-numeric id never reaches the use case", func() {
		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodPost, "/favorites/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *FavoriteHandlerTestSuite) TestDestroy() {
	s.Run("success: removing a non-favorite is a no-op", func() {
		s.mockCommands.EXPECT().RemoveFavorite(gomock.Any(), member.ID, int64(100)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodDelete, "/favorites/100", nil, "")
		var body respond.DoneBody
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("お気に入りを解除しました。", body.Message)
	})
}

func (s *FavoriteHandlerTestSuite) TestIndex() {
	s.mockQueries.EXPECT().Favorites(gomock.Any(), member.ID, 2).
		Return(queries.NewPage([]queries.FavoriteView{{RestaurantID: 100, Name: "ひつまぶし本店"}}, 16, 2, queries.DefaultPerPage), nil)

	rec := httptest.PerformRequest(s.T(), s.ts.handler, http.MethodGet, "/favorites?page=2", nil, "")

	var body struct {
		Data queries.Page[queries.FavoriteView] `json:"data"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(16), body.Data.Total)
	s.Equal(2, body.Data.Page)
	s.Equal(int64(100), body.Data.Items[0].RestaurantID)
}
