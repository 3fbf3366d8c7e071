//go:build unit

package commands_test

import (
	"context"
	"testing"

	"nagoyameshi/internal/domain/category"
	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/domain/site"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/tests/common/builder"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	m        *txMocks
	sut      commands.CatalogCommands
	ctx      context.Context
}

func (s *CatalogCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.mockCtrl)
	s.sut = commands.NewCatalogCommands(s.m.uow, s.m.clock)
	s.ctx = context.Background()
}

func (s *CatalogCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogCommandsSuite(t *testing.T) {
	suite.Run(t, new(CatalogCommandsTestSuite))
}

func (s *CatalogCommandsTestSuite) TestCreateRestaurant() {
	s.Run("success", func() {
		s.m.categories.EXPECT().CountExisting(gomock.Any(), []int64{1}).Return(1, nil)
		s.m.restaurants.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *restaurant.Restaurant) (int64, error) {
				s.Equal(fixedNow, r.CreatedAt())
				return 100, nil
			})

		id, err := s.sut.CreateRestaurant(s.ctx, builder.NewRestaurantBuilder().BuildAttributes())

		s.Require().NoError(err)
		s.Equal(int64(100), id)
	})

	s.Run("unknown category", func() {
		s.m.categories.EXPECT().CountExisting(gomock.Any(), []int64{1, 99}).Return(1, nil)

		_, err := s.sut.CreateRestaurant(s.ctx, builder.NewRestaurantBuilder().WithCategories(1, 99).BuildAttributes())

		s.Contains(errs.ValidationDetail(err), "category_ids")
	})

	s.Run("unknown holiday", func() {
		s.m.categories.EXPECT().CountExisting(gomock.Any(), gomock.Any()).Return(1, nil)
		s.m.restaurants.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("insert holidays", errs.New("fk"), infra.KindForeignKeyViolated))

		_, err := s.sut.CreateRestaurant(s.ctx, builder.NewRestaurantBuilder().BuildAttributes())

		s.Contains(errs.ValidationDetail(err), "regular_holiday_ids")
	})

	s.Run("inverted prices never reach storage", func() {
		_, err := s.sut.CreateRestaurant(s.ctx, builder.NewRestaurantBuilder().WithPrices(5000, 3000).BuildAttributes())

		s.ErrorIs(err, restaurant.ErrPriceRange)
	})
}

func (s *CatalogCommandsTestSuite) TestDeleteRestaurant() {
	s.m.restaurants.EXPECT().Delete(gomock.Any(), int64(100)).Return(nil)
	s.NoError(s.sut.DeleteRestaurant(s.ctx, 100))

	s.m.restaurants.EXPECT().Delete(gomock.Any(), int64(404)).Return(infra.NotFound("restaurant"))
	s.ErrorIs(s.sut.DeleteRestaurant(s.ctx, 404), errs.ErrRestaurantNotFound)
}

func (s *CatalogCommandsTestSuite) TestCategories() {
	s.Run("duplicate name", func() {
		s.m.categories.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("insert category", errs.New("dup"), infra.KindDuplicateKey))

		_, err := s.sut.CreateCategory(s.ctx, "和食")

		s.Contains(errs.ValidationDetail(err), "name")
	})

	s.Run("rename", func() {
		s.m.categories.EXPECT().FindByID(gomock.Any(), int64(1)).Return(category.ReconstructCategory(1, "和食"), nil)
		s.m.categories.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *category.Category) error {
				s.Equal("寿司", c.Name())
				return nil
			})

		s.NoError(s.sut.UpdateCategory(s.ctx, 1, "寿司"))
	})

	s.Run("delete missing", func() {
		s.m.categories.EXPECT().Delete(gomock.Any(), int64(404)).Return(infra.NotFound("category"))

		s.ErrorIs(s.sut.DeleteCategory(s.ctx, 404), errs.ErrCategoryNotFound)
	})
}

func (s *CatalogCommandsTestSuite) TestSitePages() {
	s.Run("company keeps its row id", func() {
		s.m.site.EXPECT().Company(gomock.Any()).Return(&site.Company{ID: 1, Name: "旧社名"}, nil)
		s.m.site.EXPECT().SaveCompany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *site.Company) error {
				s.Equal(int64(1), c.ID)
				s.Equal("NAGOYAMESHI株式会社", c.Name)
				return nil
			})

		s.NoError(s.sut.UpdateCompany(s.ctx, site.Company{
			ID:                42,
			Name:              " NAGOYAMESHI株式会社 ",
			PostalCode:        "1010022",
			Address:           "東京都千代田区神田練塀町300番地",
			Representative:    "侍 太郎",
			EstablishmentDate: "2015年6月30日",
			Capital:           "110,000千円",
			Business:          "飲食店等の情報提供サービス",
			NumberOfEmployees: "8名",
		}))
	})

	s.Run("empty terms", func() {
		s.m.site.EXPECT().Terms(gomock.Any()).Return(&site.Terms{ID: 1, Content: "旧規約"}, nil)

		err := s.sut.UpdateTerms(s.ctx, "   ")

		s.Contains(errs.ValidationDetail(err), "content")
	})
}
