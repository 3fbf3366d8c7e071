//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/domain/favorite"
	"nagoyameshi/internal/domain/reservation"
	"nagoyameshi/internal/domain/review"
	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/tests/common/builder"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MemberCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	m        *txMocks
	sut      commands.MemberCommands
	ctx      context.Context
}

func (s *MemberCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.mockCtrl)
	s.sut = commands.NewMemberCommands(s.m.uow, s.m.clock)
	s.ctx = context.Background()
}

func (s *MemberCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMemberCommandsSuite(t *testing.T) {
	suite.Run(t, new(MemberCommandsTestSuite))
}

func (s *MemberCommandsTestSuite) TestCreateReservation() {
	req := builder.NewReservationBuilder().BuildRequest()

	s.Run("success", func() {
		s.m.restaurants.EXPECT().Exists(gomock.Any(), int64(100)).Return(true, nil)
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *reservation.Reservation) (int64, error) {
				s.Equal(int64(1), r.UserID())
				s.Equal(int64(100), r.RestaurantID())
				s.Equal(2, r.PartySize().Value())
				return 20, nil
			})

		id, err := s.sut.CreateReservation(s.ctx, 1, 100, req)

		s.Require().NoError(err)
		s.Equal(int64(20), id)
	})

	s.Run("unknown restaurant", func() {
		s.m.restaurants.EXPECT().Exists(gomock.Any(), int64(999)).Return(false, nil)

		_, err := s.sut.CreateReservation(s.ctx, 1, 999, req)

		s.ErrorIs(err, errs.ErrRestaurantNotFound)
	})

	s.Run("party of 51", func() {
		s.m.restaurants.EXPECT().Exists(gomock.Any(), int64(100)).Return(true, nil)
		bad := builder.NewReservationBuilder().WithNumberOfPeople(51).BuildRequest()

		_, err := s.sut.CreateReservation(s.ctx, 1, 100, bad)

		s.True(errs.Is(err, errs.ErrDomainValidation))
		s.Contains(errs.ValidationDetail(err), "number_of_people")
	})
}

func (s *MemberCommandsTestSuite) TestCancelReservation() {
	owned := builder.NewReservationBuilder().WithUserID(1).BuildReconstructed()

	s.Run("owner cancels", func() {
		s.m.reservations.EXPECT().FindByID(gomock.Any(), owned.ID()).Return(owned, nil)
		s.m.reservations.EXPECT().Delete(gomock.Any(), owned.ID()).Return(nil)

		s.NoError(s.sut.CancelReservation(s.ctx, access.Member{ID: 1}, owned.ID()))
	})

	s.Run("non-owner is denied and nothing is deleted", func() {
		s.m.reservations.EXPECT().FindByID(gomock.Any(), owned.ID()).Return(owned, nil)

		err := s.sut.CancelReservation(s.ctx, access.Member{ID: 2}, owned.ID())

		var denied *access.DeniedError
		s.Require().True(errs.As(err, &denied))
		s.Equal(access.ReasonNotOwner, denied.Verdict.Reason)
		s.Equal(access.RouteReservations, denied.Verdict.Target.Route)
	})

	s.Run("missing", func() {
		s.m.reservations.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, infra.NotFound("reservation"))

		s.ErrorIs(s.sut.CancelReservation(s.ctx, access.Member{ID: 1}, 404), errs.ErrReservationNotFound)
	})
}

func (s *MemberCommandsTestSuite) TestCreateReview() {
	s.Run("success", func() {
		s.m.restaurants.EXPECT().Exists(gomock.Any(), int64(100)).Return(true, nil)
		s.m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rv *review.Review) (int64, error) {
				s.Equal(int64(1), rv.UserID())
				s.Equal(fixedNow, rv.CreatedAt())
				return 10, nil
			})

		id, err := s.sut.CreateReview(s.ctx, 1, 100, builder.NewReviewBuilder().BuildInput())

		s.Require().NoError(err)
		s.Equal(int64(10), id)
	})

	s.Run("score out of range", func() {
		s.m.restaurants.EXPECT().Exists(gomock.Any(), int64(100)).Return(true, nil)

		_, err := s.sut.CreateReview(s.ctx, 1, 100, builder.NewReviewBuilder().WithScore(5.5).BuildInput())

		s.Contains(errs.ValidationDetail(err), "score")
	})
}

func (s *MemberCommandsTestSuite) TestUpdateReview() {
	owned := builder.NewReviewBuilder().BuildReconstructed()
	in := builder.NewReviewBuilder().WithScore(3).WithContent("また行きたい").BuildInput()

	s.Run("author edits", func() {
		s.m.reviews.EXPECT().FindByID(gomock.Any(), owned.ID()).Return(owned, nil)
		s.m.reviews.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rv *review.Review) error {
				s.Equal(3.0, rv.Score().Value())
				s.Equal(owned.UserID(), rv.UserID())
				return nil
			})

		s.NoError(s.sut.UpdateReview(s.ctx, access.Member{ID: owned.UserID()}, owned.RestaurantID(), owned.ID(), in))
	})

	s.Run("other member is sent to the review list", func() {
		s.m.reviews.EXPECT().FindByID(gomock.Any(), owned.ID()).Return(owned, nil)

		err := s.sut.UpdateReview(s.ctx, access.Member{ID: owned.UserID() + 1}, owned.RestaurantID(), owned.ID(), in)

		var denied *access.DeniedError
		s.Require().True(errs.As(err, &denied))
		s.Equal(access.Target{Route: access.RouteRestaurantReviews, ID: owned.RestaurantID()}, denied.Verdict.Target)
	})

	s.Run("review under another restaurant is not found", func() {
		s.m.reviews.EXPECT().FindByID(gomock.Any(), owned.ID()).Return(owned, nil)

		err := s.sut.UpdateReview(s.ctx, access.Member{ID: owned.UserID()}, owned.RestaurantID()+1, owned.ID(), in)

		s.ErrorIs(err, errs.ErrReviewNotFound)
	})
}

func (s *MemberCommandsTestSuite) TestDeleteReview() {
	owned := builder.NewReviewBuilder().BuildReconstructed()

	s.m.reviews.EXPECT().FindByID(gomock.Any(), owned.ID()).Return(owned, nil)
	s.m.reviews.EXPECT().Delete(gomock.Any(), owned.ID()).Return(nil)

	s.NoError(s.sut.DeleteReview(s.ctx, access.Member{ID: owned.UserID()}, owned.RestaurantID(), owned.ID()))
}

func (s *MemberCommandsTestSuite) TestFavorites() {
	s.Run("add is idempotent", func() {
		s.m.restaurants.EXPECT().Exists(gomock.Any(), int64(100)).Return(true, nil).Times(2)
		gomock.InOrder(
			s.m.favorites.EXPECT().Add(gomock.Any(), gomock.Any()).Return(true, nil),
			s.m.favorites.EXPECT().Add(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, f *favorite.Favorite) (bool, error) {
					s.Equal(int64(1), f.UserID())
					return false, nil
				}),
		)

		s.NoError(s.sut.AddFavorite(s.ctx, 1, 100))
		s.NoError(s.sut.AddFavorite(s.ctx, 1, 100))
	})

	s.Run("removing a non-favorite succeeds", func() {
		s.m.restaurants.EXPECT().Exists(gomock.Any(), int64(100)).Return(true, nil)
		s.m.favorites.EXPECT().Remove(gomock.Any(), int64(1), int64(100)).Return(false, nil)

		s.NoError(s.sut.RemoveFavorite(s.ctx, 1, 100))
	})

	s.Run("unknown restaurant", func() {
		s.m.restaurants.EXPECT().Exists(gomock.Any(), int64(999)).Return(false, nil)

		s.ErrorIs(s.sut.RemoveFavorite(s.ctx, 1, 999), errs.ErrRestaurantNotFound)
	})

	s.Run("storage failure", func() {
		s.m.restaurants.EXPECT().Exists(gomock.Any(), int64(100)).Return(false, errors.New("db down"))

		s.Error(s.sut.AddFavorite(s.ctx, 1, 100))
	})
}

func (s *MemberCommandsTestSuite) TestUpdateProfile() {
	b := builder.NewUserBuilder()
	profile := b.WithName("侍 花子").BuildProfile()

	s.Run("owner updates", func() {
		s.m.users.EXPECT().FindByID(gomock.Any(), int64(1)).Return(b.BuildReconstructed(), nil)
		s.m.users.EXPECT().FindByEmail(gomock.Any(), profile.Email).Return(b.BuildReconstructed(), nil)
		s.m.users.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				s.Equal("侍 花子", u.Name())
				return nil
			})

		s.NoError(s.sut.UpdateProfile(s.ctx, access.Member{ID: 1}, 1, profile))
	})

	s.Run("another member's profile redirects to own page", func() {
		s.m.users.EXPECT().FindByID(gomock.Any(), int64(1)).Return(b.BuildReconstructed(), nil)

		err := s.sut.UpdateProfile(s.ctx, access.Member{ID: 2}, 1, profile)

		var denied *access.DeniedError
		s.Require().True(errs.As(err, &denied))
		s.Equal(access.RouteUser, denied.Verdict.Target.Route)
	})

	s.Run("email taken by someone else", func() {
		s.m.users.EXPECT().FindByID(gomock.Any(), int64(1)).Return(b.BuildReconstructed(), nil)
		s.m.users.EXPECT().FindByEmail(gomock.Any(), profile.Email).
			Return(builder.NewUserBuilder().WithID(7).BuildReconstructed(), nil)

		err := s.sut.UpdateProfile(s.ctx, access.Member{ID: 1}, 1, profile)

		s.Contains(errs.ValidationDetail(err), "email")
	})
}
