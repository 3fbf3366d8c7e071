package commands

import (
	"context"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/domain/favorite"
	"nagoyameshi/internal/domain/reservation"
	"nagoyameshi/internal/domain/review"
	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/shared"
)

type ReviewInput struct {
	Score   float64
	Content string
}

// MemberCommands are the mutations a signed-in member makes on their own records.
type MemberCommands interface {
	CreateReservation(ctx context.Context, memberID, restaurantID int64, req reservation.Request) (int64, error)
	CancelReservation(ctx context.Context, p access.Principal, reservationID int64) error

	CreateReview(ctx context.Context, memberID, restaurantID int64, in ReviewInput) (int64, error)
	UpdateReview(ctx context.Context, p access.Principal, restaurantID, reviewID int64, in ReviewInput) error
	DeleteReview(ctx context.Context, p access.Principal, restaurantID, reviewID int64) error

	AddFavorite(ctx context.Context, memberID, restaurantID int64) error
	RemoveFavorite(ctx context.Context, memberID, restaurantID int64) error

	UpdateProfile(ctx context.Context, p access.Principal, userID int64, profile user.Profile) error
}

type memberCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMemberCommands(uow shared.UnitOfWork, clk clock.Clock) MemberCommands {
	return &memberCommandsImpl{uow: uow, clock: clk}
}

func (uc *memberCommandsImpl) CreateReservation(ctx context.Context, memberID, restaurantID int64, req reservation.Request) (int64, error) {
	var id int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireRestaurant(ctx, tx, restaurantID); err != nil {
			return err
		}
		res, err := reservation.NewReservation(memberID, restaurantID, req, uc.clock.Location(), uc.clock.Now())
		if err != nil {
			return err
		}
		id, err = tx.Reservations().Create(ctx, res)
		return err
	})
	return id, err
}

func (uc *memberCommandsImpl) CancelReservation(ctx context.Context, p access.Principal, reservationID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return err
		}
		if v := access.AuthorizeMutation(p, res, access.Target{Route: access.RouteReservations}); !v.Allowed() {
			return access.Deny(v)
		}
		return tx.Reservations().Delete(ctx, res.ID())
	})
}

func (uc *memberCommandsImpl) CreateReview(ctx context.Context, memberID, restaurantID int64, in ReviewInput) (int64, error) {
	var id int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireRestaurant(ctx, tx, restaurantID); err != nil {
			return err
		}
		rv, err := review.NewReview(memberID, restaurantID, in.Score, in.Content, uc.clock.Now())
		if err != nil {
			return err
		}
		id, err = tx.Reviews().Create(ctx, rv)
		return err
	})
	return id, err
}

func (uc *memberCommandsImpl) UpdateReview(ctx context.Context, p access.Principal, restaurantID, reviewID int64, in ReviewInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rv, err := ownedReview(ctx, tx, p, restaurantID, reviewID)
		if err != nil {
			return err
		}
		if err := rv.Edit(in.Score, in.Content, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Reviews().Update(ctx, rv)
	})
}

func (uc *memberCommandsImpl) DeleteReview(ctx context.Context, p access.Principal, restaurantID, reviewID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rv, err := ownedReview(ctx, tx, p, restaurantID, reviewID)
		if err != nil {
			return err
		}
		return tx.Reviews().Delete(ctx, rv.ID())
	})
}

// ownedReview loads the review under restaurantID and checks the caller wrote it.
func ownedReview(ctx context.Context, tx shared.Tx, p access.Principal, restaurantID, reviewID int64) (*review.Review, error) {
	rv, err := tx.Reviews().FindByID(ctx, reviewID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReviewNotFound
		}
		return nil, err
	}
	if rv.RestaurantID() != restaurantID {
		return nil, errs.ErrReviewNotFound
	}
	fallback := access.Target{Route: access.RouteRestaurantReviews, ID: restaurantID}
	if v := access.AuthorizeMutation(p, rv, fallback); !v.Allowed() {
		return nil, access.Deny(v)
	}
	return rv, nil
}

func (uc *memberCommandsImpl) AddFavorite(ctx context.Context, memberID, restaurantID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireRestaurant(ctx, tx, restaurantID); err != nil {
			return err
		}
		_, err := tx.Favorites().Add(ctx, favorite.NewFavorite(memberID, restaurantID, uc.clock.Now()))
		return err
	})
}

func (uc *memberCommandsImpl) RemoveFavorite(ctx context.Context, memberID, restaurantID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireRestaurant(ctx, tx, restaurantID); err != nil {
			return err
		}
		_, err := tx.Favorites().Remove(ctx, memberID, restaurantID)
		return err
	})
}

func (uc *memberCommandsImpl) UpdateProfile(ctx context.Context, p access.Principal, userID int64, profile user.Profile) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrUserNotFound
			}
			return err
		}
		if v := access.AuthorizeMutation(p, u, access.Target{Route: access.RouteUser}); !v.Allowed() {
			return access.Deny(v)
		}
		if err := u.UpdateProfile(profile, uc.clock.Now()); err != nil {
			return err
		}
		if err := ensureEmailFree(ctx, tx, u.Email().Value(), u.ID()); err != nil {
			return err
		}
		if err := tx.Users().Update(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Invalid("email", errs.ErrEmailTaken)
			}
			return err
		}
		return nil
	})
}

func requireRestaurant(ctx context.Context, tx shared.Tx, id int64) error {
	ok, err := tx.Restaurants().Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrRestaurantNotFound
	}
	return nil
}
