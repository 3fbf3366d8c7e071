package repository

import (
	"nagoyameshi/internal/domain/reservation"
	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/domain/review"
	"nagoyameshi/internal/domain/subscription"
	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func toUser(row pgsql.User) *user.User {
	return user.ReconstructUser(
		row.ID,
		row.Name,
		row.Kana,
		row.Email,
		row.PasswordHash,
		row.PostalCode,
		row.Address,
		row.PhoneNumber,
		pgconv.DatePtrFromPgtype(row.Birthday),
		row.Occupation,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func toRestaurant(row pgsql.Restaurant, categoryIDs, holidayIDs []int64) *restaurant.Restaurant {
	return restaurant.ReconstructRestaurant(row.ID, restaurant.Attributes{
		Name:            row.Name,
		Image:           row.Image,
		Description:     row.Description,
		LowestPrice:     int(row.LowestPrice),
		HighestPrice:    int(row.HighestPrice),
		PostalCode:      row.PostalCode,
		Address:         row.Address,
		OpeningTime:     pgconv.ClockFromPgtype(row.OpeningTime),
		ClosingTime:     pgconv.ClockFromPgtype(row.ClosingTime),
		SeatingCapacity: int(row.SeatingCapacity),
		CategoryIDs:     categoryIDs,
		HolidayIDs:      holidayIDs,
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func toReservation(row pgsql.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.RestaurantID,
		row.UserID,
		pgconv.TimeFromPgtype(row.ReservedDatetime),
		int(row.NumberOfPeople),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func toReview(row pgsql.Review) *review.Review {
	return review.ReconstructReview(
		row.ID,
		row.UserID,
		row.RestaurantID,
		row.Score,
		row.Content,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func toSubscription(row pgsql.Subscription) (*subscription.Subscription, error) {
	status, err := subscription.NewStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("unexpected subscription status", err, infra.KindDBFailure)
	}
	return subscription.ReconstructSubscription(
		row.ID,
		row.UserID,
		row.CustomerID,
		row.ProviderSubscriptionID,
		status,
		subscription.Card{
			PaymentMethodID: row.PaymentMethodID,
			Brand:           row.CardBrand,
			Last4:           row.CardLast4,
		},
		pgconv.TimestampPtrFromPgtype(row.CanceledAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func businessHours(r *restaurant.Restaurant) (opening, closing pgtype.Time, err error) {
	opening, err = pgconv.ClockToPgtype(r.Hours().Opening())
	if err != nil {
		return opening, closing, err
	}
	closing, err = pgconv.ClockToPgtype(r.Hours().Closing())
	return opening, closing, err
}
