//go:build unit || e2e

package builder

import (
	"time"

	"nagoyameshi/internal/domain/reservation"
	reqdto "nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID             int64
	UserID         int64
	RestaurantID   int64
	RestaurantName string
	Date           string
	Time           string
	NumberOfPeople int
	Location       *time.Location
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:             20,
		UserID:         1,
		RestaurantID:   100,
		RestaurantName: "名古屋めし 本店",
		Date:           "2030-01-15",
		Time:           "18:30",
		NumberOfPeople: 2,
		Location:       time.UTC,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildRequest() reservation.Request {
	return reservation.Request{Date: r.Date, Time: r.Time, NumberOfPeople: r.NumberOfPeople}
}

func (r *ReservationBuilder) BuildDomain(now time.Time) (*reservation.Reservation, error) {
	return reservation.NewReservation(r.UserID, r.RestaurantID, r.BuildRequest(), r.Location, now)
}

func (r *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	reservedAt, _ := reservation.ParseSlot(r.Date, r.Time, r.Location)
	now := reservedAt.AddDate(0, 0, -7)
	return reservation.ReconstructReservation(r.ID, r.RestaurantID, r.UserID, reservedAt, r.NumberOfPeople, now, now)
}

func (r *ReservationBuilder) BuildRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ReservationDate: r.Date,
		ReservationTime: r.Time,
		NumberOfPeople:  r.NumberOfPeople,
	}
}

func (r *ReservationBuilder) BuildView() queries.ReservationView {
	reservedAt, _ := reservation.ParseSlot(r.Date, r.Time, r.Location)
	return queries.ReservationView{
		ID:             r.ID,
		RestaurantID:   r.RestaurantID,
		RestaurantName: r.RestaurantName,
		ReservedAt:     reservedAt,
		NumberOfPeople: r.NumberOfPeople,
		CreatedAt:      reservedAt.AddDate(0, 0, -7),
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithUserID(userID int64) *ReservationBuilder {
	r.UserID = userID
	return r
}

func (r *ReservationBuilder) WithRestaurantID(restaurantID int64) *ReservationBuilder {
	r.RestaurantID = restaurantID
	return r
}

func (r *ReservationBuilder) WithNumberOfPeople(n int) *ReservationBuilder {
	r.NumberOfPeople = n
	return r
}
