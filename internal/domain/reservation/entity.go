package reservation

import (
	"time"

	"nagoyameshi/internal/pkg/errs"
)

// Request is the raw form submitted by a member.
type Request struct {
	Date           string
	Time           string
	NumberOfPeople int
}

type Reservation struct {
	id           int64
	restaurantID int64
	userID       int64
	reservedAt   time.Time
	partySize    PartySize
	createdAt    time.Time
	updatedAt    time.Time
}

// NewReservation validates a request. Seating capacity and overlapping bookings are not checked.
func NewReservation(userID, restaurantID int64, req Request, loc *time.Location, now time.Time) (*Reservation, error) {
	at, err := ParseSlot(req.Date, req.Time, loc)
	if err != nil {
		field := "reservation_date"
		if errs.Is(err, ErrInvalidTime) {
			field = "reservation_time"
		}
		return nil, errs.Invalid(field, err)
	}
	size, err := NewPartySize(req.NumberOfPeople)
	if err != nil {
		return nil, errs.Invalid("number_of_people", err)
	}
	return &Reservation{
		restaurantID: restaurantID,
		userID:       userID,
		reservedAt:   at,
		partySize:    size,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructReservation(id, restaurantID, userID int64, reservedAt time.Time, numberOfPeople int, createdAt, updatedAt time.Time) *Reservation {
	return &Reservation{
		id:           id,
		restaurantID: restaurantID,
		userID:       userID,
		reservedAt:   reservedAt,
		partySize:    PartySize{value: numberOfPeople},
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Reservation) ID() int64             { return r.id }
func (r *Reservation) RestaurantID() int64   { return r.restaurantID }
func (r *Reservation) UserID() int64         { return r.userID }
func (r *Reservation) OwnerID() int64        { return r.userID }
func (r *Reservation) ReservedAt() time.Time { return r.reservedAt }
func (r *Reservation) PartySize() PartySize  { return r.partySize }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
