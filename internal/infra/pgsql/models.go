package pgsql

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Admin struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type User struct {
	ID           int64
	Name         string
	Kana         string
	Email        string
	PasswordHash string
	PostalCode   string
	Address      string
	PhoneNumber  string
	Birthday     pgtype.Date
	Occupation   string
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Restaurant struct {
	ID              int64
	Name            string
	Image           string
	Description     string
	LowestPrice     int32
	HighestPrice    int32
	PostalCode      string
	Address         string
	OpeningTime     pgtype.Time
	ClosingTime     pgtype.Time
	SeatingCapacity int32
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type Category struct {
	ID        int64
	Name      string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type RegularHoliday struct {
	ID       int64
	Day      string
	DayIndex pgtype.Int2
}

type Reservation struct {
	ID               int64
	ReservedDatetime pgtype.Timestamptz
	NumberOfPeople   int32
	RestaurantID     int64
	UserID           int64
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

type Review struct {
	ID           int64
	Score        float64
	Content      string
	RestaurantID int64
	UserID       int64
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Subscription struct {
	ID                     int64
	UserID                 int64
	CustomerID             string
	ProviderSubscriptionID string
	Status                 string
	PaymentMethodID        string
	CardBrand              string
	CardLast4              string
	CanceledAt             pgtype.Timestamptz
	CreatedAt              pgtype.Timestamptz
	UpdatedAt              pgtype.Timestamptz
}

type Company struct {
	ID                int64
	Name              string
	PostalCode        string
	Address           string
	Representative    string
	EstablishmentDate string
	Capital           string
	Business          string
	NumberOfEmployees string
	UpdatedAt         pgtype.Timestamptz
}

type Term struct {
	ID        int64
	Content   string
	UpdatedAt pgtype.Timestamptz
}
