package queries

import (
	"time"
)

type CategoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type HolidayView struct {
	ID  int64  `json:"id"`
	Day string `json:"day"`
}

// RestaurantSummary is the listing card shape.
type RestaurantSummary struct {
	ID               int64          `json:"id"`
	Name             string         `json:"name"`
	Image            string         `json:"image"`
	Description      string         `json:"description"`
	LowestPrice      int            `json:"lowest_price"`
	HighestPrice     int            `json:"highest_price"`
	PostalCode       string         `json:"postal_code"`
	Address          string         `json:"address"`
	OpeningTime      string         `json:"opening_time"`
	ClosingTime      string         `json:"closing_time"`
	SeatingCapacity  int            `json:"seating_capacity"`
	AverageScore     float64        `json:"average_score"`
	ReviewCount      int64          `json:"review_count"`
	ReservationCount int64          `json:"reservation_count"`
	Categories       []CategoryView `json:"categories"`
	CreatedAt        time.Time      `json:"created_at"`
}

type RestaurantDetail struct {
	RestaurantSummary
	RegularHolidays []HolidayView `json:"regular_holidays"`
	IsFavorite      bool          `json:"is_favorite"`
}

type HomeView struct {
	HighlyRated []RestaurantSummary `json:"highly_rated_restaurants"`
	Newest      []RestaurantSummary `json:"new_restaurants"`
	Categories  []CategoryView      `json:"categories"`
}

type ReviewView struct {
	ID           int64     `json:"id"`
	Score        float64   `json:"score"`
	Content      string    `json:"content"`
	RestaurantID int64     `json:"restaurant_id"`
	UserID       int64     `json:"user_id"`
	UserName     string    `json:"user_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (v *ReviewView) OwnerID() int64 { return v.UserID }

// ReviewListing is what a member sees on a restaurant's review page.
type ReviewListing struct {
	Restaurant RestaurantSummary `json:"restaurant"`
	Reviews    Page[ReviewView]  `json:"reviews"`
	// Limited is set for free members, who only see the latest few reviews.
	Limited bool `json:"limited"`
}

type ReservationView struct {
	ID              int64     `json:"id"`
	RestaurantID    int64     `json:"restaurant_id"`
	RestaurantName  string    `json:"restaurant_name"`
	RestaurantImage string    `json:"restaurant_image"`
	ReservedAt      time.Time `json:"reserved_datetime"`
	NumberOfPeople  int       `json:"number_of_people"`
	CreatedAt       time.Time `json:"created_at"`
}

type FavoriteView struct {
	RestaurantID int64     `json:"restaurant_id"`
	Name         string    `json:"name"`
	Image        string    `json:"image"`
	Description  string    `json:"description"`
	LowestPrice  int       `json:"lowest_price"`
	HighestPrice int       `json:"highest_price"`
	FavoritedAt  time.Time `json:"favorited_at"`
}

type UserView struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Kana        string     `json:"kana"`
	Email       string     `json:"email"`
	PostalCode  string     `json:"postal_code"`
	Address     string     `json:"address"`
	PhoneNumber string     `json:"phone_number"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	Occupation  string     `json:"occupation"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (v *UserView) OwnerID() int64 { return v.ID }

type DashboardView struct {
	Members        int64 `json:"total_users"`
	PremiumMembers int64 `json:"total_premium_users"`
	FreeMembers    int64 `json:"total_free_users"`
	Restaurants    int64 `json:"total_restaurants"`
	Reservations   int64 `json:"total_reservations"`
	MonthlySales   int64 `json:"sales_for_this_month"`
}

type CompanyView struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	PostalCode        string `json:"postal_code"`
	Address           string `json:"address"`
	Representative    string `json:"representative"`
	EstablishmentDate string `json:"establishment_date"`
	Capital           string `json:"capital"`
	Business          string `json:"business"`
	NumberOfEmployees string `json:"number_of_employees"`
}

type TermsView struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

type SubscriptionView struct {
	Status     string     `json:"status"`
	CardBrand  string     `json:"card_brand"`
	CardLast4  string     `json:"card_last4"`
	CanceledAt *time.Time `json:"canceled_at,omitempty"`
}

// IdentityView is the minimum needed to rebuild a principal from a stored id.
type IdentityView struct {
	ID    int64
	Email string
}
