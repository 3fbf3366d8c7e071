package response

import (
	"nagoyameshi/internal/usecase/queries"
)

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type ReservationFormResponse struct {
	Restaurant *queries.RestaurantSummary `json:"restaurant"`
}

type ReviewFormResponse struct {
	Restaurant *queries.RestaurantSummary `json:"restaurant"`
	Review     *queries.ReviewView        `json:"review,omitempty"`
}

type SetupIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

type SubscriptionResponse struct {
	Subscription *queries.SubscriptionView `json:"subscription"`
	ClientSecret string                    `json:"client_secret,omitempty"`
}

type RestaurantFormResponse struct {
	Restaurant      *queries.RestaurantDetail `json:"restaurant,omitempty"`
	Categories      []queries.CategoryView    `json:"categories"`
	RegularHolidays []queries.HolidayView     `json:"regular_holidays"`
}

type RestaurantIndexResponse struct {
	Restaurants queries.Page[queries.RestaurantSummary] `json:"restaurants"`
	Categories  []queries.CategoryView                  `json:"categories"`
	Keyword     string                                  `json:"keyword"`
	CategoryID  *int64                                  `json:"category_id,omitempty"`
	Price       *int                                    `json:"price,omitempty"`
	Sort        string                                  `json:"sort"`
}
