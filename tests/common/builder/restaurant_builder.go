//go:build unit || e2e

package builder

import (
	"time"

	"nagoyameshi/internal/domain/restaurant"
	reqdto "nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/usecase/queries"
)

type RestaurantBuilder struct {
	ID              int64
	Name            string
	Description     string
	LowestPrice     int
	HighestPrice    int
	PostalCode      string
	Address         string
	OpeningTime     string
	ClosingTime     string
	SeatingCapacity int
	CategoryIDs     []int64
	HolidayIDs      []int64
	CreatedAt       time.Time
}

func NewRestaurantBuilder() *RestaurantBuilder {
	return &RestaurantBuilder{
		ID:              100,
		Name:            "名古屋めし 本店",
		Description:     "ひつまぶしと味噌カツの店",
		LowestPrice:     1000,
		HighestPrice:    3000,
		PostalCode:      "4600008",
		Address:         "愛知県名古屋市中区栄3-1-1",
		OpeningTime:     "11:00",
		ClosingTime:     "22:00",
		SeatingCapacity: 40,
		CategoryIDs:     []int64{1},
		HolidayIDs:      []int64{1},
		CreatedAt:       time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (r *RestaurantBuilder) With(mutate func(*RestaurantBuilder)) *RestaurantBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RestaurantBuilder) BuildAttributes() restaurant.Attributes {
	return restaurant.Attributes{
		Name:            r.Name,
		Description:     r.Description,
		LowestPrice:     r.LowestPrice,
		HighestPrice:    r.HighestPrice,
		PostalCode:      r.PostalCode,
		Address:         r.Address,
		OpeningTime:     r.OpeningTime,
		ClosingTime:     r.ClosingTime,
		SeatingCapacity: r.SeatingCapacity,
		CategoryIDs:     r.CategoryIDs,
		HolidayIDs:      r.HolidayIDs,
	}
}

func (r *RestaurantBuilder) BuildDomain() (*restaurant.Restaurant, error) {
	return restaurant.NewRestaurant(r.BuildAttributes(), r.CreatedAt)
}

func (r *RestaurantBuilder) BuildReconstructed() *restaurant.Restaurant {
	return restaurant.ReconstructRestaurant(r.ID, r.BuildAttributes(), r.CreatedAt, r.CreatedAt)
}

func (r *RestaurantBuilder) BuildRequestDTO() reqdto.RestaurantRequest {
	return reqdto.RestaurantRequest{
		Name:              r.Name,
		Description:       r.Description,
		LowestPrice:       r.LowestPrice,
		HighestPrice:      r.HighestPrice,
		PostalCode:        r.PostalCode,
		Address:           r.Address,
		OpeningTime:       r.OpeningTime,
		ClosingTime:       r.ClosingTime,
		SeatingCapacity:   r.SeatingCapacity,
		CategoryIDs:       r.CategoryIDs,
		RegularHolidayIDs: r.HolidayIDs,
	}
}

func (r *RestaurantBuilder) BuildSummary() *queries.RestaurantSummary {
	return &queries.RestaurantSummary{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		LowestPrice:     r.LowestPrice,
		HighestPrice:    r.HighestPrice,
		PostalCode:      r.PostalCode,
		Address:         r.Address,
		OpeningTime:     r.OpeningTime,
		ClosingTime:     r.ClosingTime,
		SeatingCapacity: r.SeatingCapacity,
		Categories:      []queries.CategoryView{},
		CreatedAt:       r.CreatedAt,
	}
}

// Fluent builder methods
func (r *RestaurantBuilder) WithID(id int64) *RestaurantBuilder {
	r.ID = id
	return r
}

func (r *RestaurantBuilder) WithName(name string) *RestaurantBuilder {
	r.Name = name
	return r
}

func (r *RestaurantBuilder) WithPrices(lowest, highest int) *RestaurantBuilder {
	r.LowestPrice = lowest
	r.HighestPrice = highest
	return r
}

func (r *RestaurantBuilder) WithCategories(ids ...int64) *RestaurantBuilder {
	r.CategoryIDs = ids
	return r
}
