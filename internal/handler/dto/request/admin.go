package request

import (
	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/domain/site"

	"github.com/jinzhu/copier"
)

type RestaurantRequest struct {
	Name              string  `json:"name" binding:"required,max=255"`
	Image             string  `json:"image"`
	Description       string  `json:"description" binding:"required"`
	LowestPrice       int     `json:"lowest_price" binding:"min=0"`
	HighestPrice      int     `json:"highest_price" binding:"min=0"`
	PostalCode        string  `json:"postal_code" binding:"required"`
	Address           string  `json:"address" binding:"required,max=255"`
	OpeningTime       string  `json:"opening_time" binding:"required"`
	ClosingTime       string  `json:"closing_time" binding:"required"`
	SeatingCapacity   int     `json:"seating_capacity" binding:"min=0"`
	CategoryIDs       []int64 `json:"category_ids" binding:"max=3"`
	RegularHolidayIDs []int64 `json:"regular_holiday_ids"`
}

func (r *RestaurantRequest) ToDomain() restaurant.Attributes {
	return restaurant.Attributes{
		Name:            r.Name,
		Image:           r.Image,
		Description:     r.Description,
		LowestPrice:     r.LowestPrice,
		HighestPrice:    r.HighestPrice,
		PostalCode:      r.PostalCode,
		Address:         r.Address,
		OpeningTime:     r.OpeningTime,
		ClosingTime:     r.ClosingTime,
		SeatingCapacity: r.SeatingCapacity,
		CategoryIDs:     r.CategoryIDs,
		HolidayIDs:      r.RegularHolidayIDs,
	}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type CompanyRequest struct {
	Name              string `json:"name" binding:"required"`
	PostalCode        string `json:"postal_code" binding:"required"`
	Address           string `json:"address" binding:"required"`
	Representative    string `json:"representative" binding:"required"`
	EstablishmentDate string `json:"establishment_date" binding:"required"`
	Capital           string `json:"capital" binding:"required"`
	Business          string `json:"business" binding:"required"`
	NumberOfEmployees string `json:"number_of_employees" binding:"required"`
}

func (r *CompanyRequest) ToDomain() (site.Company, error) {
	var c site.Company
	if err := copier.Copy(&c, r); err != nil {
		return site.Company{}, err
	}
	return c, nil
}

type TermsRequest struct {
	Content string `json:"content" binding:"required"`
}
