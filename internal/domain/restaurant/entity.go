package restaurant

import (
	"strings"
	"time"

	"nagoyameshi/internal/pkg/errs"
)

// Attributes is the admin-submitted shape of a restaurant.
type Attributes struct {
	Name            string
	Image           string
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
}

type Restaurant struct {
	id              int64
	name            string
	image           string
	description     string
	price           PriceRange
	postalCode      string
	address         string
	hours           BusinessHours
	seatingCapacity int
	categoryIDs     []int64
	holidayIDs      []int64
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRestaurant(a Attributes, now time.Time) (*Restaurant, error) {
	r := &Restaurant{createdAt: now}
	if err := r.apply(a, now); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRestaurant(id int64, a Attributes, createdAt, updatedAt time.Time) *Restaurant {
	return &Restaurant{
		id:              id,
		name:            a.Name,
		image:           a.Image,
		description:     a.Description,
		price:           PriceRange{lowest: a.LowestPrice, highest: a.HighestPrice},
		postalCode:      a.PostalCode,
		address:         a.Address,
		hours:           BusinessHours{opening: a.OpeningTime, closing: a.ClosingTime},
		seatingCapacity: a.SeatingCapacity,
		categoryIDs:     a.CategoryIDs,
		holidayIDs:      a.HolidayIDs,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Update replaces all attributes including both association sets.
func (r *Restaurant) Update(a Attributes, now time.Time) error {
	return r.apply(a, now)
}

func (r *Restaurant) apply(a Attributes, now time.Time) error {
	name, err := newName(a.Name)
	if err != nil {
		return errs.Invalid("name", err)
	}
	description := strings.TrimSpace(a.Description)
	if description == "" {
		return errs.Invalid("description", ErrEmptyDescription)
	}
	price, err := NewPriceRange(a.LowestPrice, a.HighestPrice)
	if err != nil {
		return errs.Invalid("lowest_price", err)
	}
	postal := strings.TrimSpace(a.PostalCode)
	if !postalRegex.MatchString(postal) {
		return errs.Invalid("postal_code", ErrInvalidPostalCode)
	}
	address := strings.TrimSpace(a.Address)
	if address == "" {
		return errs.Invalid("address", ErrEmptyAddress)
	}
	hours, err := NewBusinessHours(a.OpeningTime, a.ClosingTime)
	if err != nil {
		return errs.Invalid("opening_time", err)
	}
	if a.SeatingCapacity < 0 {
		return errs.Invalid("seating_capacity", ErrInvalidCapacity)
	}
	categories := uniqueIDs(a.CategoryIDs)
	if len(categories) > MaxCategories {
		return errs.Invalid("category_ids", ErrTooManyCategories)
	}

	r.name = name
	r.image = strings.TrimSpace(a.Image)
	r.description = description
	r.price = price
	r.postalCode = postal
	r.address = address
	r.hours = hours
	r.seatingCapacity = a.SeatingCapacity
	r.categoryIDs = categories
	r.holidayIDs = uniqueIDs(a.HolidayIDs)
	r.updatedAt = now
	return nil
}

func (r *Restaurant) ID() int64            { return r.id }
func (r *Restaurant) Name() string         { return r.name }
func (r *Restaurant) Image() string        { return r.image }
func (r *Restaurant) Description() string  { return r.description }
func (r *Restaurant) Price() PriceRange    { return r.price }
func (r *Restaurant) PostalCode() string   { return r.postalCode }
func (r *Restaurant) Address() string      { return r.address }
func (r *Restaurant) Hours() BusinessHours { return r.hours }
func (r *Restaurant) SeatingCapacity() int { return r.seatingCapacity }
func (r *Restaurant) CategoryIDs() []int64 { return r.categoryIDs }
func (r *Restaurant) HolidayIDs() []int64  { return r.holidayIDs }
func (r *Restaurant) CreatedAt() time.Time { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time { return r.updatedAt }
