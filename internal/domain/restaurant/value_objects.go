package restaurant

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrEmptyName            = errors.New("name is required")
	ErrNameTooLong          = errors.New("name exceeds maximum length")
	ErrEmptyDescription     = errors.New("description is required")
	ErrInvalidPrice         = errors.New("price must be zero or greater")
	ErrPriceRange           = errors.New("lowest price must not exceed highest price")
	ErrInvalidPostalCode    = errors.New("postal code must be 7 digits")
	ErrEmptyAddress         = errors.New("address is required")
	ErrInvalidBusinessHours = errors.New("business hours must be HH:MM")
	ErrHoursOrder           = errors.New("opening time must be before closing time")
	ErrInvalidCapacity      = errors.New("seating capacity must be zero or greater")
	ErrTooManyCategories    = errors.New("too many categories")
)

const (
	MaxNameLength = 255
	MaxCategories = 3
	clockLayout   = "15:04"
)

var postalRegex = regexp.MustCompile(`^[0-9]{7}$`)

// PriceRange is the budget band shown on listings.
type PriceRange struct {
	lowest  int
	highest int
}

func NewPriceRange(lowest, highest int) (PriceRange, error) {
	if lowest < 0 || highest < 0 {
		return PriceRange{}, ErrInvalidPrice
	}
	if lowest > highest {
		return PriceRange{}, ErrPriceRange
	}
	return PriceRange{lowest: lowest, highest: highest}, nil
}

func (p PriceRange) Lowest() int  { return p.lowest }
func (p PriceRange) Highest() int { return p.highest }

// BusinessHours holds opening and closing as HH:MM.
type BusinessHours struct {
	opening string
	closing string
}

func NewBusinessHours(opening, closing string) (BusinessHours, error) {
	o, err := time.Parse(clockLayout, strings.TrimSpace(opening))
	if err != nil {
		return BusinessHours{}, ErrInvalidBusinessHours
	}
	c, err := time.Parse(clockLayout, strings.TrimSpace(closing))
	if err != nil {
		return BusinessHours{}, ErrInvalidBusinessHours
	}
	if !o.Before(c) {
		return BusinessHours{}, ErrHoursOrder
	}
	return BusinessHours{opening: o.Format(clockLayout), closing: c.Format(clockLayout)}, nil
}

func (b BusinessHours) Opening() string { return b.opening }
func (b BusinessHours) Closing() string { return b.closing }

func newName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return s, nil
}

// uniqueIDs drops duplicates and non-positive ids, keeping order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
