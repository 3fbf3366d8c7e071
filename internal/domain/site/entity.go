package site

import (
	"errors"
	"regexp"
	"strings"

	"nagoyameshi/internal/pkg/errs"
)

var (
	ErrRequired          = errors.New("field is required")
	ErrInvalidPostalCode = errors.New("postal code must be 7 digits")
)

var postalRegex = regexp.MustCompile(`^[0-9]{7}$`)

// Company is the operator profile shown on the public company page.
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
}

// Validate trims every field in place.
func (c *Company) Validate() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"name", &c.Name},
		{"postal_code", &c.PostalCode},
		{"address", &c.Address},
		{"representative", &c.Representative},
		{"establishment_date", &c.EstablishmentDate},
		{"capital", &c.Capital},
		{"business", &c.Business},
		{"number_of_employees", &c.NumberOfEmployees},
	}
	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return errs.Invalid(f.name, ErrRequired)
		}
	}
	if !postalRegex.MatchString(c.PostalCode) {
		return errs.Invalid("postal_code", ErrInvalidPostalCode)
	}
	return nil
}

type Terms struct {
	ID      int64
	Content string
}

func (t *Terms) Validate() error {
	t.Content = strings.TrimSpace(t.Content)
	if t.Content == "" {
		return errs.Invalid("content", ErrRequired)
	}
	return nil
}
