package reservation

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidDate      = errors.New("reservation date must be YYYY-MM-DD")
	ErrInvalidTime      = errors.New("reservation time must be HH:MM")
	ErrInvalidPartySize = errors.New("number of people must be between 1 and 50")
)

const (
	MinPartySize = 1
	MaxPartySize = 50

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type PartySize struct {
	value int
}

func NewPartySize(v int) (PartySize, error) {
	if v < MinPartySize || v > MaxPartySize {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: v}, nil
}

func (p PartySize) Value() int { return p.value }

// ParseSlot combines a calendar date and wall-clock time into one instant in loc.
func ParseSlot(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	c, err := time.Parse(TimeLayout, strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, loc), nil
}
