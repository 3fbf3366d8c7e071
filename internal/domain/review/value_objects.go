package review

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidScore   = errors.New("score must be between 1 and 5")
	ErrEmptyContent   = errors.New("content cannot be empty")
	ErrContentTooLong = errors.New("content exceeds maximum length")
)

const (
	MinScore         = 1
	MaxScore         = 5
	MaxContentLength = 1000
)

// Score accepts fractional values within the range.
type Score struct {
	value float64
}

func NewScore(v float64) (Score, error) {
	if v < MinScore || v > MaxScore {
		return Score{}, ErrInvalidScore
	}
	return Score{value: v}, nil
}

func (s Score) Value() float64 { return s.value }

type Content struct {
	text string
}

func NewContent(s string) (Content, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Content{}, ErrEmptyContent
	}
	if utf8.RuneCountInString(t) > MaxContentLength {
		return Content{}, ErrContentTooLong
	}
	return Content{text: t}, nil
}

func (c Content) String() string { return c.text }
