package user

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters long")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrEmptyName          = errors.New("name is required")
	ErrNameTooLong        = errors.New("name exceeds maximum length")
	ErrInvalidKana        = errors.New("kana must be written in katakana")
	ErrInvalidPostalCode  = errors.New("postal code must be 7 digits")
	ErrEmptyAddress       = errors.New("address is required")
	ErrInvalidPhoneNumber = errors.New("phone number must be 10 or 11 digits")
	ErrInvalidBirthday    = errors.New("birthday must be 8 digits (yyyymmdd)")
)

const MaxTextLength = 255

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	kanaRegex   = regexp.MustCompile(`^[ァ-ヴー\s　]+$`)
	postalRegex = regexp.MustCompile(`^[0-9]{7}$`)
	phoneRegex  = regexp.MustCompile(`^[0-9]{10,11}$`)
	dateRegex   = regexp.MustCompile(`^[0-9]{8}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxTextLength || !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

// ReconstructEmail trusts a stored address.
func ReconstructEmail(s string) Email {
	return Email{value: s}
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

// NewConfirmedPassword also checks the confirmation field.
func NewConfirmedPassword(s, confirmation string) (Password, error) {
	p, err := NewPassword(s)
	if err != nil {
		return Password{}, err
	}
	if s != confirmation {
		return Password{}, ErrPasswordMismatch
	}
	return p, nil
}

func (p Password) Value() string {
	return p.value
}

func newName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(s) > MaxTextLength {
		return "", ErrNameTooLong
	}
	return s, nil
}

func newKana(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxTextLength || !kanaRegex.MatchString(s) {
		return "", ErrInvalidKana
	}
	return s, nil
}

func newPostalCode(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !postalRegex.MatchString(s) {
		return "", ErrInvalidPostalCode
	}
	return s, nil
}

func newAddress(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyAddress
	}
	return s, nil
}

func newPhoneNumber(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return "", ErrInvalidPhoneNumber
	}
	return s, nil
}

// parseBirthday accepts an empty value or yyyymmdd.
func parseBirthday(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if !dateRegex.MatchString(s) {
		return nil, ErrInvalidBirthday
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return nil, ErrInvalidBirthday
	}
	return &t, nil
}
