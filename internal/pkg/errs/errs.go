package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

// ValidationError names the offending input field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Invalid marks err as a domain validation failure on field.
func Invalid(field string, err error) error {
	if err == nil {
		return nil
	}
	return cr.Mark(&ValidationError{Field: field, Err: err}, ErrDomainValidation)
}

// ValidationDetail flattens a validation error into a field -> message map.
func ValidationDetail(err error) map[string]string {
	var ve *ValidationError
	if !As(err, &ve) {
		return nil
	}
	return map[string]string{ve.Field: ve.Err.Error()}
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
