//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"nagoyameshi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalid(t *testing.T) {
	base := errors.New("must be between 1 and 50")

	err := errs.Invalid("number_of_people", base)
	require.Error(t, err)

	assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, map[string]string{"number_of_people": "must be between 1 and 50"}, errs.ValidationDetail(err))

	wrapped := errs.Wrap(err, "create reservation")
	assert.True(t, errs.Is(wrapped, errs.ErrDomainValidation))
	assert.Equal(t, "must be between 1 and 50", errs.ValidationDetail(wrapped)["number_of_people"])
}

func TestInvalid_NilPassesThrough(t *testing.T) {
	assert.NoError(t, errs.Invalid("score", nil))
	assert.Nil(t, errs.ValidationDetail(errors.New("plain")))
}

func TestMark(t *testing.T) {
	marker := errs.New("marker")
	assert.Equal(t, marker, errs.Mark(nil, marker))

	err := errs.Mark(errors.New("boom"), marker)
	assert.True(t, errs.Is(err, marker))
	assert.NotEmpty(t, errs.ExtractStackLines(err, 3))
	assert.LessOrEqual(t, len(errs.ExtractStackLines(err, 3)), 3)
}
