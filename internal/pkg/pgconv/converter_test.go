//go:build unit

package pgconv_test

import (
	"testing"

	"nagoyameshi/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockConversion(t *testing.T) {
	for _, hhmm := range []string{"00:00", "09:30", "23:59"} {
		pt, err := pgconv.ClockToPgtype(hhmm)
		require.NoError(t, err)
		assert.Equal(t, hhmm, pgconv.ClockFromPgtype(pt))
	}

	_, err := pgconv.ClockToPgtype("25:00")
	assert.Error(t, err)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(nil))
}

func TestLikeLiteral(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"味噌カツ":    "味噌カツ",
		"%":       `\%`,
		"a_b":     `a\_b`,
		`c:\path`: `c:\\path`,
	}
	for in, want := range tests {
		assert.Equal(t, want, pgconv.LikeLiteral(in), in)
	}
}
