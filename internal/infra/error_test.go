//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"nagoyameshi/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err, tt.kind...)
			assert.True(t, infra.IsKind(err, tt.want), "got %v", err)
			assert.True(t, errors.Is(err, tt.err))
		})
	}

	assert.True(t, infra.IsKind(infra.NotFound("missing"), infra.KindNotFound))
	assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
}
