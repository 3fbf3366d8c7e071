//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSubscriptionViewQueries struct {
	mock.Mock
}

func (m *MockSubscriptionViewQueries) GetSubscriptionStatus(ctx context.Context, db pgsql.DBTX, userID int64) (string, error) {
	args := m.Called(ctx, db, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSubscriptionViewQueries) GetSubscriptionByUserID(ctx context.Context, db pgsql.DBTX, userID int64) (pgsql.Subscription, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(pgsql.Subscription), args.Error(1)
}

func TestSubscriptionReadStore_Status(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		mockReturn string
		mockErr    error
		want       string
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "active", mockReturn: "active", want: "active"},
		{name: "never subscribed", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockSubscriptionViewQueries)
			store := NewSubscriptionReadStore(m, nil)
			m.On("GetSubscriptionStatus", ctx, nil, int64(5)).Return(tt.mockReturn, tt.mockErr)

			got, err := store.Status(ctx, 5)
			if tt.mockErr != nil {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubscriptionReadStore_FindByUserID(t *testing.T) {
	ctx := context.Background()
	canceledAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	m := new(MockSubscriptionViewQueries)
	store := NewSubscriptionReadStore(m, nil)
	m.On("GetSubscriptionByUserID", ctx, nil, int64(5)).Return(pgsql.Subscription{
		UserID:     5,
		Status:     "canceled",
		CardBrand:  "visa",
		CardLast4:  "4242",
		CanceledAt: pgtype.Timestamptz{Time: canceledAt, Valid: true},
	}, nil)

	got, err := store.FindByUserID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "canceled", got.Status)
	assert.Equal(t, "4242", got.CardLast4)
	require.NotNil(t, got.CanceledAt)
	assert.True(t, canceledAt.Equal(*got.CanceledAt))
}
