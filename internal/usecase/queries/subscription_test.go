//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/queries"
	queriesmock "nagoyameshi/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubscriptionQueries_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		err     error
		want    access.Entitlement
		wantErr bool
	}{
		{name: "active is premium", status: "active", want: access.Premium},
		{name: "canceled is free", status: "canceled", want: access.Free},
		{name: "past due is free", status: "past_due", want: access.Free},
		{name: "never subscribed is free", err: infra.NotFound("subscription"), want: access.Free},
		{name: "lookup failure", err: errors.New("db down"), want: access.Free, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockSubscriptionReadStore(ctrl)
			store.EXPECT().Status(gomock.Any(), int64(1)).Return(tt.status, tt.err)

			got, err := queries.NewSubscriptionQueries(store).Resolve(context.Background(), 1)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubscriptionQueries_ResolveIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockSubscriptionReadStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Status(gomock.Any(), int64(1)).Return("active", nil),
		store.EXPECT().Status(gomock.Any(), int64(1)).Return("canceled", nil),
	)
	q := queries.NewSubscriptionQueries(store)

	first, err := q.Resolve(context.Background(), 1)
	require.NoError(t, err)
	second, err := q.Resolve(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, access.Premium, first)
	assert.Equal(t, access.Free, second)
}

func TestSubscriptionQueries_Current(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockSubscriptionReadStore(ctrl)
	q := queries.NewSubscriptionQueries(store)

	store.EXPECT().FindByUserID(gomock.Any(), int64(1)).Return(&queries.SubscriptionView{Status: "active", CardLast4: "4242"}, nil)
	v, err := q.Current(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "4242", v.CardLast4)

	store.EXPECT().FindByUserID(gomock.Any(), int64(2)).Return(nil, infra.NotFound("subscription"))
	_, err = q.Current(context.Background(), 2)
	assert.ErrorIs(t, err, errs.ErrSubscriptionMissing)
}
