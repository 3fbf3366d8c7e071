//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/domain/subscription"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscription(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	card := subscription.Card{PaymentMethodID: "pm_1", Brand: "visa", Last4: "4242"}

	t.Run("new subscription is premium", func(t *testing.T) {
		s := subscription.NewSubscription(1, "cus_1", "sub_1", card, now)
		assert.Equal(t, access.Premium, s.Entitlement())
		assert.Equal(t, subscription.StatusActive, s.Status())
	})

	t.Run("cancel downgrades and is not repeatable", func(t *testing.T) {
		s := subscription.NewSubscription(1, "cus_1", "sub_1", card, now)
		require.NoError(t, s.Cancel(now.Add(time.Hour)))
		assert.Equal(t, access.Free, s.Entitlement())
		require.NotNil(t, s.CanceledAt())

		assert.ErrorIs(t, s.Cancel(now), subscription.ErrAlreadyCanceled)
	})

	t.Run("resubscribe clears cancellation", func(t *testing.T) {
		s := subscription.NewSubscription(1, "cus_1", "sub_1", card, now)
		require.NoError(t, s.Cancel(now))
		s.Resubscribe("cus_1", "sub_2", card, now.Add(time.Hour))

		assert.Equal(t, access.Premium, s.Entitlement())
		assert.Nil(t, s.CanceledAt())
		assert.Equal(t, "sub_2", s.ProviderSubscriptionID())
	})

	t.Run("missing record is free", func(t *testing.T) {
		assert.Equal(t, access.Free, subscription.EntitlementOf(nil))
	})

	t.Run("provider statuses", func(t *testing.T) {
		assert.Equal(t, subscription.StatusActive, subscription.ParseProviderStatus("trialing"))
		assert.Equal(t, subscription.StatusCanceled, subscription.ParseProviderStatus("incomplete_expired"))
		assert.Equal(t, subscription.StatusCanceled, subscription.ParseProviderStatus("unpaid"))
	})

	t.Run("sync to canceled records timestamp", func(t *testing.T) {
		s := subscription.NewSubscription(1, "cus_1", "sub_1", card, now)
		s.Sync(subscription.StatusCanceled, now.Add(time.Minute))
		assert.Equal(t, access.Free, s.Entitlement())
		assert.Equal(t, now.Add(time.Minute), *s.CanceledAt())
	})
}
