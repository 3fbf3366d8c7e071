package queries

import (
	"context"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/domain/subscription"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/errs"
)

type SubscriptionReadStore interface {
	// Status returns infra NOT_FOUND when the member never subscribed.
	Status(ctx context.Context, userID int64) (string, error)
	FindByUserID(ctx context.Context, userID int64) (*SubscriptionView, error)
}

type SubscriptionQueries interface {
	access.EntitlementResolver
	Current(ctx context.Context, memberID int64) (*SubscriptionView, error)
}

type subscriptionQueriesImpl struct {
	store SubscriptionReadStore
}

func NewSubscriptionQueries(store SubscriptionReadStore) SubscriptionQueries {
	return &subscriptionQueriesImpl{store: store}
}

// Resolve reads the stored status on every call.
func (q *subscriptionQueriesImpl) Resolve(ctx context.Context, memberID int64) (access.Entitlement, error) {
	status, err := q.store.Status(ctx, memberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return access.Free, nil
		}
		return access.Free, err
	}
	if subscription.Status(status) == subscription.StatusActive {
		return access.Premium, nil
	}
	return access.Free, nil
}

func (q *subscriptionQueriesImpl) Current(ctx context.Context, memberID int64) (*SubscriptionView, error) {
	v, err := q.store.FindByUserID(ctx, memberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSubscriptionMissing
		}
		return nil, err
	}
	return v, nil
}
