package repository

import (
	"context"

	"nagoyameshi/internal/domain/subscription"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type SubscriptionWriteQueries interface {
	GetSubscriptionByUserID(ctx context.Context, db pgsql.DBTX, userID int64) (pgsql.Subscription, error)
	GetSubscriptionByProviderID(ctx context.Context, db pgsql.DBTX, providerSubscriptionID string) (pgsql.Subscription, error)
	UpsertSubscription(ctx context.Context, db pgsql.DBTX, arg pgsql.UpsertSubscriptionParams) (int64, error)
}

type SubscriptionRepository struct {
	queries SubscriptionWriteQueries
	db      pgsql.DBTX
}

func NewSubscriptionRepository(queries SubscriptionWriteQueries, db pgsql.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{queries: queries, db: db}
}

func (r *SubscriptionRepository) FindByUserID(ctx context.Context, userID int64) (*subscription.Subscription, error) {
	row, err := r.queries.GetSubscriptionByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find subscription", err)
	}
	return toSubscription(row)
}

func (r *SubscriptionRepository) FindByProviderID(ctx context.Context, providerSubscriptionID string) (*subscription.Subscription, error) {
	row, err := r.queries.GetSubscriptionByProviderID(ctx, r.db, providerSubscriptionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find subscription by provider id", err)
	}
	return toSubscription(row)
}

// Save upserts on user_id; one member owns at most one subscription row.
func (r *SubscriptionRepository) Save(ctx context.Context, s *subscription.Subscription) (int64, error) {
	canceledAt := pgtype.Timestamptz{}
	if s.CanceledAt() != nil {
		canceledAt = pgconv.TimeToPgtype(*s.CanceledAt())
	}
	card := s.Card()
	id, err := r.queries.UpsertSubscription(ctx, r.db, pgsql.UpsertSubscriptionParams{
		UserID:                 s.UserID(),
		CustomerID:             s.CustomerID(),
		ProviderSubscriptionID: s.ProviderSubscriptionID(),
		Status:                 string(s.Status()),
		PaymentMethodID:        card.PaymentMethodID,
		CardBrand:              card.Brand,
		CardLast4:              card.Last4,
		CanceledAt:             canceledAt,
		CreatedAt:              pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:              pgconv.TimeToPgtype(s.UpdatedAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to save subscription", err)
	}
	return id, nil
}
