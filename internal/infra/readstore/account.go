package readstore

import (
	"context"

	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"
	"nagoyameshi/internal/usecase/queries"
)

type SubscriptionViewQueries interface {
	GetSubscriptionStatus(ctx context.Context, db pgsql.DBTX, userID int64) (string, error)
	GetSubscriptionByUserID(ctx context.Context, db pgsql.DBTX, userID int64) (pgsql.Subscription, error)
}

type SubscriptionReadStore struct {
	queries SubscriptionViewQueries
	db      pgsql.DBTX
}

func NewSubscriptionReadStore(queries SubscriptionViewQueries, db pgsql.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SubscriptionReadStore) Status(ctx context.Context, userID int64) (string, error) {
	status, err := r.queries.GetSubscriptionStatus(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to get subscription status", err)
	}
	return status, nil
}

func (r *SubscriptionReadStore) FindByUserID(ctx context.Context, userID int64) (*queries.SubscriptionView, error) {
	row, err := r.queries.GetSubscriptionByUserID(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get subscription", err)
	}
	v := &queries.SubscriptionView{
		Status:    row.Status,
		CardBrand: row.CardBrand,
		CardLast4: row.CardLast4,
	}
	if row.CanceledAt.Valid {
		t := row.CanceledAt.Time
		v.CanceledAt = &t
	}
	return v, nil
}

type IdentityViewQueries interface {
	GetUserByID(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.User, error)
	GetAdminByID(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Admin, error)
}

type IdentityReadStore struct {
	queries IdentityViewQueries
	db      pgsql.DBTX
}

func NewIdentityReadStore(queries IdentityViewQueries, db pgsql.DBTX) *IdentityReadStore {
	return &IdentityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *IdentityReadStore) Member(ctx context.Context, id int64) (*queries.IdentityView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load member identity", err)
	}
	return &queries.IdentityView{ID: row.ID, Email: row.Email}, nil
}

func (r *IdentityReadStore) Admin(ctx context.Context, id int64) (*queries.IdentityView, error) {
	row, err := r.queries.GetAdminByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load admin identity", err)
	}
	return &queries.IdentityView{ID: row.ID, Email: row.Email}, nil
}
