package readstore

import (
	"context"

	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"
	"nagoyameshi/internal/usecase/queries"
)

type ReviewViewQueries interface {
	GetReviewByID(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Review, error)
	ListReviewsByRestaurant(ctx context.Context, db pgsql.DBTX, arg pgsql.ListByRestaurantParams) ([]pgsql.ReviewListRow, error)
	CountReviewsByRestaurant(ctx context.Context, db pgsql.DBTX, restaurantID int64) (int64, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      pgsql.DBTX
}

func NewReviewReadStore(queries ReviewViewQueries, db pgsql.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id int64) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review by id", err)
	}
	v := toReviewView(row, "")
	return &v, nil
}

func (r *ReviewReadStore) ListByRestaurant(ctx context.Context, restaurantID int64, limit, offset int32) ([]queries.ReviewView, error) {
	rows, err := r.queries.ListReviewsByRestaurant(ctx, r.db, pgsql.ListByRestaurantParams{
		RestaurantID: restaurantID,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by restaurant", err)
	}
	views := make([]queries.ReviewView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toReviewView(row.Review, row.UserName))
	}
	return views, nil
}

func (r *ReviewReadStore) CountByRestaurant(ctx context.Context, restaurantID int64) (int64, error) {
	n, err := r.queries.CountReviewsByRestaurant(ctx, r.db, restaurantID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reviews by restaurant", err)
	}
	return n, nil
}

func toReviewView(row pgsql.Review, userName string) queries.ReviewView {
	return queries.ReviewView{
		ID:           row.ID,
		Score:        row.Score,
		Content:      row.Content,
		RestaurantID: row.RestaurantID,
		UserID:       row.UserID,
		UserName:     userName,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
