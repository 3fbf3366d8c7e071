package repository

import (
	"context"

	"nagoyameshi/internal/domain/favorite"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"
)

type FavoriteWriteQueries interface {
	InsertFavorite(ctx context.Context, db pgsql.DBTX, arg pgsql.InsertFavoriteParams) (int64, error)
	DeleteFavorite(ctx context.Context, db pgsql.DBTX, userID, restaurantID int64) (int64, error)
}

type FavoriteRepository struct {
	queries FavoriteWriteQueries
	db      pgsql.DBTX
}

func NewFavoriteRepository(queries FavoriteWriteQueries, db pgsql.DBTX) *FavoriteRepository {
	return &FavoriteRepository{queries: queries, db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, f *favorite.Favorite) (bool, error) {
	n, err := r.queries.InsertFavorite(ctx, r.db, pgsql.InsertFavoriteParams{
		UserID:       f.UserID(),
		RestaurantID: f.RestaurantID(),
		CreatedAt:    pgconv.TimeToPgtype(f.CreatedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to add favorite", err)
	}
	return n > 0, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, restaurantID int64) (bool, error) {
	n, err := r.queries.DeleteFavorite(ctx, r.db, userID, restaurantID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to remove favorite", err)
	}
	return n > 0, nil
}
