package repository

import (
	"context"

	"nagoyameshi/internal/domain/review"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateReviewParams) (int64, error)
	GetReviewByID(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Review, error)
	UpdateReview(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateReviewParams) (int64, error)
	DeleteReview(ctx context.Context, db pgsql.DBTX, id int64) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      pgsql.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db pgsql.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (int64, error) {
	id, err := r.queries.CreateReview(ctx, r.db, pgsql.CreateReviewParams{
		Score:        rev.Score().Value(),
		Content:      rev.Content().String(),
		RestaurantID: rev.RestaurantID(),
		UserID:       rev.UserID(),
		CreatedAt:    pgconv.TimeToPgtype(rev.CreatedAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*review.Review, error) {
	row, err := r.queries.GetReviewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	return toReview(row), nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	n, err := r.queries.UpdateReview(ctx, r.db, pgsql.UpdateReviewParams{
		ID:        rev.ID(),
		Score:     rev.Score().Value(),
		Content:   rev.Content().String(),
		UpdatedAt: pgconv.TimeToPgtype(rev.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if n == 0 {
		return infra.NotFound("review not found")
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteReview(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if n == 0 {
		return infra.NotFound("review not found")
	}
	return nil
}
