package repository

import (
	"context"
	"time"

	"nagoyameshi/internal/domain/category"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type CategoryWriteQueries interface {
	CreateCategory(ctx context.Context, db pgsql.DBTX, name string, createdAt pgtype.Timestamptz) (pgsql.Category, error)
	UpdateCategory(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateCategoryParams) (int64, error)
	DeleteCategory(ctx context.Context, db pgsql.DBTX, id int64) (int64, error)
	GetCategoryByID(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Category, error)
	CountExistingCategories(ctx context.Context, db pgsql.DBTX, ids []int64) (int64, error)
}

type CategoryRepository struct {
	queries CategoryWriteQueries
	db      pgsql.DBTX
	now     func() time.Time
}

func NewCategoryRepository(queries CategoryWriteQueries, db pgsql.DBTX, now func() time.Time) *CategoryRepository {
	return &CategoryRepository{queries: queries, db: db, now: now}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) (int64, error) {
	row, err := r.queries.CreateCategory(ctx, r.db, c.Name(), pgconv.TimeToPgtype(r.now()))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create category", err)
	}
	return row.ID, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	n, err := r.queries.UpdateCategory(ctx, r.db, pgsql.UpdateCategoryParams{
		ID:        c.ID(),
		Name:      c.Name(),
		UpdatedAt: pgconv.TimeToPgtype(r.now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update category", err)
	}
	if n == 0 {
		return infra.NotFound("category not found")
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteCategory(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete category", err)
	}
	if n == 0 {
		return infra.NotFound("category not found")
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*category.Category, error) {
	row, err := r.queries.GetCategoryByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find category", err)
	}
	return category.ReconstructCategory(row.ID, row.Name), nil
}

func (r *CategoryRepository) CountExisting(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.queries.CountExistingCategories(ctx, r.db, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count categories", err)
	}
	return int(n), nil
}
