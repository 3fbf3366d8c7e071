package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createCategory = `-- name: CreateCategory :one
INSERT INTO categories (name, created_at, updated_at) VALUES ($1, $2, $2)
RETURNING id, name, created_at, updated_at
`

func (q *Queries) CreateCategory(ctx context.Context, db DBTX, name string, createdAt pgtype.Timestamptz) (Category, error) {
	var i Category
	err := db.QueryRow(ctx, createCategory, name, createdAt).Scan(&i.ID, &i.Name, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const updateCategory = `-- name: UpdateCategory :execrows
UPDATE categories SET name = $2, updated_at = $3 WHERE id = $1
`

type UpdateCategoryParams struct {
	ID        int64
	Name      string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateCategory(ctx context.Context, db DBTX, arg UpdateCategoryParams) (int64, error) {
	result, err := db.Exec(ctx, updateCategory, arg.ID, arg.Name, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCategory = `-- name: DeleteCategory :execrows
DELETE FROM categories WHERE id = $1
`

func (q *Queries) DeleteCategory(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, deleteCategory, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getCategoryByID = `-- name: GetCategoryByID :one
SELECT id, name, created_at, updated_at FROM categories WHERE id = $1
`

func (q *Queries) GetCategoryByID(ctx context.Context, db DBTX, id int64) (Category, error) {
	var i Category
	err := db.QueryRow(ctx, getCategoryByID, id).Scan(&i.ID, &i.Name, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listCategories = `-- name: ListCategories :many
SELECT id, name, created_at, updated_at FROM categories
WHERE $1::text = '' OR name ILIKE '%' || $1::text || '%' ESCAPE '\'
ORDER BY id
LIMIT $2 OFFSET $3
`

type ListCategoriesParams struct {
	Keyword string
	Limit   int32
	Offset  int32
}

func (q *Queries) ListCategories(ctx context.Context, db DBTX, arg ListCategoriesParams) ([]Category, error) {
	rows, err := db.Query(ctx, listCategories, arg.Keyword, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Category
	for rows.Next() {
		var i Category
		if err := rows.Scan(&i.ID, &i.Name, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countCategories = `-- name: CountCategories :one
SELECT COUNT(*) FROM categories WHERE $1::text = '' OR name ILIKE '%' || $1::text || '%' ESCAPE '\'
`

func (q *Queries) CountCategories(ctx context.Context, db DBTX, keyword string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countCategories, keyword).Scan(&count)
	return count, err
}

const countExistingCategories = `-- name: CountExistingCategories :one
SELECT COUNT(*) FROM categories WHERE id = ANY($1::bigint[])
`

func (q *Queries) CountExistingCategories(ctx context.Context, db DBTX, ids []int64) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countExistingCategories, ids).Scan(&count)
	return count, err
}
