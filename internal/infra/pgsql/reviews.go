package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createReview = `-- name: CreateReview :one
INSERT INTO reviews (score, content, restaurant_id, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id
`

type CreateReviewParams struct {
	Score        float64
	Content      string
	RestaurantID int64
	UserID       int64
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateReview(ctx context.Context, db DBTX, arg CreateReviewParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, createReview, arg.Score, arg.Content, arg.RestaurantID, arg.UserID, arg.CreatedAt).Scan(&id)
	return id, err
}

const getReviewByID = `-- name: GetReviewByID :one
SELECT id, score, content, restaurant_id, user_id, created_at, updated_at FROM reviews WHERE id = $1
`

func (q *Queries) GetReviewByID(ctx context.Context, db DBTX, id int64) (Review, error) {
	var i Review
	err := db.QueryRow(ctx, getReviewByID, id).Scan(
		&i.ID,
		&i.Score,
		&i.Content,
		&i.RestaurantID,
		&i.UserID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// user_id and restaurant_id are deliberately absent from the SET list.
const updateReview = `-- name: UpdateReview :execrows
UPDATE reviews SET score = $2, content = $3, updated_at = $4 WHERE id = $1
`

type UpdateReviewParams struct {
	ID        int64
	Score     float64
	Content   string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateReview(ctx context.Context, db DBTX, arg UpdateReviewParams) (int64, error) {
	result, err := db.Exec(ctx, updateReview, arg.ID, arg.Score, arg.Content, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReview = `-- name: DeleteReview :execrows
DELETE FROM reviews WHERE id = $1
`

func (q *Queries) DeleteReview(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, deleteReview, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type ReviewListRow struct {
	Review
	UserName string
}

const listReviewsByRestaurant = `-- name: ListReviewsByRestaurant :many
SELECT rv.id, rv.score, rv.content, rv.restaurant_id, rv.user_id, rv.created_at, rv.updated_at, u.name
FROM reviews rv
JOIN users u ON u.id = rv.user_id
WHERE rv.restaurant_id = $1
ORDER BY rv.created_at DESC, rv.id DESC
LIMIT $2 OFFSET $3
`

type ListByRestaurantParams struct {
	RestaurantID int64
	Limit        int32
	Offset       int32
}

func (q *Queries) ListReviewsByRestaurant(ctx context.Context, db DBTX, arg ListByRestaurantParams) ([]ReviewListRow, error) {
	rows, err := db.Query(ctx, listReviewsByRestaurant, arg.RestaurantID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReviewListRow
	for rows.Next() {
		var i ReviewListRow
		if err := rows.Scan(
			&i.ID,
			&i.Score,
			&i.Content,
			&i.RestaurantID,
			&i.UserID,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.UserName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countReviewsByRestaurant = `-- name: CountReviewsByRestaurant :one
SELECT COUNT(*) FROM reviews WHERE restaurant_id = $1
`

func (q *Queries) CountReviewsByRestaurant(ctx context.Context, db DBTX, restaurantID int64) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countReviewsByRestaurant, restaurantID).Scan(&count)
	return count, err
}
