package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertFavorite = `-- name: InsertFavorite :execrows
INSERT INTO favorites (user_id, restaurant_id, created_at) VALUES ($1, $2, $3)
ON CONFLICT (user_id, restaurant_id) DO NOTHING
`

type InsertFavoriteParams struct {
	UserID       int64
	RestaurantID int64
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) InsertFavorite(ctx context.Context, db DBTX, arg InsertFavoriteParams) (int64, error) {
	result, err := db.Exec(ctx, insertFavorite, arg.UserID, arg.RestaurantID, arg.CreatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteFavorite = `-- name: DeleteFavorite :execrows
DELETE FROM favorites WHERE user_id = $1 AND restaurant_id = $2
`

func (q *Queries) DeleteFavorite(ctx context.Context, db DBTX, userID, restaurantID int64) (int64, error) {
	result, err := db.Exec(ctx, deleteFavorite, userID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const isFavorite = `-- name: IsFavorite :one
SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND restaurant_id = $2)
`

func (q *Queries) IsFavorite(ctx context.Context, db DBTX, userID, restaurantID int64) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, isFavorite, userID, restaurantID).Scan(&exists)
	return exists, err
}

type FavoriteListRow struct {
	RestaurantID int64
	Name         string
	Image        string
	Description  string
	LowestPrice  int32
	HighestPrice int32
	CreatedAt    pgtype.Timestamptz
}

const listFavoritesByUser = `-- name: ListFavoritesByUser :many
SELECT r.id, r.name, r.image, r.description, r.lowest_price, r.highest_price, f.created_at
FROM favorites f
JOIN restaurants r ON r.id = f.restaurant_id
WHERE f.user_id = $1
ORDER BY f.created_at DESC, r.id DESC
LIMIT $2 OFFSET $3
`

func (q *Queries) ListFavoritesByUser(ctx context.Context, db DBTX, arg ListByUserParams) ([]FavoriteListRow, error) {
	rows, err := db.Query(ctx, listFavoritesByUser, arg.UserID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FavoriteListRow
	for rows.Next() {
		var i FavoriteListRow
		if err := rows.Scan(
			&i.RestaurantID,
			&i.Name,
			&i.Image,
			&i.Description,
			&i.LowestPrice,
			&i.HighestPrice,
			&i.CreatedAt,
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

const countFavoritesByUser = `-- name: CountFavoritesByUser :one
SELECT COUNT(*) FROM favorites WHERE user_id = $1
`

func (q *Queries) CountFavoritesByUser(ctx context.Context, db DBTX, userID int64) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countFavoritesByUser, userID).Scan(&count)
	return count, err
}
