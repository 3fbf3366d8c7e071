package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservations (reserved_datetime, number_of_people, restaurant_id, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id
`

type CreateReservationParams struct {
	ReservedDatetime pgtype.Timestamptz
	NumberOfPeople   int32
	RestaurantID     int64
	UserID           int64
	CreatedAt        pgtype.Timestamptz
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, createReservation,
		arg.ReservedDatetime,
		arg.NumberOfPeople,
		arg.RestaurantID,
		arg.UserID,
		arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const getReservationByID = `-- name: GetReservationByID :one
SELECT id, reserved_datetime, number_of_people, restaurant_id, user_id, created_at, updated_at
FROM reservations WHERE id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id int64) (Reservation, error) {
	var i Reservation
	err := db.QueryRow(ctx, getReservationByID, id).Scan(
		&i.ID,
		&i.ReservedDatetime,
		&i.NumberOfPeople,
		&i.RestaurantID,
		&i.UserID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteReservation = `-- name: DeleteReservation :execrows
DELETE FROM reservations WHERE id = $1
`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type ReservationListRow struct {
	Reservation
	RestaurantName  string
	RestaurantImage string
}

const listReservationsByUser = `-- name: ListReservationsByUser :many
SELECT rv.id, rv.reserved_datetime, rv.number_of_people, rv.restaurant_id, rv.user_id, rv.created_at, rv.updated_at,
    r.name, r.image
FROM reservations rv
JOIN restaurants r ON r.id = rv.restaurant_id
WHERE rv.user_id = $1
ORDER BY rv.reserved_datetime DESC, rv.id DESC
LIMIT $2 OFFSET $3
`

type ListByUserParams struct {
	UserID int64
	Limit  int32
	Offset int32
}

func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, arg ListByUserParams) ([]ReservationListRow, error) {
	rows, err := db.Query(ctx, listReservationsByUser, arg.UserID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReservationListRow
	for rows.Next() {
		var i ReservationListRow
		if err := rows.Scan(
			&i.ID,
			&i.ReservedDatetime,
			&i.NumberOfPeople,
			&i.RestaurantID,
			&i.UserID,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.RestaurantName,
			&i.RestaurantImage,
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

const countReservationsByUser = `-- name: CountReservationsByUser :one
SELECT COUNT(*) FROM reservations WHERE user_id = $1
`

func (q *Queries) CountReservationsByUser(ctx context.Context, db DBTX, userID int64) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countReservationsByUser, userID).Scan(&count)
	return count, err
}
