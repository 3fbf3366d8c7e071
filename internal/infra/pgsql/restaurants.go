package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const restaurantColumns = `r.id, r.name, r.image, r.description, r.lowest_price, r.highest_price, r.postal_code, r.address,
    r.opening_time, r.closing_time, r.seating_capacity, r.created_at, r.updated_at`

func restaurantDest(i *Restaurant) []any {
	return []any{
		&i.ID,
		&i.Name,
		&i.Image,
		&i.Description,
		&i.LowestPrice,
		&i.HighestPrice,
		&i.PostalCode,
		&i.Address,
		&i.OpeningTime,
		&i.ClosingTime,
		&i.SeatingCapacity,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}

const createRestaurant = `-- name: CreateRestaurant :one
INSERT INTO restaurants (name, image, description, lowest_price, highest_price, postal_code, address,
    opening_time, closing_time, seating_capacity, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
RETURNING id
`

type CreateRestaurantParams struct {
	Name            string
	Image           string
	Description     string
	LowestPrice     int32
	HighestPrice    int32
	PostalCode      string
	Address         string
	OpeningTime     pgtype.Time
	ClosingTime     pgtype.Time
	SeatingCapacity int32
	CreatedAt       pgtype.Timestamptz
}

func (q *Queries) CreateRestaurant(ctx context.Context, db DBTX, arg CreateRestaurantParams) (int64, error) {
	row := db.QueryRow(ctx, createRestaurant,
		arg.Name,
		arg.Image,
		arg.Description,
		arg.LowestPrice,
		arg.HighestPrice,
		arg.PostalCode,
		arg.Address,
		arg.OpeningTime,
		arg.ClosingTime,
		arg.SeatingCapacity,
		arg.CreatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updateRestaurant = `-- name: UpdateRestaurant :execrows
UPDATE restaurants
SET name = $2, image = $3, description = $4, lowest_price = $5, highest_price = $6, postal_code = $7,
    address = $8, opening_time = $9, closing_time = $10, seating_capacity = $11, updated_at = $12
WHERE id = $1
`

type UpdateRestaurantParams struct {
	ID              int64
	Name            string
	Image           string
	Description     string
	LowestPrice     int32
	HighestPrice    int32
	PostalCode      string
	Address         string
	OpeningTime     pgtype.Time
	ClosingTime     pgtype.Time
	SeatingCapacity int32
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) UpdateRestaurant(ctx context.Context, db DBTX, arg UpdateRestaurantParams) (int64, error) {
	result, err := db.Exec(ctx, updateRestaurant,
		arg.ID,
		arg.Name,
		arg.Image,
		arg.Description,
		arg.LowestPrice,
		arg.HighestPrice,
		arg.PostalCode,
		arg.Address,
		arg.OpeningTime,
		arg.ClosingTime,
		arg.SeatingCapacity,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteRestaurant = `-- name: DeleteRestaurant :execrows
DELETE FROM restaurants WHERE id = $1
`

func (q *Queries) DeleteRestaurant(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, deleteRestaurant, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getRestaurantByID = `-- name: GetRestaurantByID :one
SELECT ` + restaurantColumns + ` FROM restaurants r WHERE r.id = $1`

func (q *Queries) GetRestaurantByID(ctx context.Context, db DBTX, id int64) (Restaurant, error) {
	var i Restaurant
	err := db.QueryRow(ctx, getRestaurantByID, id).Scan(restaurantDest(&i)...)
	return i, err
}

const restaurantExists = `-- name: RestaurantExists :one
SELECT EXISTS (SELECT 1 FROM restaurants WHERE id = $1)
`

func (q *Queries) RestaurantExists(ctx context.Context, db DBTX, id int64) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, restaurantExists, id).Scan(&exists)
	return exists, err
}

const deleteRestaurantCategories = `-- name: DeleteRestaurantCategories :exec
DELETE FROM category_restaurant WHERE restaurant_id = $1
`

func (q *Queries) DeleteRestaurantCategories(ctx context.Context, db DBTX, restaurantID int64) error {
	_, err := db.Exec(ctx, deleteRestaurantCategories, restaurantID)
	return err
}

const insertRestaurantCategories = `-- name: InsertRestaurantCategories :exec
INSERT INTO category_restaurant (restaurant_id, category_id)
SELECT $1, unnest($2::bigint[])
`

func (q *Queries) InsertRestaurantCategories(ctx context.Context, db DBTX, restaurantID int64, categoryIDs []int64) error {
	_, err := db.Exec(ctx, insertRestaurantCategories, restaurantID, categoryIDs)
	return err
}

const deleteRestaurantHolidays = `-- name: DeleteRestaurantHolidays :exec
DELETE FROM regular_holiday_restaurant WHERE restaurant_id = $1
`

func (q *Queries) DeleteRestaurantHolidays(ctx context.Context, db DBTX, restaurantID int64) error {
	_, err := db.Exec(ctx, deleteRestaurantHolidays, restaurantID)
	return err
}

const insertRestaurantHolidays = `-- name: InsertRestaurantHolidays :exec
INSERT INTO regular_holiday_restaurant (restaurant_id, regular_holiday_id)
SELECT $1, unnest($2::bigint[])
`

func (q *Queries) InsertRestaurantHolidays(ctx context.Context, db DBTX, restaurantID int64, holidayIDs []int64) error {
	_, err := db.Exec(ctx, insertRestaurantHolidays, restaurantID, holidayIDs)
	return err
}

const listRestaurantCategoryIDs = `-- name: ListRestaurantCategoryIDs :many
SELECT category_id FROM category_restaurant WHERE restaurant_id = $1 ORDER BY category_id
`

func (q *Queries) ListRestaurantCategoryIDs(ctx context.Context, db DBTX, restaurantID int64) ([]int64, error) {
	return collectIDs(ctx, db, listRestaurantCategoryIDs, restaurantID)
}

const listRestaurantHolidayIDs = `-- name: ListRestaurantHolidayIDs :many
SELECT regular_holiday_id FROM regular_holiday_restaurant WHERE restaurant_id = $1 ORDER BY regular_holiday_id
`

func (q *Queries) ListRestaurantHolidayIDs(ctx context.Context, db DBTX, restaurantID int64) ([]int64, error) {
	return collectIDs(ctx, db, listRestaurantHolidayIDs, restaurantID)
}

func collectIDs(ctx context.Context, db DBTX, sql string, args ...any) ([]int64, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Listing rows carry aggregate columns next to the restaurant itself.

type RestaurantListRow struct {
	Restaurant
	AverageScore     float64
	ReviewCount      int64
	ReservationCount int64
}

const restaurantListFrom = `
FROM restaurants r
LEFT JOIN (
    SELECT restaurant_id, AVG(score)::float8 AS average_score, COUNT(*) AS review_count
    FROM reviews GROUP BY restaurant_id
) rv ON rv.restaurant_id = r.id
LEFT JOIN (
    SELECT restaurant_id, COUNT(*) AS reservation_count
    FROM reservations GROUP BY restaurant_id
) rs ON rs.restaurant_id = r.id
WHERE ($1::text = ''
        OR r.name ILIKE '%' || $1::text || '%' ESCAPE '\'
        OR ($2::boolean AND r.address ILIKE '%' || $1::text || '%' ESCAPE '\')
        OR ($2::boolean AND EXISTS (
            SELECT 1 FROM category_restaurant cr JOIN categories c ON c.id = cr.category_id
            WHERE cr.restaurant_id = r.id AND c.name ILIKE '%' || $1::text || '%' ESCAPE '\')))
  AND ($3::bigint IS NULL OR EXISTS (
        SELECT 1 FROM category_restaurant cr WHERE cr.restaurant_id = r.id AND cr.category_id = $3::bigint))
  AND ($4::integer IS NULL OR r.lowest_price <= $4::integer)
`

const searchRestaurants = `-- name: SearchRestaurants :many
SELECT ` + restaurantColumns + `,
    COALESCE(rv.average_score, 0)::float8 AS average_score,
    COALESCE(rv.review_count, 0) AS review_count,
    COALESCE(rs.reservation_count, 0) AS reservation_count` + restaurantListFrom + `
ORDER BY
    CASE WHEN $5::text = 'lowest_price asc' THEN r.lowest_price END ASC,
    CASE WHEN $5::text = 'rating desc' THEN COALESCE(rv.average_score, 0) END DESC,
    CASE WHEN $5::text = 'popular desc' THEN COALESCE(rs.reservation_count, 0) END DESC,
    r.created_at DESC, r.id DESC
LIMIT $6 OFFSET $7`

type SearchRestaurantsParams struct {
	Keyword    string
	WideMatch  bool
	CategoryID pgtype.Int8
	MaxPrice   pgtype.Int4
	Sort       string
	Limit      int32
	Offset     int32
}

func (q *Queries) SearchRestaurants(ctx context.Context, db DBTX, arg SearchRestaurantsParams) ([]RestaurantListRow, error) {
	rows, err := db.Query(ctx, searchRestaurants,
		arg.Keyword,
		arg.WideMatch,
		arg.CategoryID,
		arg.MaxPrice,
		arg.Sort,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RestaurantListRow
	for rows.Next() {
		var i RestaurantListRow
		dest := append(restaurantDest(&i.Restaurant), &i.AverageScore, &i.ReviewCount, &i.ReservationCount)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countRestaurants = `-- name: CountRestaurants :one
SELECT COUNT(*)` + restaurantListFrom

type CountRestaurantsParams struct {
	Keyword    string
	WideMatch  bool
	CategoryID pgtype.Int8
	MaxPrice   pgtype.Int4
}

func (q *Queries) CountRestaurants(ctx context.Context, db DBTX, arg CountRestaurantsParams) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countRestaurants, arg.Keyword, arg.WideMatch, arg.CategoryID, arg.MaxPrice).Scan(&count)
	return count, err
}

const getRestaurantSummary = `-- name: GetRestaurantSummary :one
SELECT ` + restaurantColumns + `,
    COALESCE(rv.average_score, 0)::float8 AS average_score,
    COALESCE(rv.review_count, 0) AS review_count,
    COALESCE(rs.reservation_count, 0) AS reservation_count
FROM restaurants r
LEFT JOIN (
    SELECT restaurant_id, AVG(score)::float8 AS average_score, COUNT(*) AS review_count
    FROM reviews WHERE restaurant_id = $1 GROUP BY restaurant_id
) rv ON rv.restaurant_id = r.id
LEFT JOIN (
    SELECT restaurant_id, COUNT(*) AS reservation_count
    FROM reservations WHERE restaurant_id = $1 GROUP BY restaurant_id
) rs ON rs.restaurant_id = r.id
WHERE r.id = $1`

func (q *Queries) GetRestaurantSummary(ctx context.Context, db DBTX, id int64) (RestaurantListRow, error) {
	var i RestaurantListRow
	dest := append(restaurantDest(&i.Restaurant), &i.AverageScore, &i.ReviewCount, &i.ReservationCount)
	err := db.QueryRow(ctx, getRestaurantSummary, id).Scan(dest...)
	return i, err
}

type RestaurantCategoryRow struct {
	RestaurantID int64
	CategoryID   int64
	Name         string
}

const listCategoriesForRestaurants = `-- name: ListCategoriesForRestaurants :many
SELECT cr.restaurant_id, c.id, c.name
FROM category_restaurant cr
JOIN categories c ON c.id = cr.category_id
WHERE cr.restaurant_id = ANY($1::bigint[])
ORDER BY cr.restaurant_id, c.id
`

func (q *Queries) ListCategoriesForRestaurants(ctx context.Context, db DBTX, restaurantIDs []int64) ([]RestaurantCategoryRow, error) {
	rows, err := db.Query(ctx, listCategoriesForRestaurants, restaurantIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RestaurantCategoryRow
	for rows.Next() {
		var i RestaurantCategoryRow
		if err := rows.Scan(&i.RestaurantID, &i.CategoryID, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listHolidaysForRestaurant = `-- name: ListHolidaysForRestaurant :many
SELECT h.id, h.day, h.day_index
FROM regular_holiday_restaurant hr
JOIN regular_holidays h ON h.id = hr.regular_holiday_id
WHERE hr.restaurant_id = $1
ORDER BY h.id
`

func (q *Queries) ListHolidaysForRestaurant(ctx context.Context, db DBTX, restaurantID int64) ([]RegularHoliday, error) {
	return queryHolidays(ctx, db, listHolidaysForRestaurant, restaurantID)
}

const listRegularHolidays = `-- name: ListRegularHolidays :many
SELECT id, day, day_index FROM regular_holidays ORDER BY id
`

func (q *Queries) ListRegularHolidays(ctx context.Context, db DBTX) ([]RegularHoliday, error) {
	return queryHolidays(ctx, db, listRegularHolidays)
}

func queryHolidays(ctx context.Context, db DBTX, sql string, args ...any) ([]RegularHoliday, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RegularHoliday
	for rows.Next() {
		var i RegularHoliday
		if err := rows.Scan(&i.ID, &i.Day, &i.DayIndex); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
