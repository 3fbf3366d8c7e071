package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, name, kana, email, password_hash, postal_code, address, phone_number, birthday, occupation, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var i User
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Kana,
		&i.Email,
		&i.PasswordHash,
		&i.PostalCode,
		&i.Address,
		&i.PhoneNumber,
		&i.Birthday,
		&i.Occupation,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (name, kana, email, password_hash, postal_code, address, phone_number, birthday, occupation, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING ` + userColumns

type CreateUserParams struct {
	Name         string
	Kana         string
	Email        string
	PasswordHash string
	PostalCode   string
	Address      string
	PhoneNumber  string
	Birthday     pgtype.Date
	Occupation   string
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (User, error) {
	row := db.QueryRow(ctx, createUser,
		arg.Name,
		arg.Kana,
		arg.Email,
		arg.PasswordHash,
		arg.PostalCode,
		arg.Address,
		arg.PhoneNumber,
		arg.Birthday,
		arg.Occupation,
		arg.CreatedAt,
	)
	return scanUser(row)
}

const updateUserProfile = `-- name: UpdateUserProfile :execrows
UPDATE users
SET name = $2, kana = $3, email = $4, postal_code = $5, address = $6, phone_number = $7,
    birthday = $8, occupation = $9, updated_at = $10
WHERE id = $1
`

type UpdateUserProfileParams struct {
	ID          int64
	Name        string
	Kana        string
	Email       string
	PostalCode  string
	Address     string
	PhoneNumber string
	Birthday    pgtype.Date
	Occupation  string
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) UpdateUserProfile(ctx context.Context, db DBTX, arg UpdateUserProfileParams) (int64, error) {
	result, err := db.Exec(ctx, updateUserProfile,
		arg.ID,
		arg.Name,
		arg.Kana,
		arg.Email,
		arg.PostalCode,
		arg.Address,
		arg.PhoneNumber,
		arg.Birthday,
		arg.Occupation,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getUserByID = `-- name: GetUserByID :one
SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id int64) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

const getUserByEmail = `-- name: GetUserByEmail :one
SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByEmail, email))
}

const listUsers = `-- name: ListUsers :many
SELECT ` + userColumns + ` FROM users
WHERE $1::text = '' OR name ILIKE '%' || $1::text || '%' ESCAPE '\' OR kana ILIKE '%' || $1::text || '%' ESCAPE '\'
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

type ListUsersParams struct {
	Keyword string
	Limit   int32
	Offset  int32
}

func (q *Queries) ListUsers(ctx context.Context, db DBTX, arg ListUsersParams) ([]User, error) {
	rows, err := db.Query(ctx, listUsers, arg.Keyword, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		i, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countUsers = `-- name: CountUsers :one
SELECT COUNT(*) FROM users
WHERE $1::text = '' OR name ILIKE '%' || $1::text || '%' ESCAPE '\' OR kana ILIKE '%' || $1::text || '%' ESCAPE '\'`

func (q *Queries) CountUsers(ctx context.Context, db DBTX, keyword string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countUsers, keyword).Scan(&count)
	return count, err
}
