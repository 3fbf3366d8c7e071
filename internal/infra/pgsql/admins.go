package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createAdmin = `-- name: CreateAdmin :one
INSERT INTO admins (email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $3)
RETURNING id, email, password_hash, created_at, updated_at
`

type CreateAdminParams struct {
	Email        string
	PasswordHash string
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateAdmin(ctx context.Context, db DBTX, arg CreateAdminParams) (Admin, error) {
	row := db.QueryRow(ctx, createAdmin, arg.Email, arg.PasswordHash, arg.CreatedAt)
	var i Admin
	err := row.Scan(&i.ID, &i.Email, &i.PasswordHash, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getAdminByEmail = `-- name: GetAdminByEmail :one
SELECT id, email, password_hash, created_at, updated_at FROM admins WHERE email = $1
`

func (q *Queries) GetAdminByEmail(ctx context.Context, db DBTX, email string) (Admin, error) {
	row := db.QueryRow(ctx, getAdminByEmail, email)
	var i Admin
	err := row.Scan(&i.ID, &i.Email, &i.PasswordHash, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getAdminByID = `-- name: GetAdminByID :one
SELECT id, email, password_hash, created_at, updated_at FROM admins WHERE id = $1
`

func (q *Queries) GetAdminByID(ctx context.Context, db DBTX, id int64) (Admin, error) {
	row := db.QueryRow(ctx, getAdminByID, id)
	var i Admin
	err := row.Scan(&i.ID, &i.Email, &i.PasswordHash, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}
