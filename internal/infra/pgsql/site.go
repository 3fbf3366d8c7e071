package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getCompany = `-- name: GetCompany :one
SELECT id, name, postal_code, address, representative, establishment_date, capital, business, number_of_employees, updated_at
FROM companies ORDER BY id LIMIT 1
`

func (q *Queries) GetCompany(ctx context.Context, db DBTX) (Company, error) {
	var i Company
	err := db.QueryRow(ctx, getCompany).Scan(
		&i.ID,
		&i.Name,
		&i.PostalCode,
		&i.Address,
		&i.Representative,
		&i.EstablishmentDate,
		&i.Capital,
		&i.Business,
		&i.NumberOfEmployees,
		&i.UpdatedAt,
	)
	return i, err
}

const updateCompany = `-- name: UpdateCompany :execrows
UPDATE companies
SET name = $2, postal_code = $3, address = $4, representative = $5, establishment_date = $6, capital = $7,
    business = $8, number_of_employees = $9, updated_at = $10
WHERE id = $1
`

type UpdateCompanyParams struct {
	ID                int64
	Name              string
	PostalCode        string
	Address           string
	Representative    string
	EstablishmentDate string
	Capital           string
	Business          string
	NumberOfEmployees string
	UpdatedAt         pgtype.Timestamptz
}

func (q *Queries) UpdateCompany(ctx context.Context, db DBTX, arg UpdateCompanyParams) (int64, error) {
	result, err := db.Exec(ctx, updateCompany,
		arg.ID,
		arg.Name,
		arg.PostalCode,
		arg.Address,
		arg.Representative,
		arg.EstablishmentDate,
		arg.Capital,
		arg.Business,
		arg.NumberOfEmployees,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getTerms = `-- name: GetTerms :one
SELECT id, content, updated_at FROM terms ORDER BY id LIMIT 1
`

func (q *Queries) GetTerms(ctx context.Context, db DBTX) (Term, error) {
	var i Term
	err := db.QueryRow(ctx, getTerms).Scan(&i.ID, &i.Content, &i.UpdatedAt)
	return i, err
}

const updateTerms = `-- name: UpdateTerms :execrows
UPDATE terms SET content = $2, updated_at = $3 WHERE id = $1
`

func (q *Queries) UpdateTerms(ctx context.Context, db DBTX, id int64, content string, updatedAt pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, updateTerms, id, content, updatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type DashboardCounts struct {
	Members        int64
	PremiumMembers int64
	Restaurants    int64
	Reservations   int64
}

const getDashboardCounts = `-- name: GetDashboardCounts :one
SELECT
    (SELECT COUNT(*) FROM users) AS members,
    (SELECT COUNT(*) FROM subscriptions WHERE status = 'active') AS premium_members,
    (SELECT COUNT(*) FROM restaurants) AS restaurants,
    (SELECT COUNT(*) FROM reservations) AS reservations
`

func (q *Queries) GetDashboardCounts(ctx context.Context, db DBTX) (DashboardCounts, error) {
	var i DashboardCounts
	err := db.QueryRow(ctx, getDashboardCounts).Scan(&i.Members, &i.PremiumMembers, &i.Restaurants, &i.Reservations)
	return i, err
}
