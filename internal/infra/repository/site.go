package repository

import (
	"context"
	"time"

	"nagoyameshi/internal/domain/site"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type SiteWriteQueries interface {
	GetCompany(ctx context.Context, db pgsql.DBTX) (pgsql.Company, error)
	UpdateCompany(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateCompanyParams) (int64, error)
	GetTerms(ctx context.Context, db pgsql.DBTX) (pgsql.Term, error)
	UpdateTerms(ctx context.Context, db pgsql.DBTX, id int64, content string, updatedAt pgtype.Timestamptz) (int64, error)
}

type SiteRepository struct {
	queries SiteWriteQueries
	db      pgsql.DBTX
	now     func() time.Time
}

func NewSiteRepository(queries SiteWriteQueries, db pgsql.DBTX, now func() time.Time) *SiteRepository {
	return &SiteRepository{queries: queries, db: db, now: now}
}

func (r *SiteRepository) Company(ctx context.Context) (*site.Company, error) {
	row, err := r.queries.GetCompany(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load company", err)
	}
	return &site.Company{
		ID:                row.ID,
		Name:              row.Name,
		PostalCode:        row.PostalCode,
		Address:           row.Address,
		Representative:    row.Representative,
		EstablishmentDate: row.EstablishmentDate,
		Capital:           row.Capital,
		Business:          row.Business,
		NumberOfEmployees: row.NumberOfEmployees,
	}, nil
}

func (r *SiteRepository) SaveCompany(ctx context.Context, c *site.Company) error {
	n, err := r.queries.UpdateCompany(ctx, r.db, pgsql.UpdateCompanyParams{
		ID:                c.ID,
		Name:              c.Name,
		PostalCode:        c.PostalCode,
		Address:           c.Address,
		Representative:    c.Representative,
		EstablishmentDate: c.EstablishmentDate,
		Capital:           c.Capital,
		Business:          c.Business,
		NumberOfEmployees: c.NumberOfEmployees,
		UpdatedAt:         pgconv.TimeToPgtype(r.now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save company", err)
	}
	if n == 0 {
		return infra.NotFound("company not found")
	}
	return nil
}

func (r *SiteRepository) Terms(ctx context.Context) (*site.Terms, error) {
	row, err := r.queries.GetTerms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load terms", err)
	}
	return &site.Terms{ID: row.ID, Content: row.Content}, nil
}

func (r *SiteRepository) SaveTerms(ctx context.Context, t *site.Terms) error {
	n, err := r.queries.UpdateTerms(ctx, r.db, t.ID, t.Content, pgconv.TimeToPgtype(r.now()))
	if err != nil {
		return infra.WrapRepoErr("failed to save terms", err)
	}
	if n == 0 {
		return infra.NotFound("terms not found")
	}
	return nil
}
