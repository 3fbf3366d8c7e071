package readstore

import (
	"context"

	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/usecase/queries"
)

type SiteViewQueries interface {
	GetCompany(ctx context.Context, db pgsql.DBTX) (pgsql.Company, error)
	GetTerms(ctx context.Context, db pgsql.DBTX) (pgsql.Term, error)
	GetDashboardCounts(ctx context.Context, db pgsql.DBTX) (pgsql.DashboardCounts, error)
}

type SiteReadStore struct {
	queries SiteViewQueries
	db      pgsql.DBTX
}

func NewSiteReadStore(queries SiteViewQueries, db pgsql.DBTX) *SiteReadStore {
	return &SiteReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SiteReadStore) Company(ctx context.Context) (*queries.CompanyView, error) {
	row, err := r.queries.GetCompany(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get company", err)
	}
	return &queries.CompanyView{
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

func (r *SiteReadStore) Terms(ctx context.Context) (*queries.TermsView, error) {
	row, err := r.queries.GetTerms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get terms", err)
	}
	return &queries.TermsView{ID: row.ID, Content: row.Content}, nil
}

func (r *SiteReadStore) DashboardCounts(ctx context.Context) (*queries.DashboardCounts, error) {
	row, err := r.queries.GetDashboardCounts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get dashboard counts", err)
	}
	return &queries.DashboardCounts{
		Members:        row.Members,
		PremiumMembers: row.PremiumMembers,
		Restaurants:    row.Restaurants,
		Reservations:   row.Reservations,
	}, nil
}
