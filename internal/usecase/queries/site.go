package queries

import (
	"context"
)

type DashboardCounts struct {
	Members        int64
	PremiumMembers int64
	Restaurants    int64
	Reservations   int64
}

type SiteReadStore interface {
	Company(ctx context.Context) (*CompanyView, error)
	Terms(ctx context.Context) (*TermsView, error)
	DashboardCounts(ctx context.Context) (*DashboardCounts, error)
}

type SiteQueries interface {
	Company(ctx context.Context) (*CompanyView, error)
	Terms(ctx context.Context) (*TermsView, error)
	Dashboard(ctx context.Context) (*DashboardView, error)
}

type siteQueriesImpl struct {
	store      SiteReadStore
	monthlyFee int64
}

func NewSiteQueries(store SiteReadStore, monthlyFee int64) SiteQueries {
	return &siteQueriesImpl{store: store, monthlyFee: monthlyFee}
}

func (q *siteQueriesImpl) Company(ctx context.Context) (*CompanyView, error) {
	return q.store.Company(ctx)
}

func (q *siteQueriesImpl) Terms(ctx context.Context) (*TermsView, error) {
	return q.store.Terms(ctx)
}

// Dashboard reports monthly sales as fee x currently active subscriptions.
func (q *siteQueriesImpl) Dashboard(ctx context.Context) (*DashboardView, error) {
	c, err := q.store.DashboardCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardView{
		Members:        c.Members,
		PremiumMembers: c.PremiumMembers,
		FreeMembers:    c.Members - c.PremiumMembers,
		Restaurants:    c.Restaurants,
		Reservations:   c.Reservations,
		MonthlySales:   c.PremiumMembers * q.monthlyFee,
	}, nil
}
