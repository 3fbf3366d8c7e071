package repository

import (
	"context"

	"nagoyameshi/internal/domain/admin"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"
)

type AdminWriteQueries interface {
	CreateAdmin(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateAdminParams) (pgsql.Admin, error)
	GetAdminByEmail(ctx context.Context, db pgsql.DBTX, email string) (pgsql.Admin, error)
}

type AdminRepository struct {
	queries AdminWriteQueries
	db      pgsql.DBTX
}

func NewAdminRepository(queries AdminWriteQueries, db pgsql.DBTX) *AdminRepository {
	return &AdminRepository{queries: queries, db: db}
}

func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) (int64, error) {
	row, err := r.queries.CreateAdmin(ctx, r.db, pgsql.CreateAdminParams{
		Email:        a.Email().Value(),
		PasswordHash: a.PasswordHash(),
		CreatedAt:    pgconv.TimeToPgtype(a.CreatedAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create admin", err)
	}
	return row.ID, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	row, err := r.queries.GetAdminByEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find admin by email", err)
	}
	return admin.ReconstructAdmin(row.ID, row.Email, row.PasswordHash, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
