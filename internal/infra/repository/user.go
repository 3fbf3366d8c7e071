package repository

import (
	"context"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateUserParams) (pgsql.User, error)
	UpdateUserProfile(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateUserProfileParams) (int64, error)
	GetUserByID(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.User, error)
	GetUserByEmail(ctx context.Context, db pgsql.DBTX, email string) (pgsql.User, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      pgsql.DBTX
}

func NewUserRepository(queries UserWriteQueries, db pgsql.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	row, err := r.queries.CreateUser(ctx, r.db, pgsql.CreateUserParams{
		Name:         u.Name(),
		Kana:         u.Kana(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		PostalCode:   u.PostalCode(),
		Address:      u.Address(),
		PhoneNumber:  u.PhoneNumber(),
		Birthday:     pgconv.DatePtrToPgtype(u.Birthday()),
		Occupation:   u.Occupation(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return row.ID, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	n, err := r.queries.UpdateUserProfile(ctx, r.db, pgsql.UpdateUserProfileParams{
		ID:          u.ID(),
		Name:        u.Name(),
		Kana:        u.Kana(),
		Email:       u.Email().Value(),
		PostalCode:  u.PostalCode(),
		Address:     u.Address(),
		PhoneNumber: u.PhoneNumber(),
		Birthday:    pgconv.DatePtrToPgtype(u.Birthday()),
		Occupation:  u.Occupation(),
		UpdatedAt:   pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if n == 0 {
		return infra.NotFound("user not found")
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return toUser(row), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUser(row), nil
}
