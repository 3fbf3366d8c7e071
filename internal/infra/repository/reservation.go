package repository

import (
	"context"

	"nagoyameshi/internal/domain/reservation"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/infra/pgsql"
	"nagoyameshi/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateReservationParams) (int64, error)
	GetReservationByID(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Reservation, error)
	DeleteReservation(ctx context.Context, db pgsql.DBTX, id int64) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      pgsql.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db pgsql.DBTX) *ReservationRepository {
	return &ReservationRepository{queries: queries, db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	id, err := r.queries.CreateReservation(ctx, r.db, pgsql.CreateReservationParams{
		ReservedDatetime: pgconv.TimeToPgtype(res.ReservedAt()),
		NumberOfPeople:   int32(res.PartySize().Value()),
		RestaurantID:     res.RestaurantID(),
		UserID:           res.UserID(),
		CreatedAt:        pgconv.TimeToPgtype(res.CreatedAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return toReservation(row), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.NotFound("reservation not found")
	}
	return nil
}
