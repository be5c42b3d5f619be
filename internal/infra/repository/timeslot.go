package repository

import (
	"context"

	"gin-order-service/internal/domain/timeslot"
	"gin-order-service/internal/infra"
	"gin-order-service/internal/infra/repository/converter"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TimeslotWriteQueries interface {
	GetTimeslotForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Timeslots, error)
	ListTimeslotReservations(ctx context.Context, db sqlc.DBTX, timeslotID uuid.UUID) ([]uuid.UUID, error)
	InsertTimeslotReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertTimeslotReservationParams) (int64, error)
	DeleteTimeslotReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteTimeslotReservationParams) (int64, error)
	UpdateTimeslotCurrentOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTimeslotCurrentOrdersParams) error
	UpdateTimeslotSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTimeslotSettingsParams) error
	CreateTimeslot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTimeslotParams) error
}

type TimeslotRepository struct {
	queries TimeslotWriteQueries
	db      sqlc.DBTX
}

func NewTimeslotRepository(queries TimeslotWriteQueries, db sqlc.DBTX) *TimeslotRepository {
	return &TimeslotRepository{
		queries: queries,
		db:      db,
	}
}

// FindForUpdate locks the slot row and loads its reservation set.
func (r *TimeslotRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*timeslot.Timeslot, error) {
	row, err := r.queries.GetTimeslotForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("timeslot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock timeslot", err)
	}

	orderIDs, err := r.queries.ListTimeslotReservations(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list timeslot reservations", err)
	}

	return converter.TimeslotFromRow(row, orderIDs), nil
}

// SaveReservation persists a reservation the domain already accepted.
func (r *TimeslotRepository) SaveReservation(ctx context.Context, slot *timeslot.Timeslot, orderID uuid.UUID) error {
	inserted, err := r.queries.InsertTimeslotReservation(ctx, r.db, sqlc.InsertTimeslotReservationParams{
		TimeslotID: slot.ID(),
		OrderID:    orderID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert timeslot reservation", err)
	}
	if inserted == 0 {
		return nil
	}

	return r.saveCurrentOrders(ctx, slot)
}

func (r *TimeslotRepository) SaveRelease(ctx context.Context, slot *timeslot.Timeslot, orderID uuid.UUID) error {
	deleted, err := r.queries.DeleteTimeslotReservation(ctx, r.db, sqlc.DeleteTimeslotReservationParams{
		TimeslotID: slot.ID(),
		OrderID:    orderID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete timeslot reservation", err)
	}
	if deleted == 0 {
		return nil
	}

	return r.saveCurrentOrders(ctx, slot)
}

func (r *TimeslotRepository) saveCurrentOrders(ctx context.Context, slot *timeslot.Timeslot) error {
	err := r.queries.UpdateTimeslotCurrentOrders(ctx, r.db, sqlc.UpdateTimeslotCurrentOrdersParams{
		ID:            slot.ID(),
		CurrentOrders: int32(slot.CurrentOrders()), // #nosec G115 -- bounded by capacity
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update timeslot counters", err)
	}
	return nil
}

func (r *TimeslotRepository) UpdateSettings(ctx context.Context, slot *timeslot.Timeslot) error {
	if err := r.queries.UpdateTimeslotSettings(ctx, r.db, converter.TimeslotToSettingsParams(slot)); err != nil {
		return infra.WrapRepoErr("failed to update timeslot settings", err)
	}
	return nil
}

func (r *TimeslotRepository) CreateBatch(ctx context.Context, slots []*timeslot.Timeslot) error {
	for _, slot := range slots {
		if err := r.queries.CreateTimeslot(ctx, r.db, converter.TimeslotToCreateParams(slot)); err != nil {
			return infra.WrapRepoErr("failed to create timeslot", err)
		}
	}
	return nil
}
