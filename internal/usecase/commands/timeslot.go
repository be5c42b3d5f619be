package commands

import (
	"context"
	"log/slog"

	"gin-order-service/internal/domain/timeslot"
	reqdto "gin-order-service/internal/handler/dto/request"
	"gin-order-service/internal/infra"
	"gin-order-service/internal/pkg/clock"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/pkg/patch"
	"gin-order-service/internal/usecase/queries"
	"gin-order-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type TimeslotCommands interface {
	Reserve(ctx context.Context, slotID, orderID uuid.UUID) (*queries.TimeslotView, error)
	Release(ctx context.Context, slotID, orderID uuid.UUID) (*queries.TimeslotView, error)
	Update(ctx context.Context, slotID uuid.UUID, req reqdto.UpdateTimeslotRequest) (*queries.TimeslotView, error)
	Generate(ctx context.Context, req reqdto.GenerateSlotsRequest) ([]queries.TimeslotView, error)
}

type timeslotCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	defaults timeslot.Capacity
}

func NewTimeslotCommands(uow shared.UnitOfWork, clk clock.Clock, defaults timeslot.Capacity) TimeslotCommands {
	return &timeslotCommandsImpl{
		uow:      uow,
		clock:    clk,
		defaults: defaults,
	}
}

func (c *timeslotCommandsImpl) Reserve(ctx context.Context, slotID, orderID uuid.UUID) (*queries.TimeslotView, error) {
	var slot *timeslot.Timeslot
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		slot, err = reserveSlot(ctx, tx, slotID, orderID, c.clock)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("timeslot reserved", "slot_id", slotID, "order_id", orderID, "current_orders", slot.CurrentOrders())
	return slotView(slot, c.clock), nil
}

func (c *timeslotCommandsImpl) Release(ctx context.Context, slotID, orderID uuid.UUID) (*queries.TimeslotView, error) {
	var slot *timeslot.Timeslot
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		slot, err = releaseSlot(ctx, tx, slotID, orderID, c.clock)
		return err
	})
	if err != nil {
		return nil, err
	}
	return slotView(slot, c.clock), nil
}

// Update applies an admin edit; omitted fields keep their stored value.
func (c *timeslotCommandsImpl) Update(ctx context.Context, slotID uuid.UUID, req reqdto.UpdateTimeslotRequest) (*queries.TimeslotView, error) {
	var slot *timeslot.Timeslot
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		slot, err = lockSlot(ctx, tx, slotID)
		if err != nil {
			return err
		}

		current := slot.Capacity()
		capacity := timeslot.Capacity{
			MaxOrders:      patch.Coalesce(req.MaxOrders, current.MaxOrders),
			BufferCapacity: patch.Coalesce(req.BufferCapacity, current.BufferCapacity),
			CutoffHours:    patch.Coalesce(req.CutoffHours, current.CutoffHours),
		}
		isActive := patch.Coalesce(req.IsActive, slot.IsActive())

		if err := slot.UpdateSettings(capacity, isActive, c.clock.Now()); err != nil {
			return errs.WithDetail(errs.Mark(err, errs.ErrValidationFailed), "slot_id="+slotID.String())
		}
		return tx.Timeslots().UpdateSettings(ctx, slot)
	})
	if err != nil {
		return nil, err
	}
	return slotView(slot, c.clock), nil
}

// Generate materializes the template over the date range and stores every slot in one transaction.
func (c *timeslotCommandsImpl) Generate(ctx context.Context, req reqdto.GenerateSlotsRequest) ([]queries.TimeslotView, error) {
	input, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}
	input.Template.Defaults = c.defaults

	slots, err := timeslot.Generate(input.StartDate, input.EndDate, input.Template)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Timeslots().CreateBatch(ctx, slots)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("timeslots generated", "count", len(slots), "start_date", req.StartDate, "end_date", req.EndDate)

	views := make([]queries.TimeslotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, *slotView(slot, c.clock))
	}
	return views, nil
}

// lockSlot reports inactive slots as not found, the same as missing ones.
func lockSlot(ctx context.Context, tx shared.Tx, slotID uuid.UUID) (*timeslot.Timeslot, error) {
	slot, err := tx.Timeslots().FindForUpdate(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithDetail(errs.Mark(err, errs.ErrTimeslotNotFound), "slot_id="+slotID.String())
		}
		return nil, err
	}
	return slot, nil
}

// reserveSlot runs inside the caller's transaction so order placement can share it.
func reserveSlot(ctx context.Context, tx shared.Tx, slotID, orderID uuid.UUID, clk clock.Clock) (*timeslot.Timeslot, error) {
	slot, err := lockSlot(ctx, tx, slotID)
	if err != nil {
		return nil, err
	}

	changed, err := slot.Reserve(orderID, clk.Now())
	if err != nil {
		return nil, errs.WithDetail(mapSlotError(err), "slot_id="+slotID.String())
	}
	if !changed {
		return slot, nil
	}

	if err := tx.Timeslots().SaveReservation(ctx, slot, orderID); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// CHECK constraint on current_orders tripped
			return nil, errs.WithDetail(errs.Mark(err, errs.ErrCapacityExceeded), "slot_id="+slotID.String())
		}
		return nil, err
	}
	return slot, nil
}

func releaseSlot(ctx context.Context, tx shared.Tx, slotID, orderID uuid.UUID, clk clock.Clock) (*timeslot.Timeslot, error) {
	slot, err := tx.Timeslots().FindForUpdate(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithDetail(errs.Mark(err, errs.ErrTimeslotNotFound), "slot_id="+slotID.String())
		}
		return nil, err
	}

	if !slot.Release(orderID, clk.Now()) {
		return slot, nil
	}
	if err := tx.Timeslots().SaveRelease(ctx, slot, orderID); err != nil {
		return nil, err
	}
	return slot, nil
}

func mapSlotError(err error) error {
	switch {
	case errs.Is(err, timeslot.ErrInactive):
		return errs.Mark(err, errs.ErrTimeslotNotFound)
	case errs.Is(err, timeslot.ErrCapacityExceeded):
		return errs.Mark(err, errs.ErrCapacityExceeded)
	case errs.Is(err, timeslot.ErrCutoffPassed):
		return errs.Mark(err, errs.ErrCutoffPassed)
	default:
		return err
	}
}

func slotView(slot *timeslot.Timeslot, clk clock.Clock) *queries.TimeslotView {
	now := clk.Now()
	cutoff := slot.IsCutoffReached(now)
	return &queries.TimeslotView{
		ID:                      slot.ID(),
		StartTime:               slot.StartTime(),
		EndTime:                 slot.EndTime(),
		MaxOrders:               slot.MaxOrders(),
		BufferCapacity:          slot.BufferCapacity(),
		CurrentOrders:           slot.CurrentOrders(),
		CutoffHours:             slot.CutoffHours(),
		DayOfWeek:               int(slot.DayOfWeek()),
		RepeatWeekly:            slot.RepeatWeekly(),
		SpecialDate:             slot.SpecialDate(),
		IsActive:                slot.IsActive(),
		RemainingCapacity:       slot.RemainingCapacity(),
		RemainingBufferCapacity: slot.RemainingBufferCapacity(),
		IsCutoffReached:         cutoff,
		IsAvailable:             slot.IsAvailable(now, true),
	}
}
