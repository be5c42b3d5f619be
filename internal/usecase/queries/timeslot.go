package queries

import (
	"context"
	"time"

	"gin-order-service/internal/domain/timeslot"
	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/clock"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/usecase/shared"

	"github.com/google/uuid"
)

const daysPerWeek = 7

type TimeslotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TimeslotView, error)
	ListAvailable(ctx context.Context, date time.Time, includeBuffer bool) ([]TimeslotView, error)
	Weekly(ctx context.Context, startDate *time.Time, includeBuffer bool) (*WeeklyTimeslotsView, error)
}

type TimeslotReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*TimeslotView, error)
	ListForDate(ctx context.Context, db sqlc.DBTX, date time.Time, includeBuffer bool) ([]TimeslotView, error)
	ListInRange(ctx context.Context, db sqlc.DBTX, from, to time.Time, includeBuffer bool) ([]TimeslotView, error)
}

type timeslotQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore TimeslotReadStore
	clock     clock.Clock
}

func NewTimeslotQueries(uow shared.UnitOfWork, readStore TimeslotReadStore, clk clock.Clock) TimeslotQueries {
	return &timeslotQueriesImpl{
		uow:       uow,
		readStore: readStore,
		clock:     clk,
	}
}

func (q *timeslotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TimeslotView, error) {
	var view *TimeslotView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, err = q.readStore.FindByID(ctx, db, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTimeslotNotFound)
		}
		return nil, err
	}

	decorated := decorate(*view, q.clock.Now(), true)
	return &decorated, nil
}

// ListAvailable returns the slots on date that can still take an order, earliest first.
// Slots whose cutoff has passed are dropped.
func (q *timeslotQueriesImpl) ListAvailable(ctx context.Context, date time.Time, includeBuffer bool) ([]TimeslotView, error) {
	var rows []TimeslotView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		rows, err = q.readStore.ListForDate(ctx, db, date, includeBuffer)
		return err
	})
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	available := make([]TimeslotView, 0, len(rows))
	for _, row := range rows {
		if timeslot.CutoffReached(row.StartTime, row.CutoffHours, now) {
			continue
		}
		available = append(available, decorate(row, now, includeBuffer))
	}
	return available, nil
}

// Weekly groups seven days of slots starting at startDate (today when nil). Slots of today
// whose cutoff has passed are left out; later days keep every slot.
func (q *timeslotQueriesImpl) Weekly(ctx context.Context, startDate *time.Time, includeBuffer bool) (*WeeklyTimeslotsView, error) {
	now := q.clock.Now()
	start := startOfDay(now)
	if startDate != nil {
		start = startOfDay(*startDate)
	}
	end := start.AddDate(0, 0, daysPerWeek)

	var rows []TimeslotView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		rows, err = q.readStore.ListInRange(ctx, db, start, end, includeBuffer)
		return err
	})
	if err != nil {
		return nil, err
	}

	today := startOfDay(now)
	days := make([]WeeklyDayView, daysPerWeek)
	for i := range days {
		date := start.AddDate(0, 0, i)
		days[i] = WeeklyDayView{
			Date:    date,
			DayName: date.Weekday().String(),
			IsToday: date.Equal(today),
			Slots:   []TimeslotView{},
		}
	}

	for _, row := range rows {
		idx := int(startOfDay(row.StartTime).Sub(start).Hours() / 24)
		if idx < 0 || idx >= daysPerWeek {
			continue
		}
		if days[idx].IsToday && timeslot.CutoffReached(row.StartTime, row.CutoffHours, now) {
			continue
		}
		days[idx].Slots = append(days[idx].Slots, decorate(row, now, includeBuffer))
	}

	return &WeeklyTimeslotsView{
		StartDate: start,
		EndDate:   end.AddDate(0, 0, -1),
		Days:      days,
	}, nil
}

func decorate(v TimeslotView, now time.Time, includeBuffer bool) TimeslotView {
	total := v.MaxOrders + v.BufferCapacity
	v.RemainingCapacity = max(v.MaxOrders-v.CurrentOrders, 0)
	v.RemainingBufferCapacity = max(total-v.CurrentOrders, 0)
	v.IsCutoffReached = timeslot.CutoffReached(v.StartTime, v.CutoffHours, now)

	limit := v.MaxOrders
	if includeBuffer {
		limit = total
	}
	v.IsAvailable = v.IsActive && v.CurrentOrders < limit && !v.IsCutoffReached
	return v
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
