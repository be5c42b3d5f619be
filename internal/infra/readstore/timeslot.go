package readstore

import (
	"context"
	"time"

	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/pgconv"
	"gin-order-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type TimeslotReadQueries interface {
	GetTimeslot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Timeslots, error)
	ListAvailableTimeslots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableTimeslotsParams) ([]sqlc.Timeslots, error)
	ListTimeslotsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTimeslotsInRangeParams) ([]sqlc.Timeslots, error)
}

type TimeslotReadStore struct {
	queries TimeslotReadQueries
}

func NewTimeslotReadStore(queries TimeslotReadQueries) *TimeslotReadStore {
	return &TimeslotReadStore{
		queries: queries,
	}
}

func (r *TimeslotReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.TimeslotView, error) {
	row, err := r.queries.GetTimeslot(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("timeslot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find timeslot", err)
	}
	view := toTimeslotView(row)
	return &view, nil
}

// ListForDate returns active slots starting on the UTC day of date that still have capacity.
// Cutoff is not applied here.
func (r *TimeslotReadStore) ListForDate(ctx context.Context, db sqlc.DBTX, date time.Time, includeBuffer bool) ([]queries.TimeslotView, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	rows, err := r.queries.ListAvailableTimeslots(ctx, db, sqlc.ListAvailableTimeslotsParams{
		DayStart:      pgconv.TimeToPgtype(dayStart),
		DayEnd:        pgconv.TimeToPgtype(dayStart.AddDate(0, 0, 1)),
		DayOfWeek:     int16(dayStart.Weekday()),
		SpecialDate:   pgconv.DateToPgtype(dayStart),
		IncludeBuffer: includeBuffer,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available timeslots", err)
	}
	return toTimeslotViews(rows), nil
}

func (r *TimeslotReadStore) ListInRange(ctx context.Context, db sqlc.DBTX, from, to time.Time, includeBuffer bool) ([]queries.TimeslotView, error) {
	rows, err := r.queries.ListTimeslotsInRange(ctx, db, sqlc.ListTimeslotsInRangeParams{
		RangeStart:    pgconv.TimeToPgtype(from),
		RangeEnd:      pgconv.TimeToPgtype(to),
		IncludeBuffer: includeBuffer,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list timeslots in range", err)
	}
	return toTimeslotViews(rows), nil
}

func toTimeslotViews(rows []sqlc.Timeslots) []queries.TimeslotView {
	views := make([]queries.TimeslotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toTimeslotView(row))
	}
	return views
}

func toTimeslotView(row sqlc.Timeslots) queries.TimeslotView {
	return queries.TimeslotView{
		ID:             row.ID,
		StartTime:      pgconv.TimeFromPgtype(row.StartTime),
		EndTime:        pgconv.TimeFromPgtype(row.EndTime),
		MaxOrders:      int(row.MaxOrders),
		BufferCapacity: int(row.BufferCapacity),
		CurrentOrders:  int(row.CurrentOrders),
		CutoffHours:    int(row.CutoffHours),
		DayOfWeek:      int(row.DayOfWeek),
		RepeatWeekly:   row.RepeatWeekly,
		SpecialDate:    pgconv.DatePtrFromPgtype(row.SpecialDate),
		IsActive:       row.IsActive,
	}
}
