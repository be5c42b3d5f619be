package converter

import (
	"time"

	"gin-order-service/internal/domain/timeslot"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func TimeslotFromRow(row sqlc.Timeslots, orderIDs []uuid.UUID) *timeslot.Timeslot {
	return timeslot.Reconstruct(
		row.ID,
		pgconv.TimeFromPgtype(row.StartTime),
		pgconv.TimeFromPgtype(row.EndTime),
		timeslot.Capacity{
			MaxOrders:      int(row.MaxOrders),
			BufferCapacity: int(row.BufferCapacity),
			CutoffHours:    int(row.CutoffHours),
		},
		time.Weekday(row.DayOfWeek),
		row.RepeatWeekly,
		pgconv.DatePtrFromPgtype(row.SpecialDate),
		row.IsActive,
		orderIDs,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func TimeslotToCreateParams(t *timeslot.Timeslot) sqlc.CreateTimeslotParams {
	return sqlc.CreateTimeslotParams{
		ID:             t.ID(),
		StartTime:      pgconv.TimeToPgtype(t.StartTime()),
		EndTime:        pgconv.TimeToPgtype(t.EndTime()),
		MaxOrders:      int32(t.MaxOrders()),      // #nosec G115 -- bounded by validation
		BufferCapacity: int32(t.BufferCapacity()), // #nosec G115 -- bounded by validation
		CutoffHours:    int32(t.CutoffHours()),    // #nosec G115 -- bounded by validation
		DayOfWeek:      int16(t.DayOfWeek()),
		RepeatWeekly:   t.RepeatWeekly(),
		SpecialDate:    pgconv.DatePtrToPgtype(t.SpecialDate()),
		IsActive:       t.IsActive(),
	}
}

func TimeslotToSettingsParams(t *timeslot.Timeslot) sqlc.UpdateTimeslotSettingsParams {
	return sqlc.UpdateTimeslotSettingsParams{
		ID:             t.ID(),
		MaxOrders:      int32(t.MaxOrders()),      // #nosec G115 -- bounded by validation
		BufferCapacity: int32(t.BufferCapacity()), // #nosec G115 -- bounded by validation
		CutoffHours:    int32(t.CutoffHours()),    // #nosec G115 -- bounded by validation
		IsActive:       t.IsActive(),
	}
}
