package response

import (
	"time"

	"gin-order-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type TimeslotResponse struct {
	ID                      uuid.UUID  `json:"id"`
	StartTime               time.Time  `json:"start_time"`
	EndTime                 time.Time  `json:"end_time"`
	MaxOrders               int        `json:"max_orders"`
	BufferCapacity          int        `json:"buffer_capacity"`
	CurrentOrders           int        `json:"current_orders"`
	CutoffHours             int        `json:"cutoff_hours"`
	DayOfWeek               int        `json:"day_of_week"`
	RepeatWeekly            bool       `json:"repeat_weekly"`
	SpecialDate             *time.Time `json:"special_date,omitempty"`
	IsActive                bool       `json:"is_active"`
	RemainingCapacity       int        `json:"remaining_capacity"`
	RemainingBufferCapacity int        `json:"remaining_buffer_capacity"`
	IsCutoffReached         bool       `json:"is_cutoff_reached"`
	IsAvailable             bool       `json:"is_available"`
}

type WeeklyDayResponse struct {
	Date    string             `json:"date"`
	DayName string             `json:"day_name"`
	IsToday bool               `json:"is_today"`
	Slots   []TimeslotResponse `json:"slots"`
}

type WeeklyTimeslotsResponse struct {
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Days      []WeeklyDayResponse `json:"days"`
}

func FromTimeslotView(v *queries.TimeslotView) *TimeslotResponse {
	var res TimeslotResponse
	copyView(&res, v)
	return &res
}

func FromTimeslotViews(vs []queries.TimeslotView) []TimeslotResponse {
	res := make([]TimeslotResponse, 0, len(vs))
	for i := range vs {
		res = append(res, *FromTimeslotView(&vs[i]))
	}
	return res
}

func FromWeeklyView(v *queries.WeeklyTimeslotsView) *WeeklyTimeslotsResponse {
	days := make([]WeeklyDayResponse, 0, len(v.Days))
	for _, d := range v.Days {
		days = append(days, WeeklyDayResponse{
			Date:    d.Date.Format(time.DateOnly),
			DayName: d.DayName,
			IsToday: d.IsToday,
			Slots:   FromTimeslotViews(d.Slots),
		})
	}
	return &WeeklyTimeslotsResponse{
		StartDate: v.StartDate.Format(time.DateOnly),
		EndDate:   v.EndDate.Format(time.DateOnly),
		Days:      days,
	}
}
