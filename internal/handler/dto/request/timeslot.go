package request

import (
	"time"

	"gin-order-service/internal/domain/timeslot"
)

const dateLayout = "2006-01-02"

type AvailableTimeslotsRequest struct {
	Date          string `form:"date" binding:"required,datetime=2006-01-02"`
	IncludeBuffer bool   `form:"includeBuffer"`
}

func (r AvailableTimeslotsRequest) ParseDate() (time.Time, error) {
	return time.Parse(dateLayout, r.Date)
}

type WeeklyTimeslotsRequest struct {
	StartDate     string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	IncludeBuffer bool   `form:"includeBuffer"`
}

// ParseStartDate returns nil when no start date was given.
func (r WeeklyTimeslotsRequest) ParseStartDate() (*time.Time, error) {
	if r.StartDate == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type DailySlotRequest struct {
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	MaxOrders      *int   `json:"max_orders,omitempty" binding:"omitempty,min=1"`
	CutoffHours    *int   `json:"cutoff_hours,omitempty" binding:"omitempty,min=0"`
	BufferCapacity *int   `json:"buffer_capacity,omitempty" binding:"omitempty,min=0"`
}

type GenerateSlotsRequest struct {
	StartDate  string             `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string             `json:"end_date" binding:"required,datetime=2006-01-02"`
	DailySlots []DailySlotRequest `json:"daily_slots" binding:"required,min=1,dive"`
}

type GenerateSlotsInput struct {
	StartDate time.Time
	EndDate   time.Time
	Template  timeslot.Template
}

// ToDomain leaves Template.Defaults empty; the command fills them from configuration.
func (r GenerateSlotsRequest) ToDomain() (GenerateSlotsInput, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return GenerateSlotsInput{}, err
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return GenerateSlotsInput{}, err
	}

	daily := make([]timeslot.DailySlot, 0, len(r.DailySlots))
	for _, ds := range r.DailySlots {
		daily = append(daily, timeslot.DailySlot{
			Start:          ds.StartTime,
			End:            ds.EndTime,
			MaxOrders:      ds.MaxOrders,
			CutoffHours:    ds.CutoffHours,
			BufferCapacity: ds.BufferCapacity,
		})
	}

	return GenerateSlotsInput{
		StartDate: start,
		EndDate:   end,
		Template:  timeslot.Template{DailySlots: daily},
	}, nil
}

type UpdateTimeslotRequest struct {
	MaxOrders      *int  `json:"max_orders,omitempty" binding:"omitempty,min=1"`
	BufferCapacity *int  `json:"buffer_capacity,omitempty" binding:"omitempty,min=0"`
	CutoffHours    *int  `json:"cutoff_hours,omitempty" binding:"omitempty,min=0"`
	IsActive       *bool `json:"is_active,omitempty"`
}

type ReservationRequest struct {
	OrderID string `json:"order_id" binding:"required,uuid"`
}
