package timeslot

import (
	"errors"
	"fmt"
	"time"

	"gin-order-service/internal/pkg/patch"
)

var (
	ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrEmptyTemplate    = errors.New("template has no daily slots")
)

const maxGenerateDays = 366

type DailySlot struct {
	Start          string
	End            string
	MaxOrders      *int
	CutoffHours    *int
	BufferCapacity *int
}

type Template struct {
	DailySlots []DailySlot
	Defaults   Capacity
}

// Generate materializes one weekly-recurring slot per template entry for every calendar day in
// [startDate, endDate]. Times of day are interpreted in startDate's location.
func Generate(startDate, endDate time.Time, tmpl Template) ([]*Timeslot, error) {
	if len(tmpl.DailySlots) == 0 {
		return nil, ErrEmptyTemplate
	}

	from := truncateToDay(startDate)
	to := truncateToDay(endDate.In(startDate.Location()))
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > maxGenerateDays {
		return nil, fmt.Errorf("%w: range spans %d days", ErrInvalidDateRange, days)
	}

	type window struct {
		startOffset time.Duration
		endOffset   time.Duration
		capacity    Capacity
	}
	windows := make([]window, 0, len(tmpl.DailySlots))
	for _, ds := range tmpl.DailySlots {
		startOffset, err := parseTimeOfDay(ds.Start)
		if err != nil {
			return nil, err
		}
		endOffset, err := parseTimeOfDay(ds.End)
		if err != nil {
			return nil, err
		}
		windows = append(windows, window{
			startOffset: startOffset,
			endOffset:   endOffset,
			capacity: Capacity{
				MaxOrders:      patch.Coalesce(ds.MaxOrders, tmpl.Defaults.MaxOrders),
				CutoffHours:    patch.Coalesce(ds.CutoffHours, tmpl.Defaults.CutoffHours),
				BufferCapacity: patch.Coalesce(ds.BufferCapacity, tmpl.Defaults.BufferCapacity),
			},
		})
	}

	var slots []*Timeslot
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		for _, w := range windows {
			slot, err := NewTimeslot(day.Add(w.startOffset), day.Add(w.endOffset), w.capacity, true, nil)
			if err != nil {
				return nil, err
			}
			slots = append(slots, slot)
		}
	}

	return slots, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func parseTimeOfDay(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
