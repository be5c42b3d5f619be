package timeslot

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow      = errors.New("end time must be after start time")
	ErrInvalidCapacity    = errors.New("max orders must be at least 1 and buffer capacity non-negative")
	ErrInvalidCutoff      = errors.New("cutoff hours cannot be negative")
	ErrInactive           = errors.New("timeslot is inactive")
	ErrCapacityExceeded   = errors.New("timeslot capacity exceeded")
	ErrCutoffPassed       = errors.New("timeslot cutoff passed")
	ErrCapacityBelowUsage = errors.New("capacity cannot drop below current orders")
)

// Timeslot is a delivery window with bounded capacity.
// currentOrders always equals len(orderIDs) and stays within [0, maxOrders+bufferCapacity].
type Timeslot struct {
	id             uuid.UUID
	startTime      time.Time
	endTime        time.Time
	maxOrders      int
	bufferCapacity int
	cutoffHours    int
	dayOfWeek      time.Weekday
	repeatWeekly   bool
	specialDate    *time.Time
	isActive       bool
	orderIDs       []uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

type Capacity struct {
	MaxOrders      int
	BufferCapacity int
	CutoffHours    int
}

func (c Capacity) validate() error {
	if c.MaxOrders < 1 || c.BufferCapacity < 0 {
		return ErrInvalidCapacity
	}
	if c.CutoffHours < 0 {
		return ErrInvalidCutoff
	}
	return nil
}

func NewTimeslot(start, end time.Time, capacity Capacity, repeatWeekly bool, specialDate *time.Time) (*Timeslot, error) {
	if !end.After(start) {
		return nil, ErrInvalidWindow
	}
	if err := capacity.validate(); err != nil {
		return nil, err
	}

	return &Timeslot{
		id:             uuid.New(),
		startTime:      start,
		endTime:        end,
		maxOrders:      capacity.MaxOrders,
		bufferCapacity: capacity.BufferCapacity,
		cutoffHours:    capacity.CutoffHours,
		dayOfWeek:      start.Weekday(),
		repeatWeekly:   repeatWeekly,
		specialDate:    specialDate,
		isActive:       true,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	start, end time.Time,
	capacity Capacity,
	dayOfWeek time.Weekday,
	repeatWeekly bool,
	specialDate *time.Time,
	isActive bool,
	orderIDs []uuid.UUID,
	createdAt, updatedAt time.Time,
) *Timeslot {
	return &Timeslot{
		id:             id,
		startTime:      start,
		endTime:        end,
		maxOrders:      capacity.MaxOrders,
		bufferCapacity: capacity.BufferCapacity,
		cutoffHours:    capacity.CutoffHours,
		dayOfWeek:      dayOfWeek,
		repeatWeekly:   repeatWeekly,
		specialDate:    specialDate,
		isActive:       isActive,
		orderIDs:       slices.Clone(orderIDs),
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// CutoffReached reports whether now is past start minus the cutoff window.
func CutoffReached(start time.Time, cutoffHours int, now time.Time) bool {
	return now.After(start.Add(-time.Duration(cutoffHours) * time.Hour))
}

func (t *Timeslot) IsCutoffReached(now time.Time) bool {
	return CutoffReached(t.startTime, t.cutoffHours, now)
}

func (t *Timeslot) TotalCapacity() int {
	return t.maxOrders + t.bufferCapacity
}

func (t *Timeslot) RemainingCapacity() int {
	return max(t.maxOrders-t.CurrentOrders(), 0)
}

// RemainingBufferCapacity counts what is left including the overflow buffer.
func (t *Timeslot) RemainingBufferCapacity() int {
	return max(t.TotalCapacity()-t.CurrentOrders(), 0)
}

func (t *Timeslot) HasCapacity(includeBuffer bool) bool {
	if includeBuffer {
		return t.CurrentOrders() < t.TotalCapacity()
	}
	return t.CurrentOrders() < t.maxOrders
}

func (t *Timeslot) IsAvailable(now time.Time, includeBuffer bool) bool {
	return t.isActive && t.HasCapacity(includeBuffer) && !t.IsCutoffReached(now)
}

func (t *Timeslot) Holds(orderID uuid.UUID) bool {
	return slices.Contains(t.orderIDs, orderID)
}

// Reserve adds the order to the reservation set. Reserving an order already held is a no-op
// and reports changed=false.
func (t *Timeslot) Reserve(orderID uuid.UUID, now time.Time) (bool, error) {
	if t.Holds(orderID) {
		return false, nil
	}
	if !t.isActive {
		return false, ErrInactive
	}
	if t.IsCutoffReached(now) {
		return false, ErrCutoffPassed
	}
	if !t.HasCapacity(true) {
		return false, ErrCapacityExceeded
	}

	t.orderIDs = append(t.orderIDs, orderID)
	t.updatedAt = now
	return true, nil
}

// Release removes the order from the reservation set; releasing an order not held is a no-op.
func (t *Timeslot) Release(orderID uuid.UUID, now time.Time) bool {
	idx := slices.Index(t.orderIDs, orderID)
	if idx < 0 {
		return false
	}
	t.orderIDs = slices.Delete(t.orderIDs, idx, idx+1)
	t.updatedAt = now
	return true
}

// UpdateSettings applies an admin edit. Capacity may never shrink below the orders already held.
func (t *Timeslot) UpdateSettings(capacity Capacity, isActive bool, now time.Time) error {
	if err := capacity.validate(); err != nil {
		return err
	}
	if capacity.MaxOrders+capacity.BufferCapacity < t.CurrentOrders() {
		return ErrCapacityBelowUsage
	}

	t.maxOrders = capacity.MaxOrders
	t.bufferCapacity = capacity.BufferCapacity
	t.cutoffHours = capacity.CutoffHours
	t.isActive = isActive
	t.updatedAt = now
	return nil
}

func (t *Timeslot) ID() uuid.UUID           { return t.id }
func (t *Timeslot) StartTime() time.Time    { return t.startTime }
func (t *Timeslot) EndTime() time.Time      { return t.endTime }
func (t *Timeslot) MaxOrders() int          { return t.maxOrders }
func (t *Timeslot) BufferCapacity() int     { return t.bufferCapacity }
func (t *Timeslot) CutoffHours() int        { return t.cutoffHours }
func (t *Timeslot) CurrentOrders() int      { return len(t.orderIDs) }
func (t *Timeslot) DayOfWeek() time.Weekday { return t.dayOfWeek }
func (t *Timeslot) RepeatWeekly() bool      { return t.repeatWeekly }
func (t *Timeslot) SpecialDate() *time.Time { return t.specialDate }
func (t *Timeslot) IsActive() bool          { return t.isActive }
func (t *Timeslot) CreatedAt() time.Time    { return t.createdAt }
func (t *Timeslot) UpdatedAt() time.Time    { return t.updatedAt }
func (t *Timeslot) Capacity() Capacity {
	return Capacity{MaxOrders: t.maxOrders, BufferCapacity: t.bufferCapacity, CutoffHours: t.cutoffHours}
}
