package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrConflictingOutcome = errors.New("payment outcome conflicts with settled status")
	ErrInvalidAmount      = errors.New("payment amount must be positive")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// Payment is the standalone record of a provider payment, updated only by provider outcomes.
type Payment struct {
	id            uuid.UUID
	userID        uuid.UUID
	orderID       uuid.UUID
	amount        decimal.Decimal
	currency      string
	intentID      string
	method        string
	status        Status
	failureReason *string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPayment(userID, orderID uuid.UUID, amount decimal.Decimal, currency, intentID, method string, now time.Time) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		id:        uuid.New(),
		userID:    userID,
		orderID:   orderID,
		amount:    amount,
		currency:  currency,
		intentID:  intentID,
		method:    method,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id, userID, orderID uuid.UUID,
	amount decimal.Decimal,
	currency, intentID, method string,
	status Status,
	failureReason *string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		userID:        userID,
		orderID:       orderID,
		amount:        amount,
		currency:      currency,
		intentID:      intentID,
		method:        method,
		status:        status,
		failureReason: failureReason,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Complete returns false when the payment is already completed.
func (p *Payment) Complete(now time.Time) (bool, error) {
	switch p.status {
	case StatusCompleted:
		return false, nil
	case StatusFailed:
		return false, ErrConflictingOutcome
	}
	p.status = StatusCompleted
	p.updatedAt = now
	return true, nil
}

// Fail returns false when the payment has already failed.
func (p *Payment) Fail(reason string, now time.Time) (bool, error) {
	switch p.status {
	case StatusFailed:
		return false, nil
	case StatusCompleted:
		return false, ErrConflictingOutcome
	}
	p.status = StatusFailed
	p.failureReason = &reason
	p.updatedAt = now
	return true, nil
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) UserID() uuid.UUID       { return p.userID }
func (p *Payment) OrderID() uuid.UUID      { return p.orderID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Currency() string        { return p.currency }
func (p *Payment) IntentID() string        { return p.intentID }
func (p *Payment) Method() string          { return p.method }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) FailureReason() *string  { return p.failureReason }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time    { return p.updatedAt }
