package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

type UserSnapshot struct {
	ID                 uuid.UUID
	Email              string
	Role               string
	IsActive           bool
	PaymentCustomerRef *string
}

type PaymentMethodSnapshot struct {
	ID                      uuid.UUID
	UserID                  uuid.UUID
	ProviderPaymentMethodID string
	Brand                   string
	Last4                   string
	IsDefault               bool
	IsActive                bool
}

type CouponSnapshot struct {
	ID         uuid.UUID
	Code       string
	AmountOff  *decimal.Decimal
	PercentOff *decimal.Decimal
	ValidFrom  *time.Time
	ValidTo    *time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key           uuid.UUID
	UserID        uuid.UUID
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}

func (r *IdempotencyRecord) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}
