package payment

import (
	"context"
	"errors"
)

var (
	ErrDeclined         = errors.New("payment declined")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

type AuthorizationStatus string

const (
	// AuthorizationApproved means funds are held or already collected.
	AuthorizationApproved AuthorizationStatus = "approved"
	// AuthorizationProcessing means the provider will report the outcome asynchronously.
	AuthorizationProcessing AuthorizationStatus = "processing"
)

type AuthorizeRequest struct {
	AmountMinor    int64
	Currency       string
	CustomerRef    string
	MethodRef      string
	IdempotencyKey string
	Metadata       map[string]string
}

type Authorization struct {
	IntentID string
	Status   AuthorizationStatus
}

type RefundRequest struct {
	IntentID       string
	AmountMinor    int64
	Reason         string
	IdempotencyKey string
}

type RefundResult struct {
	RefundID    string
	AmountMinor int64
}

type EventType string

const (
	EventPaymentSucceeded EventType = "payment_intent.succeeded"
	EventPaymentFailed    EventType = "payment_intent.payment_failed"
)

// Event is a provider notification about the outcome of a payment.
type Event struct {
	ID                string
	Type              EventType
	ProviderPaymentID string
	FailureReason     string
}

// Gateway is the payment provider port. Authorize returns an error wrapping ErrDeclined
// when the provider refuses the charge.
type Gateway interface {
	Authorize(ctx context.Context, req AuthorizeRequest) (*Authorization, error)
	Refund(ctx context.Context, req RefundRequest) (*RefundResult, error)
	Void(ctx context.Context, intentID string) error
	ParseWebhook(payload []byte, signature string) (*Event, error)
}
