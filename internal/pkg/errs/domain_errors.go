package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Timeslot errors
	ErrTimeslotNotFound = errors.New("timeslot not found")
	ErrCapacityExceeded = errors.New("timeslot capacity exceeded")
	ErrCutoffPassed     = errors.New("timeslot cutoff passed")

	// Order errors
	ErrOrderNotFound          = errors.New("order not found")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrAddressNotFound        = errors.New("address not found")

	// Payment errors
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrPaymentMethodNotFound      = errors.New("payment method not found")
	ErrNoDefaultPaymentMethod     = errors.New("no default payment method")
	ErrPaymentAuthorizationFailed = errors.New("payment authorization failed")
	ErrRefundFailed               = errors.New("refund failed")
	ErrInvalidWebhookSignature    = errors.New("invalid webhook signature")

	// Promo errors
	ErrCouponNotFound = errors.New("coupon not found")
	ErrInvalidPromo   = errors.New("invalid promo code")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserInactive = errors.New("user inactive")

	// Idempotency errors
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyConflict    = errors.New("idempotency key reused with different request")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
