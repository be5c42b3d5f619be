package order

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoItems                  = errors.New("order must contain at least one item")
	ErrInvalidQuantity          = errors.New("quantity must be at least 1")
	ErrAmountsMismatch          = errors.New("total must equal subtotal + delivery + tax - discount")
	ErrUnknownDeliveryOption    = errors.New("unknown delivery option")
	ErrUnknownPaymentMethod     = errors.New("unknown payment method")
	ErrUnknownStatus            = errors.New("unknown order status")
	ErrUnknownPaymentStatus     = errors.New("unknown payment status")
	ErrInvalidTransition        = errors.New("invalid order status transition")
	ErrInvalidPaymentTransition = errors.New("invalid payment status transition")
	ErrNotRefundable            = errors.New("order is not refundable")
)

const (
	CancelReasonPaymentFailed = "payment_failed"
	// PaymentFailureVoided marks a card authorization released on cancellation.
	PaymentFailureVoided = "voided"
)

type Delivery struct {
	Option       DeliveryOption
	Instructions string
	Fee          decimal.Decimal
	EstimatedAt  time.Time
}

// Payment is the payment sub-record embedded in an order.
type Payment struct {
	Method        PaymentMethod
	Status        PaymentStatus
	IntentID      *string
	RefundID      *string
	RefundAmount  *decimal.Decimal
	RefundReason  *string
	FailureReason *string
	PaidAt        *time.Time
}

type Order struct {
	id           uuid.UUID
	userID       uuid.UUID
	addressID    uuid.UUID
	timeslotID   uuid.UUID
	items        []LineItem
	delivery     Delivery
	amounts      Amounts
	payment      Payment
	status       Status
	cancelReason *string
	promoCode    *string
	createdAt    time.Time
	updatedAt    time.Time
}

type NewOrderParams struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	AddressID    uuid.UUID
	TimeslotID   uuid.UUID
	Items        []LineItem
	Option       DeliveryOption
	Instructions string
	Amounts      Amounts
	Method       PaymentMethod
	PromoCode    *string
}

// NewOrder creates a pending order with items and amounts snapshotted at creation time.
func NewOrder(p NewOrderParams, now time.Time) (*Order, error) {
	if len(p.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range p.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}
	if _, ok := deliveryOffsets[p.Option]; !ok {
		return nil, ErrUnknownDeliveryOption
	}
	if p.Method == nil {
		return nil, ErrUnknownPaymentMethod
	}
	if err := p.Amounts.Validate(); err != nil {
		return nil, err
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Order{
		id:         id,
		userID:     p.UserID,
		addressID:  p.AddressID,
		timeslotID: p.TimeslotID,
		items:      slices.Clone(p.Items),
		delivery: Delivery{
			Option:       p.Option,
			Instructions: p.Instructions,
			Fee:          p.Amounts.Delivery,
			EstimatedAt:  p.Option.EstimatedDeliveryFrom(now),
		},
		amounts:   p.Amounts,
		payment:   Payment{Method: p.Method, Status: PaymentPending},
		status:    StatusPending,
		promoCode: p.PromoCode,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id, userID, addressID, timeslotID uuid.UUID,
	items []LineItem,
	delivery Delivery,
	amounts Amounts,
	payment Payment,
	status Status,
	cancelReason, promoCode *string,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:           id,
		userID:       userID,
		addressID:    addressID,
		timeslotID:   timeslotID,
		items:        items,
		delivery:     delivery,
		amounts:      amounts,
		payment:      payment,
		status:       status,
		cancelReason: cancelReason,
		promoCode:    promoCode,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.userID == userID
}

func (o *Order) CanCancel() bool {
	return CanTransition(o.status, StatusCancelled)
}

func (o *Order) CanRefund() bool {
	return CanTransition(o.status, StatusRefunded) &&
		o.payment.Status == PaymentCaptured &&
		o.payment.RefundID == nil
}

// HasCapturedFunds reports whether a cancellation needs a provider refund.
func (o *Order) HasCapturedFunds() bool {
	return o.payment.Status == PaymentCaptured && o.payment.RefundID == nil
}

// NeedsVoid reports whether an uncaptured card authorization is still open.
func (o *Order) NeedsVoid() bool {
	return o.payment.Method.Kind() == MethodCard &&
		o.payment.Status == PaymentAuthorized &&
		o.payment.IntentID != nil
}

// VoidPayment records that the open authorization is being released at the provider.
func (o *Order) VoidPayment(now time.Time) error {
	if !o.NeedsVoid() {
		return ErrInvalidPaymentTransition
	}
	if err := o.movePayment(PaymentFailed); err != nil {
		return err
	}
	reason := PaymentFailureVoided
	o.payment.FailureReason = &reason
	o.updatedAt = now
	return nil
}

func (o *Order) IsVoided() bool {
	return o.payment.Status == PaymentFailed &&
		o.payment.FailureReason != nil &&
		*o.payment.FailureReason == PaymentFailureVoided
}

// AttachIntent records the provider reference. authorized=false keeps the payment pending
// until the provider confirms it asynchronously.
func (o *Order) AttachIntent(intentID string, authorized bool, now time.Time) error {
	o.payment.IntentID = &intentID
	if authorized {
		if err := o.movePayment(PaymentAuthorized); err != nil {
			return err
		}
	}
	o.updatedAt = now
	return nil
}

// CapturePayment applies a provider success notification. Re-applying it is a no-op.
// A pending order is confirmed on first capture.
func (o *Order) CapturePayment(now time.Time) (bool, error) {
	switch o.payment.Status {
	case PaymentCaptured, PaymentRefunded:
		return false, nil
	case PaymentPending:
		if err := o.movePayment(PaymentAuthorized); err != nil {
			return false, err
		}
	}
	if err := o.movePayment(PaymentCaptured); err != nil {
		return false, err
	}

	paidAt := now
	o.payment.PaidAt = &paidAt
	if o.status == StatusPending {
		o.status = StatusConfirmed
	}
	o.updatedAt = now
	return true, nil
}

// FailPayment applies a provider failure notification. The order is cancelled with
// CancelReasonPaymentFailed when still cancellable. Re-applying it is a no-op.
func (o *Order) FailPayment(reason string, now time.Time) (bool, error) {
	if o.payment.Status == PaymentFailed {
		return false, nil
	}
	if err := o.movePayment(PaymentFailed); err != nil {
		return false, err
	}

	o.payment.FailureReason = &reason
	if o.CanCancel() {
		cancelReason := CancelReasonPaymentFailed
		o.status = StatusCancelled
		o.cancelReason = &cancelReason
	}
	o.updatedAt = now
	return true, nil
}

func (o *Order) Cancel(reason string, now time.Time) error {
	if !o.CanCancel() {
		return ErrInvalidTransition
	}
	o.status = StatusCancelled
	if reason != "" {
		o.cancelReason = &reason
	}
	o.updatedAt = now
	return nil
}

// RecordRefund marks captured funds as refunded without changing the order lifecycle.
func (o *Order) RecordRefund(refundID string, amount decimal.Decimal, reason string, now time.Time) error {
	if o.payment.RefundID != nil {
		return ErrNotRefundable
	}
	if err := o.movePayment(PaymentRefunded); err != nil {
		return err
	}
	o.payment.RefundID = &refundID
	o.payment.RefundAmount = &amount
	if reason != "" {
		o.payment.RefundReason = &reason
	}
	o.updatedAt = now
	return nil
}

// Refund moves a delivered order with captured funds to refunded.
func (o *Order) Refund(refundID string, amount decimal.Decimal, reason string, now time.Time) error {
	if !o.CanRefund() {
		return ErrNotRefundable
	}
	if err := o.RecordRefund(refundID, amount, reason, now); err != nil {
		return err
	}
	o.status = StatusRefunded
	return nil
}

// AdvanceTo moves the order one step forward along the fulfilment lifecycle.
func (o *Order) AdvanceTo(next Status, now time.Time) error {
	if next == StatusCancelled || next == StatusRefunded || !CanTransition(o.status, next) {
		return ErrInvalidTransition
	}
	o.status = next
	o.updatedAt = now
	return nil
}

func (o *Order) movePayment(to PaymentStatus) error {
	if !CanTransitionPayment(o.payment.Status, to) {
		return ErrInvalidPaymentTransition
	}
	o.payment.Status = to
	return nil
}

func (o *Order) ID() uuid.UUID         { return o.id }
func (o *Order) UserID() uuid.UUID     { return o.userID }
func (o *Order) AddressID() uuid.UUID  { return o.addressID }
func (o *Order) TimeslotID() uuid.UUID { return o.timeslotID }
func (o *Order) Items() []LineItem     { return slices.Clone(o.items) }
func (o *Order) Delivery() Delivery    { return o.delivery }
func (o *Order) Amounts() Amounts      { return o.amounts }
func (o *Order) Payment() Payment      { return o.payment }
func (o *Order) Status() Status        { return o.status }
func (o *Order) CancelReason() *string { return o.cancelReason }
func (o *Order) PromoCode() *string    { return o.promoCode }
func (o *Order) CreatedAt() time.Time  { return o.createdAt }
func (o *Order) UpdatedAt() time.Time  { return o.updatedAt }
