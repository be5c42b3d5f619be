package order

type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusProcessing     Status = "processing"
	StatusReadyForPickup Status = "ready_for_pickup"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
	StatusRefunded       Status = "refunded"
)

// forward lifecycle; cancelled and refunded are reached through dedicated operations
var nextStatus = map[Status]Status{
	StatusPending:        StatusConfirmed,
	StatusConfirmed:      StatusProcessing,
	StatusProcessing:     StatusReadyForPickup,
	StatusReadyForPickup: StatusOutForDelivery,
	StatusOutForDelivery: StatusDelivered,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusReadyForPickup,
		StatusOutForDelivery, StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

func (s Status) IsCancellable() bool {
	switch s {
	case StatusDelivered, StatusCancelled, StatusRefunded:
		return false
	default:
		return s.IsValid()
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// CanTransition reports whether the order lifecycle allows from -> to.
// Refund eligibility additionally depends on the payment and is checked by Order.CanRefund.
func CanTransition(from, to Status) bool {
	switch to {
	case StatusCancelled:
		return from.IsCancellable()
	case StatusRefunded:
		return from == StatusDelivered
	default:
		next, ok := nextStatus[from]
		return ok && next == to
	}
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentAuthorized PaymentStatus = "authorized"
	PaymentCaptured   PaymentStatus = "captured"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:    {PaymentAuthorized, PaymentFailed},
	PaymentAuthorized: {PaymentCaptured, PaymentFailed},
	PaymentCaptured:   {PaymentRefunded},
}

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentAuthorized, PaymentCaptured, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", ErrUnknownPaymentStatus
	}
	return status, nil
}

func CanTransitionPayment(from, to PaymentStatus) bool {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
