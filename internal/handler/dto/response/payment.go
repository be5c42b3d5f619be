package response

import (
	"time"

	"gin-order-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentStatusResponse struct {
	OrderID         uuid.UUID  `json:"order_id"`
	OrderStatus     string     `json:"order_status"`
	PaymentMethod   string     `json:"payment_method"`
	PaymentStatus   string     `json:"payment_status"`
	PaymentIntentID *string    `json:"payment_intent_id,omitempty"`
	ProviderStatus  *string    `json:"provider_status,omitempty"`
	Amount          string     `json:"amount"`
	Currency        string     `json:"currency"`
	FailureReason   *string    `json:"failure_reason,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
}

type PaymentMethodResponse struct {
	ID        uuid.UUID `json:"id"`
	Brand     string    `json:"brand"`
	Last4     string    `json:"last4"`
	ExpMonth  int       `json:"exp_month"`
	ExpYear   int       `json:"exp_year"`
	IsDefault bool      `json:"is_default"`
}

func FromPaymentStatus(v *queries.PaymentStatusView) *PaymentStatusResponse {
	var res PaymentStatusResponse
	copyView(&res, v)
	return &res
}

func FromPaymentMethods(vs []queries.PaymentMethodView) []PaymentMethodResponse {
	res := make([]PaymentMethodResponse, 0, len(vs))
	copyView(&res, &vs)
	return res
}
