package response

import (
	"time"

	"gin-order-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderItemResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	UnitPrice string    `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	LineTotal string    `json:"line_total"`
}

type OrderResponse struct {
	ID                   uuid.UUID           `json:"id"`
	UserID               uuid.UUID           `json:"user_id"`
	AddressID            uuid.UUID           `json:"address_id"`
	TimeslotID           uuid.UUID           `json:"timeslot_id"`
	Items                []OrderItemResponse `json:"items"`
	DeliveryOption       string              `json:"delivery_option"`
	DeliveryInstructions string              `json:"delivery_instructions"`
	DeliveryFee          string              `json:"delivery_fee"`
	EstimatedDeliveryAt  time.Time           `json:"estimated_delivery_at"`
	Subtotal             string              `json:"subtotal"`
	DeliveryAmount       string              `json:"delivery_amount"`
	Tax                  string              `json:"tax"`
	Discount             string              `json:"discount"`
	Total                string              `json:"total"`
	PaymentMethod        string              `json:"payment_method"`
	PaymentStatus        string              `json:"payment_status"`
	PaymentIntentID      *string             `json:"payment_intent_id,omitempty"`
	RefundID             *string             `json:"refund_id,omitempty"`
	RefundAmount         *string             `json:"refund_amount,omitempty"`
	FailureReason        *string             `json:"failure_reason,omitempty"`
	PaidAt               *time.Time          `json:"paid_at,omitempty"`
	Status               string              `json:"status"`
	CancelReason         *string             `json:"cancel_reason,omitempty"`
	PromoCode            *string             `json:"promo_code,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

// PlaceOrderResponse adds the provider intent so card clients can confirm the charge.
type PlaceOrderResponse struct {
	Order           *OrderResponse `json:"order"`
	PaymentIntentID *string        `json:"payment_intent_id,omitempty"`
}

type OrderListItemResponse struct {
	ID                  uuid.UUID `json:"id"`
	TimeslotID          uuid.UUID `json:"timeslot_id"`
	Status              string    `json:"status"`
	PaymentMethod       string    `json:"payment_method"`
	PaymentStatus       string    `json:"payment_status"`
	Total               string    `json:"total"`
	EstimatedDeliveryAt time.Time `json:"estimated_delivery_at"`
	CreatedAt           time.Time `json:"created_at"`
}

type OrderListResponse struct {
	Items  []OrderListItemResponse `json:"items"`
	Total  int64                   `json:"total"`
	Limit  int                     `json:"limit"`
	Offset int                     `json:"offset"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	var res OrderResponse
	copyView(&res, v)
	if res.Items == nil {
		res.Items = []OrderItemResponse{}
	}
	return &res
}

func FromOrderList(v *queries.OrderListView) *OrderListResponse {
	res := OrderListResponse{Total: v.Total, Limit: v.Limit, Offset: v.Offset}
	copyView(&res.Items, &v.Items)
	if res.Items == nil {
		res.Items = []OrderListItemResponse{}
	}
	return &res
}
