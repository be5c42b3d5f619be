package request

import (
	"strings"

	"gin-order-service/internal/domain/order"

	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	AddressID  uuid.UUID       `json:"address_id" binding:"required"`
	TimeslotID uuid.UUID       `json:"timeslot_id" binding:"required"`
	Delivery   DeliveryRequest `json:"delivery" binding:"required"`
	Payment    PaymentRequest  `json:"payment" binding:"required"`
	PromoCode  *string         `json:"promo_code,omitempty" binding:"omitempty,max=20"`
}

type DeliveryRequest struct {
	Option       string `json:"option" binding:"required,oneof=standard express sameday"`
	Instructions string `json:"instructions" binding:"max=500"`
}

type PaymentRequest struct {
	Method string `json:"method" binding:"required,oneof=card cod wallet"`
}

// PlaceOrderInput is the validated form of PlaceOrderRequest.
type PlaceOrderInput struct {
	AddressID    uuid.UUID
	TimeslotID   uuid.UUID
	Option       order.DeliveryOption
	Instructions string
	Method       order.MethodKind
	PromoCode    *string
}

func (r PlaceOrderRequest) GetPromoCode() *string {
	if r.PromoCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PromoCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r PlaceOrderRequest) ToDomain() (PlaceOrderInput, error) {
	option, err := order.ParseDeliveryOption(r.Delivery.Option)
	if err != nil {
		return PlaceOrderInput{}, err
	}
	method, err := order.ParseMethodKind(r.Payment.Method)
	if err != nil {
		return PlaceOrderInput{}, err
	}

	return PlaceOrderInput{
		AddressID:    r.AddressID,
		TimeslotID:   r.TimeslotID,
		Option:       option,
		Instructions: strings.TrimSpace(r.Delivery.Instructions),
		Method:       method,
		PromoCode:    r.GetPromoCode(),
	}, nil
}

type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type RefundOrderRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type AdvanceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r AdvanceStatusRequest) ToDomain() (order.Status, error) {
	return order.ParseStatus(r.Status)
}

type ListOrdersRequest struct {
	Status   *string `form:"status"`
	FromDate *string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate   *string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
	Limit    int     `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset   int     `form:"offset" binding:"omitempty,min=0"`
}
