package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
)

// Coupon is a promo code granting either a fixed amount or a percentage off the order.
type Coupon struct {
	id        uuid.UUID
	code      Code
	discount  Discount
	validFrom *time.Time
	validTo   *time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	amountOff *decimal.Decimal,
	percentOff *decimal.Decimal,
	validFrom, validTo *time.Time,
) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(amountOff, percentOff)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:        id,
		code:      couponCode,
		discount:  discount,
		validFrom: validFrom,
		validTo:   validTo,
	}, nil
}

func (c *Coupon) ValidateUsage(t time.Time) error {
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return ErrCouponNotYetValid
	}
	if c.validTo != nil && t.After(*c.validTo) {
		return ErrCouponExpired
	}
	return nil
}

// DiscountFor returns the discount applied to base, never more than base.
func (c *Coupon) DiscountFor(base decimal.Decimal) decimal.Decimal {
	return c.discount.AmountFor(base)
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) Discount() Discount    { return c.discount }
func (c *Coupon) ValidFrom() *time.Time { return c.validFrom }
func (c *Coupon) ValidTo() *time.Time   { return c.validTo }
