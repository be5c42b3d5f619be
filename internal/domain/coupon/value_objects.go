package coupon

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrAmbiguousDiscount      = errors.New("discount must be either a fixed amount or a percentage")
)

var (
	couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)
	hundred         = decimal.NewFromInt(100)
)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	amountOff  *decimal.Decimal
	percentOff *decimal.Decimal
}

func NewDiscount(amountOff, percentOff *decimal.Decimal) (Discount, error) {
	if (amountOff == nil) == (percentOff == nil) {
		return Discount{}, ErrAmbiguousDiscount
	}

	if amountOff != nil {
		if amountOff.IsNegative() {
			return Discount{}, ErrInvalidDiscountAmount
		}
		return Discount{amountOff: amountOff}, nil
	}

	if percentOff.IsNegative() || percentOff.GreaterThan(hundred) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: percentOff}, nil
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) AmountFor(base decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	if d.IsPercentage() {
		amount = base.Mul(*d.percentOff).Div(hundred).Round(2)
	} else if d.amountOff != nil {
		amount = *d.amountOff
	}

	if amount.GreaterThan(base) {
		return base
	}
	return amount
}
