package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

type DeliveryOption string

const (
	DeliveryStandard DeliveryOption = "standard"
	DeliveryExpress  DeliveryOption = "express"
	DeliverySameday  DeliveryOption = "sameday"
)

var deliveryOffsets = map[DeliveryOption]time.Duration{
	DeliverySameday:  3 * time.Hour,
	DeliveryExpress:  6 * time.Hour,
	DeliveryStandard: 24 * time.Hour,
}

func ParseDeliveryOption(s string) (DeliveryOption, error) {
	option := DeliveryOption(s)
	if _, ok := deliveryOffsets[option]; !ok {
		return "", ErrUnknownDeliveryOption
	}
	return option, nil
}

func (o DeliveryOption) String() string {
	return string(o)
}

func (o DeliveryOption) EstimatedDeliveryFrom(now time.Time) time.Time {
	return now.Add(deliveryOffsets[o])
}

type LineItem struct {
	ProductID uuid.UUID
	Name      string
	ImageURL  string
	UnitPrice decimal.Decimal
	Quantity  int
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity))).Round(moneyPlaces)
}

type Amounts struct {
	Subtotal decimal.Decimal
	Delivery decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Validate checks total = subtotal + delivery + tax - discount.
func (a Amounts) Validate() error {
	expected := a.Subtotal.Add(a.Delivery).Add(a.Tax).Sub(a.Discount)
	if !expected.Equal(a.Total) || a.Total.IsNegative() {
		return ErrAmountsMismatch
	}
	return nil
}

// MinorUnits converts the total to the smallest currency unit.
func (a Amounts) MinorUnits() int64 {
	return a.Total.Shift(moneyPlaces).Round(0).IntPart()
}

type FeeTable map[DeliveryOption]decimal.Decimal

func DefaultFeeTable() FeeTable {
	return FeeTable{
		DeliveryStandard: decimal.NewFromInt(40),
		DeliveryExpress:  decimal.NewFromInt(80),
		DeliverySameday:  decimal.NewFromInt(120),
	}
}

type Calculator interface {
	Calculate(items []LineItem, option DeliveryOption, discount decimal.Decimal) (Amounts, error)
}

type DefaultCalculator struct {
	fees    FeeTable
	taxRate decimal.Decimal
}

func NewDefaultCalculator(fees FeeTable, taxRate decimal.Decimal) *DefaultCalculator {
	return &DefaultCalculator{
		fees:    fees,
		taxRate: taxRate,
	}
}

func (c *DefaultCalculator) Calculate(items []LineItem, option DeliveryOption, discount decimal.Decimal) (Amounts, error) {
	fee, ok := c.fees[option]
	if !ok {
		return Amounts{}, ErrUnknownDeliveryOption
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if item.Quantity < 1 {
			return Amounts{}, ErrInvalidQuantity
		}
		subtotal = subtotal.Add(item.LineTotal())
	}

	delivery := fee.Round(moneyPlaces)
	tax := subtotal.Mul(c.taxRate).Round(moneyPlaces)
	gross := subtotal.Add(delivery).Add(tax)

	discount = discount.Round(moneyPlaces)
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(gross) {
		discount = gross
	}

	return Amounts{
		Subtotal: subtotal,
		Delivery: delivery,
		Tax:      tax,
		Discount: discount,
		Total:    gross.Sub(discount),
	}, nil
}
