package cart

import (
	"errors"

	"gin-order-service/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrProductUnavailable = errors.New("product is no longer available")

// Line is a cart item priced with the product's current price.
type Line struct {
	ProductID uuid.UUID
	Name      string
	ImageURL  string
	UnitPrice decimal.Decimal
	Quantity  int
	Available bool
}

// Snapshot is the user's active cart at checkout time.
type Snapshot struct {
	CartID uuid.UUID
	UserID uuid.UUID
	Lines  []Line
}

func (s *Snapshot) IsEmpty() bool {
	return s == nil || len(s.Lines) == 0
}

// LineItems converts the cart to order line items, rejecting products that were deactivated.
func (s *Snapshot) LineItems() ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(s.Lines))
	for _, l := range s.Lines {
		if !l.Available {
			return nil, ErrProductUnavailable
		}
		items = append(items, order.LineItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			ImageURL:  l.ImageURL,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	return items, nil
}
