package converter

import (
	"gin-order-service/internal/domain/order"
	"gin-order-service/internal/domain/payment"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/pkg/pgconv"
)

func OrderFromRows(row sqlc.Orders, itemRows []sqlc.OrderItems) (*order.Order, error) {
	option, err := order.ParseDeliveryOption(row.DeliveryOption)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.ID)
	}
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.ID)
	}
	paymentStatus, err := order.ParsePaymentStatus(row.PaymentStatus)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.ID)
	}
	kind, err := order.ParseMethodKind(row.PaymentMethod)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.ID)
	}
	method, err := order.MethodFromKind(kind, pgconv.StringFromPgtype(row.PaymentMethodRef))
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.ID)
	}

	items := make([]order.LineItem, 0, len(itemRows))
	for _, it := range itemRows {
		items = append(items, order.LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			ImageURL:  it.ImageUrl,
			UnitPrice: pgconv.NumericToDecimal(it.UnitPrice),
			Quantity:  int(it.Quantity),
		})
	}

	return order.Reconstruct(
		row.ID, row.UserID, row.AddressID, row.TimeslotID,
		items,
		order.Delivery{
			Option:       option,
			Instructions: row.DeliveryInstructions,
			Fee:          pgconv.NumericToDecimal(row.DeliveryFee),
			EstimatedAt:  pgconv.TimeFromPgtype(row.EstimatedDeliveryAt),
		},
		order.Amounts{
			Subtotal: pgconv.NumericToDecimal(row.Subtotal),
			Delivery: pgconv.NumericToDecimal(row.DeliveryAmount),
			Tax:      pgconv.NumericToDecimal(row.Tax),
			Discount: pgconv.NumericToDecimal(row.Discount),
			Total:    pgconv.NumericToDecimal(row.Total),
		},
		order.Payment{
			Method:        method,
			Status:        paymentStatus,
			IntentID:      pgconv.StringPtrFromPgtype(row.PaymentIntentID),
			RefundID:      pgconv.StringPtrFromPgtype(row.RefundID),
			RefundAmount:  pgconv.NumericToDecimalPtr(row.RefundAmount),
			RefundReason:  pgconv.StringPtrFromPgtype(row.RefundReason),
			FailureReason: pgconv.StringPtrFromPgtype(row.FailureReason),
			PaidAt:        pgconv.TimePtrFromPgtype(row.PaidAt),
		},
		status,
		pgconv.StringPtrFromPgtype(row.CancelReason),
		pgconv.StringPtrFromPgtype(row.PromoCode),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	d := o.Delivery()
	a := o.Amounts()
	p := o.Payment()
	return sqlc.CreateOrderParams{
		ID:                   o.ID(),
		UserID:               o.UserID(),
		AddressID:            o.AddressID(),
		TimeslotID:           o.TimeslotID(),
		DeliveryOption:       d.Option.String(),
		DeliveryInstructions: d.Instructions,
		DeliveryFee:          pgconv.DecimalToNumeric(d.Fee),
		EstimatedDeliveryAt:  pgconv.TimeToPgtype(d.EstimatedAt),
		Subtotal:             pgconv.DecimalToNumeric(a.Subtotal),
		DeliveryAmount:       pgconv.DecimalToNumeric(a.Delivery),
		Tax:                  pgconv.DecimalToNumeric(a.Tax),
		Discount:             pgconv.DecimalToNumeric(a.Discount),
		Total:                pgconv.DecimalToNumeric(a.Total),
		PaymentMethod:        p.Method.Kind().String(),
		PaymentStatus:        p.Status.String(),
		PaymentIntentID:      pgconv.StringPtrToPgtype(p.IntentID),
		PaymentMethodRef:     pgconv.NonEmptyToPgtype(methodRef(p.Method)),
		Status:               o.Status().String(),
		PromoCode:            pgconv.StringPtrToPgtype(o.PromoCode()),
		CreatedAt:            pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:            pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OrderItemsToCreateParams(o *order.Order) []sqlc.CreateOrderItemParams {
	items := o.Items()
	params := make([]sqlc.CreateOrderItemParams, 0, len(items))
	for i, it := range items {
		params = append(params, sqlc.CreateOrderItemParams{
			OrderID:   o.ID(),
			Position:  int32(i), // #nosec G115 -- cart sizes are small
			ProductID: it.ProductID,
			Name:      it.Name,
			ImageUrl:  it.ImageURL,
			UnitPrice: pgconv.DecimalToNumeric(it.UnitPrice),
			Quantity:  int32(it.Quantity), // #nosec G115 -- validated >= 1
			LineTotal: pgconv.DecimalToNumeric(it.LineTotal()),
		})
	}
	return params
}

func OrderToUpdateStateParams(o *order.Order) sqlc.UpdateOrderStateParams {
	p := o.Payment()
	return sqlc.UpdateOrderStateParams{
		ID:               o.ID(),
		Status:           o.Status().String(),
		CancelReason:     pgconv.StringPtrToPgtype(o.CancelReason()),
		PaymentStatus:    p.Status.String(),
		PaymentIntentID:  pgconv.StringPtrToPgtype(p.IntentID),
		PaymentMethodRef: pgconv.NonEmptyToPgtype(methodRef(p.Method)),
		RefundID:         pgconv.StringPtrToPgtype(p.RefundID),
		RefundAmount:     pgconv.DecimalPtrToNumeric(p.RefundAmount),
		RefundReason:     pgconv.StringPtrToPgtype(p.RefundReason),
		FailureReason:    pgconv.StringPtrToPgtype(p.FailureReason),
		PaidAt:           pgconv.TimePtrToPgtype(p.PaidAt),
		UpdatedAt:        pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func methodRef(m order.PaymentMethod) string {
	if card, ok := m.(order.CardMethod); ok {
		return card.MethodRef
	}
	return ""
}

func PaymentFromRow(row sqlc.Payments) *payment.Payment {
	return payment.Reconstruct(
		row.ID, row.UserID, row.OrderID,
		pgconv.NumericToDecimal(row.Amount),
		row.Currency, row.PaymentIntentID, row.PaymentMethod,
		payment.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.FailureReason),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:              p.ID(),
		UserID:          p.UserID(),
		OrderID:         p.OrderID(),
		Amount:          pgconv.DecimalToNumeric(p.Amount()),
		Currency:        p.Currency(),
		PaymentIntentID: p.IntentID(),
		PaymentMethod:   p.Method(),
		Status:          p.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentToUpdateStatusParams(p *payment.Payment) sqlc.UpdatePaymentStatusParams {
	return sqlc.UpdatePaymentStatusParams{
		ID:            p.ID(),
		Status:        p.Status().String(),
		FailureReason: pgconv.StringPtrToPgtype(p.FailureReason()),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}
