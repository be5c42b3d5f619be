package readstore

import (
	"context"

	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/pgconv"
	"gin-order-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadQueries interface {
	GetOrder(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	ListOrdersByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByUserParams) ([]sqlc.Orders, error)
	CountOrdersByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOrdersByUserParams) (int64, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
}

func NewOrderReadStore(queries OrderReadQueries) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrder(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	items, err := r.queries.ListOrderItems(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	return toOrderView(row, items), nil
}

func (r *OrderReadStore) ListByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID, filter queries.OrderListFilter) ([]queries.OrderListItem, int64, error) {
	status := pgconv.StringPtrToPgtype(filter.Status)
	from := pgconv.TimePtrToPgtype(filter.FromDate)
	to := pgconv.TimePtrToPgtype(filter.ToDate)

	rows, err := r.queries.ListOrdersByUser(ctx, db, sqlc.ListOrdersByUserParams{
		UserID:   userID,
		Status:   status,
		FromDate: from,
		ToDate:   to,
		Limit:    int32(filter.Limit),  // #nosec G115 -- clamped by the query layer
		Offset:   int32(filter.Offset), // #nosec G115 -- clamped by the query layer
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list orders", err)
	}

	total, err := r.queries.CountOrdersByUser(ctx, db, sqlc.CountOrdersByUserParams{
		UserID:   userID,
		Status:   status,
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count orders", err)
	}

	items := make([]queries.OrderListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, queries.OrderListItem{
			ID:                  row.ID,
			TimeslotID:          row.TimeslotID,
			Status:              row.Status,
			PaymentMethod:       row.PaymentMethod,
			PaymentStatus:       row.PaymentStatus,
			Total:               pgconv.NumericToDecimal(row.Total),
			EstimatedDeliveryAt: pgconv.TimeFromPgtype(row.EstimatedDeliveryAt),
			CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, total, nil
}

func toOrderView(row sqlc.Orders, itemRows []sqlc.OrderItems) *queries.OrderView {
	items := make([]queries.OrderItemView, 0, len(itemRows))
	for _, it := range itemRows {
		items = append(items, queries.OrderItemView{
			ProductID: it.ProductID,
			Name:      it.Name,
			ImageURL:  it.ImageUrl,
			UnitPrice: pgconv.NumericToDecimal(it.UnitPrice),
			Quantity:  int(it.Quantity),
			LineTotal: pgconv.NumericToDecimal(it.LineTotal),
		})
	}

	return &queries.OrderView{
		ID:                   row.ID,
		UserID:               row.UserID,
		AddressID:            row.AddressID,
		TimeslotID:           row.TimeslotID,
		Items:                items,
		DeliveryOption:       row.DeliveryOption,
		DeliveryInstructions: row.DeliveryInstructions,
		DeliveryFee:          pgconv.NumericToDecimal(row.DeliveryFee),
		EstimatedDeliveryAt:  pgconv.TimeFromPgtype(row.EstimatedDeliveryAt),
		Subtotal:             pgconv.NumericToDecimal(row.Subtotal),
		DeliveryAmount:       pgconv.NumericToDecimal(row.DeliveryAmount),
		Tax:                  pgconv.NumericToDecimal(row.Tax),
		Discount:             pgconv.NumericToDecimal(row.Discount),
		Total:                pgconv.NumericToDecimal(row.Total),
		PaymentMethod:        row.PaymentMethod,
		PaymentStatus:        row.PaymentStatus,
		PaymentIntentID:      pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		RefundID:             pgconv.StringPtrFromPgtype(row.RefundID),
		RefundAmount:         pgconv.NumericToDecimalPtr(row.RefundAmount),
		FailureReason:        pgconv.StringPtrFromPgtype(row.FailureReason),
		PaidAt:               pgconv.TimePtrFromPgtype(row.PaidAt),
		Status:               row.Status,
		CancelReason:         pgconv.StringPtrFromPgtype(row.CancelReason),
		PromoCode:            pgconv.StringPtrFromPgtype(row.PromoCode),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:            pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
