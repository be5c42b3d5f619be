package repository

import (
	"context"

	"gin-order-service/internal/domain/order"
	"gin-order-service/internal/infra"
	"gin-order-service/internal/infra/repository/converter"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error
	GetOrderForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	UpdateOrderState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStateParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, r.db, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for _, item := range converter.OrderItemsToCreateParams(o) {
		if err := r.queries.CreateOrderItem(ctx, r.db, item); err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}

	return nil
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}

	items, err := r.queries.ListOrderItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	o, err := converter.OrderFromRows(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt order row", err)
	}
	return o, nil
}

func (r *OrderRepository) UpdateState(ctx context.Context, o *order.Order) error {
	if err := r.queries.UpdateOrderState(ctx, r.db, converter.OrderToUpdateStateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to update order state", err)
	}
	return nil
}
