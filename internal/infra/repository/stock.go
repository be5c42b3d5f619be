package repository

import (
	"context"

	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type StockWriteQueries interface {
	DecrementProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementProductStockParams) (int64, error)
	IncrementProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementProductStockParams) error
}

type StockRepository struct {
	queries StockWriteQueries
	db      sqlc.DBTX
}

func NewStockRepository(queries StockWriteQueries, db sqlc.DBTX) *StockRepository {
	return &StockRepository{
		queries: queries,
		db:      db,
	}
}

// Decrement is a single conditional UPDATE, so concurrent checkouts never oversell.
func (r *StockRepository) Decrement(ctx context.Context, productID uuid.UUID, qty int) (bool, error) {
	affected, err := r.queries.DecrementProductStock(ctx, r.db, sqlc.DecrementProductStockParams{
		ID:       productID,
		Quantity: int32(qty), // #nosec G115 -- cart quantities are small
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement stock", err)
	}
	return affected == 1, nil
}

func (r *StockRepository) Increment(ctx context.Context, productID uuid.UUID, qty int) error {
	err := r.queries.IncrementProductStock(ctx, r.db, sqlc.IncrementProductStockParams{
		ID:       productID,
		Quantity: int32(qty), // #nosec G115 -- cart quantities are small
	})
	if err != nil {
		return infra.WrapRepoErr("failed to restore stock", err)
	}
	return nil
}

type CartWriteQueries interface {
	CompleteActiveCart(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteActiveCartParams) (int64, error)
}

type CartRepository struct {
	queries CartWriteQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartWriteQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CartRepository) Complete(ctx context.Context, cartID, userID uuid.UUID) (bool, error) {
	affected, err := r.queries.CompleteActiveCart(ctx, r.db, sqlc.CompleteActiveCartParams{
		ID:     cartID,
		UserID: userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete cart", err)
	}
	return affected == 1, nil
}
