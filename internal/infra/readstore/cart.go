package readstore

import (
	"context"

	"gin-order-service/internal/domain/cart"
	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartReadQueries interface {
	GetActiveCartLines(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.GetActiveCartLinesRow, error)
}

// CartReadStore prices the user's active cart with current product prices.
type CartReadStore struct {
	queries CartReadQueries
}

func NewCartReadStore(queries CartReadQueries) *CartReadStore {
	return &CartReadStore{
		queries: queries,
	}
}

// ActiveCart returns nil when the user has no active cart or the cart has no lines.
func (r *CartReadStore) ActiveCart(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (*cart.Snapshot, error) {
	rows, err := r.queries.GetActiveCartLines(ctx, db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read active cart", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	snap := &cart.Snapshot{
		CartID: rows[0].CartID,
		UserID: userID,
		Lines:  make([]cart.Line, 0, len(rows)),
	}
	for _, row := range rows {
		snap.Lines = append(snap.Lines, cart.Line{
			ProductID: row.ProductID,
			Name:      row.Name,
			ImageURL:  row.ImageUrl,
			UnitPrice: pgconv.NumericToDecimal(row.Price),
			Quantity:  int(row.Quantity),
			Available: row.IsActive,
		})
	}
	return snap, nil
}
