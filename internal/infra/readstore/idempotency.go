package readstore

import (
	"context"

	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/pgconv"
	"gin-order-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	params := sqlc.GetIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:           row.Key,
		UserID:        row.UserID,
		Status:        row.Status,
		RequestHash:   row.RequestHash,
		ResultOrderID: pgconv.UUIDPtrFromPgtype(row.ResultOrderID),
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
