package readstore

import (
	"context"

	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type AddressReadQueries interface {
	AddressBelongsToUser(ctx context.Context, db sqlc.DBTX, arg sqlc.AddressBelongsToUserParams) (bool, error)
}

type AddressReadStore struct {
	queries AddressReadQueries
}

func NewAddressReadStore(queries AddressReadQueries) *AddressReadStore {
	return &AddressReadStore{
		queries: queries,
	}
}

func (r *AddressReadStore) BelongsTo(ctx context.Context, db sqlc.DBTX, addressID, userID uuid.UUID) (bool, error) {
	ok, err := r.queries.AddressBelongsToUser(ctx, db, sqlc.AddressBelongsToUserParams{ID: addressID, UserID: userID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check address ownership", err)
	}
	return ok, nil
}
