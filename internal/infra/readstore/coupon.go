package readstore

import (
	"context"
	"strings"

	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/pgconv"
	"gin-order-service/internal/usecase/shared"
)

type CouponReadQueries interface {
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
}

func NewCouponReadStore(queries CouponReadQueries) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
	}
}

// FindByCode matches case-insensitively; codes are stored upper-case.
func (r *CouponReadStore) FindByCode(ctx context.Context, db sqlc.DBTX, code string) (*shared.CouponSnapshot, error) {
	normalizedCode := strings.ToUpper(strings.TrimSpace(code))
	row, err := r.queries.GetCouponByCode(ctx, db, normalizedCode)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	return toCouponSnapshotFromRow(row), nil
}

func toCouponSnapshotFromRow(row sqlc.Coupons) *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:         row.ID,
		Code:       row.Code,
		AmountOff:  pgconv.NumericToDecimalPtr(row.AmountOff),
		PercentOff: pgconv.NumericToDecimalPtr(row.PercentOff),
		ValidFrom:  pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidTo:    pgconv.TimePtrFromPgtype(row.ValidTo),
	}
}
