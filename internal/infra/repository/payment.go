package repository

import (
	"context"

	"gin-order-service/internal/domain/payment"
	"gin-order-service/internal/infra"
	"gin-order-service/internal/infra/repository/converter"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/pgconv"
	"gin-order-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	GetPaymentByIntentForUpdate(ctx context.Context, db sqlc.DBTX, paymentIntentID string) (sqlc.Payments, error)
	UpdatePaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentStatusParams) error
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, r.db, converter.PaymentToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByIntentForUpdate(ctx context.Context, intentID string) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByIntentForUpdate(ctx, r.db, intentID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}
	return converter.PaymentFromRow(row), nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, p *payment.Payment) error {
	if err := r.queries.UpdatePaymentStatus(ctx, r.db, converter.PaymentToUpdateStatusParams(p)); err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	return nil
}

type PaymentMethodWriteQueries interface {
	GetPaymentMethodForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPaymentMethodForUpdateParams) (sqlc.PaymentMethods, error)
	ClearDefaultPaymentMethods(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) error
	SetPaymentMethodDefault(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type PaymentMethodRepository struct {
	queries PaymentMethodWriteQueries
	db      sqlc.DBTX
}

func NewPaymentMethodRepository(queries PaymentMethodWriteQueries, db sqlc.DBTX) *PaymentMethodRepository {
	return &PaymentMethodRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentMethodRepository) FindForUpdate(ctx context.Context, id, userID uuid.UUID) (*shared.PaymentMethodSnapshot, error) {
	row, err := r.queries.GetPaymentMethodForUpdate(ctx, r.db, sqlc.GetPaymentMethodForUpdateParams{ID: id, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment method not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment method", err)
	}
	return toPaymentMethodSnapshot(row), nil
}

// SetDefault clears the previous default first so the partial unique index never sees two.
func (r *PaymentMethodRepository) SetDefault(ctx context.Context, userID, id uuid.UUID) error {
	if err := r.queries.ClearDefaultPaymentMethods(ctx, r.db, userID); err != nil {
		return infra.WrapRepoErr("failed to clear default payment method", err)
	}
	if err := r.queries.SetPaymentMethodDefault(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to set default payment method", err)
	}
	return nil
}

func toPaymentMethodSnapshot(row sqlc.PaymentMethods) *shared.PaymentMethodSnapshot {
	return &shared.PaymentMethodSnapshot{
		ID:                      row.ID,
		UserID:                  row.UserID,
		ProviderPaymentMethodID: row.ProviderPaymentMethodID,
		Brand:                   row.Brand,
		Last4:                   row.Last4,
		IsDefault:               row.IsDefault,
		IsActive:                row.IsActive,
	}
}
