package commands

import (
	"context"
	"log/slog"

	"gin-order-service/internal/infra"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentMethodCommands interface {
	SetDefault(ctx context.Context, userID, methodID uuid.UUID) error
}

type paymentMethodCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPaymentMethodCommands(uow shared.UnitOfWork) PaymentMethodCommands {
	return &paymentMethodCommandsImpl{uow: uow}
}

// SetDefault clears the previous default and marks methodID in one transaction, keeping at most
// one default per user.
func (c *paymentMethodCommandsImpl) SetDefault(ctx context.Context, userID, methodID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pm, err := tx.PaymentMethods().FindForUpdate(ctx, methodID, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.WithDetail(errs.Mark(err, errs.ErrPaymentMethodNotFound), "payment_method_id="+methodID.String())
			}
			return err
		}
		if !pm.IsActive {
			return errs.WithDetail(errs.ErrPaymentMethodNotFound, "payment_method_id="+methodID.String())
		}
		if pm.IsDefault {
			return nil
		}
		return tx.PaymentMethods().SetDefault(ctx, userID, methodID)
	})
	if err != nil {
		return err
	}

	slog.Info("default payment method changed", "user_id", userID, "payment_method_id", methodID)
	return nil
}
