package queries

import (
	"context"

	"gin-order-service/internal/domain/user"
	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	StatusByOrder(ctx context.Context, actorID uuid.UUID, role user.Role, orderID uuid.UUID) (*PaymentStatusView, error)
	ListMethods(ctx context.Context, userID uuid.UUID) ([]PaymentMethodView, error)
}

type PaymentReadStore interface {
	StatusByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (*PaymentStatusView, error)
}

type PaymentMethodReadStore interface {
	ListMethods(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]PaymentMethodView, error)
}

type paymentQueriesImpl struct {
	uow          shared.UnitOfWork
	payments     PaymentReadStore
	methodsStore PaymentMethodReadStore
}

func NewPaymentQueries(uow shared.UnitOfWork, payments PaymentReadStore, methods PaymentMethodReadStore) PaymentQueries {
	return &paymentQueriesImpl{
		uow:          uow,
		payments:     payments,
		methodsStore: methods,
	}
}

func (q *paymentQueriesImpl) StatusByOrder(ctx context.Context, actorID uuid.UUID, role user.Role, orderID uuid.UUID) (*PaymentStatusView, error) {
	var view *PaymentStatusView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, err = q.payments.StatusByOrder(ctx, db, orderID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithDetail(errs.Mark(err, errs.ErrOrderNotFound), "order_id="+orderID.String())
		}
		return nil, err
	}

	if view.UserID != actorID && !role.AtLeast(user.RoleStaff) {
		return nil, errs.WithDetail(errs.ErrOrderNotFound, "order_id="+orderID.String())
	}
	return view, nil
}

func (q *paymentQueriesImpl) ListMethods(ctx context.Context, userID uuid.UUID) ([]PaymentMethodView, error) {
	var views []PaymentMethodView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		views, err = q.methodsStore.ListMethods(ctx, db, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
