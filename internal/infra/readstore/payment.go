package readstore

import (
	"context"

	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/pgconv"
	"gin-order-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadQueries interface {
	GetOrder(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetPaymentByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.Payments, error)
}

type PaymentReadStore struct {
	queries  PaymentReadQueries
	currency string
}

func NewPaymentReadStore(queries PaymentReadQueries, currency string) *PaymentReadStore {
	return &PaymentReadStore{
		queries:  queries,
		currency: currency,
	}
}

// StatusByOrder reads the order's payment sub-record; the provider row is optional
// because cash and wallet orders never create one.
func (r *PaymentReadStore) StatusByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (*queries.PaymentStatusView, error) {
	o, err := r.queries.GetOrder(ctx, db, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	view := &queries.PaymentStatusView{
		OrderID:         o.ID,
		UserID:          o.UserID,
		OrderStatus:     o.Status,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus,
		PaymentIntentID: pgconv.StringPtrFromPgtype(o.PaymentIntentID),
		Amount:          pgconv.NumericToDecimal(o.Total),
		Currency:        r.currency,
		FailureReason:   pgconv.StringPtrFromPgtype(o.FailureReason),
		PaidAt:          pgconv.TimePtrFromPgtype(o.PaidAt),
	}

	p, err := r.queries.GetPaymentByOrder(ctx, db, orderID)
	switch {
	case err == nil:
		status := p.Status
		view.ProviderStatus = &status
		view.Currency = p.Currency
	case !pgconv.IsNoRows(err):
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}

	return view, nil
}

type PaymentMethodReadQueries interface {
	GetDefaultPaymentMethod(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.PaymentMethods, error)
	ListPaymentMethodsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.PaymentMethods, error)
}

type PaymentMethodReadStore struct {
	queries PaymentMethodReadQueries
}

func NewPaymentMethodReadStore(queries PaymentMethodReadQueries) *PaymentMethodReadStore {
	return &PaymentMethodReadStore{
		queries: queries,
	}
}

func (r *PaymentMethodReadStore) DefaultMethod(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (*queries.PaymentMethodView, error) {
	row, err := r.queries.GetDefaultPaymentMethod(ctx, db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("default payment method not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find default payment method", err)
	}
	view := toPaymentMethodView(row)
	return &view, nil
}

func (r *PaymentMethodReadStore) ListMethods(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]queries.PaymentMethodView, error) {
	rows, err := r.queries.ListPaymentMethodsByUser(ctx, db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment methods", err)
	}
	views := make([]queries.PaymentMethodView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toPaymentMethodView(row))
	}
	return views, nil
}

func toPaymentMethodView(row sqlc.PaymentMethods) queries.PaymentMethodView {
	return queries.PaymentMethodView{
		ID:                      row.ID,
		UserID:                  row.UserID,
		ProviderPaymentMethodID: row.ProviderPaymentMethodID,
		Brand:                   row.Brand,
		Last4:                   row.Last4,
		ExpMonth:                int(row.ExpMonth),
		ExpYear:                 int(row.ExpYear),
		IsDefault:               row.IsDefault,
		IsActive:                row.IsActive,
	}
}
