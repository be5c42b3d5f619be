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

const (
	defaultOrderPageSize = 20
	maxOrderPageSize     = 100
)

type OrderQueries interface {
	// GetByID hides orders of other customers behind ErrOrderNotFound; staff see every order.
	GetByID(ctx context.Context, actorID uuid.UUID, role user.Role, id uuid.UUID) (*OrderView, error)
	// GetByIDSystem skips ownership checks; used for read-after-write and idempotent replays.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, userID uuid.UUID, filter OrderListFilter) (*OrderListView, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID, filter OrderListFilter) ([]OrderListItem, int64, error)
}

type orderQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore OrderReadStore
}

func NewOrderQueries(uow shared.UnitOfWork, readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, role user.Role, id uuid.UUID) (*OrderView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	if view.UserID != actorID && !role.AtLeast(user.RoleStaff) {
		return nil, errs.WithDetail(errs.ErrOrderNotFound, "order_id="+id.String())
	}
	return view, nil
}

func (q *orderQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	var view *OrderView
	// order row and items must come from one snapshot
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, err = q.readStore.FindByID(ctx, db, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithDetail(errs.Mark(err, errs.ErrOrderNotFound), "order_id="+id.String())
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) List(ctx context.Context, userID uuid.UUID, filter OrderListFilter) (*OrderListView, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultOrderPageSize
	}
	filter.Limit = min(filter.Limit, maxOrderPageSize)
	filter.Offset = max(filter.Offset, 0)

	var (
		items []OrderListItem
		total int64
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		items, total, err = q.readStore.ListByUser(ctx, db, userID, filter)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &OrderListView{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}
