package queries

import (
	"context"

	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, db sqlc.DBTX, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore UserReadStore
}

func NewUserQueries(uow shared.UnitOfWork, readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	var user *AuthorizedUserView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		user, err = q.readStore.FindByID(ctx, db, userID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, errs.ErrUserInactive
	}

	return user, nil
}
