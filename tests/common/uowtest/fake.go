//go:build unit || e2e

package uowtest

import (
	"context"

	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/usecase/shared"
)

// Tx serves whichever repositories a test sets; the rest stay nil.
type Tx struct {
	TimeslotRepo      shared.TimeslotRepository
	OrderRepo         shared.OrderRepository
	PaymentRepo       shared.PaymentRepository
	PaymentMethodRepo shared.PaymentMethodRepository
	StockRepo         shared.StockRepository
	CartRepo          shared.CartRepository
	IdempotencyRepo   shared.IdempotencyRepository
	OutboxRepo        shared.OutboxRepository
	UserRepo          shared.UserRepository
	CommandReads      shared.CommandReads
}

func (t *Tx) Timeslots() shared.TimeslotRepository           { return t.TimeslotRepo }
func (t *Tx) Orders() shared.OrderRepository                 { return t.OrderRepo }
func (t *Tx) Payments() shared.PaymentRepository             { return t.PaymentRepo }
func (t *Tx) PaymentMethods() shared.PaymentMethodRepository { return t.PaymentMethodRepo }
func (t *Tx) Stock() shared.StockRepository                  { return t.StockRepo }
func (t *Tx) Carts() shared.CartRepository                   { return t.CartRepo }
func (t *Tx) Idempotency() shared.IdempotencyRepository      { return t.IdempotencyRepo }
func (t *Tx) Outbox() shared.OutboxRepository                { return t.OutboxRepo }
func (t *Tx) Users() shared.UserRepository                   { return t.UserRepo }
func (t *Tx) Reads() shared.CommandReads                     { return t.CommandReads }
func (t *Tx) DB() sqlc.DBTX                                  { return nil }

// UnitOfWork runs callbacks against Tx without a database. CommitErr is returned after a
// successful callback to simulate a failed commit.
type UnitOfWork struct {
	Tx        *Tx
	CommitErr error

	Commits   int
	Rollbacks int
}

func New(tx *Tx) *UnitOfWork {
	return &UnitOfWork{Tx: tx}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := fn(ctx, u.Tx); err != nil {
		u.Rollbacks++
		return err
	}
	if u.CommitErr != nil {
		u.Rollbacks++
		return u.CommitErr
	}
	u.Commits++
	return nil
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return u.Tx.CommandReads
}
