package shared

import (
	"context"
	"time"

	"gin-order-service/internal/domain/cart"
	"gin-order-service/internal/domain/order"
	"gin-order-service/internal/domain/payment"
	"gin-order-service/internal/domain/timeslot"
	sqlc "gin-order-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx hands out repositories bound to one database transaction.
type Tx interface {
	Timeslots() TimeslotRepository
	Orders() OrderRepository
	Payments() PaymentRepository
	PaymentMethods() PaymentMethodRepository
	Stock() StockRepository
	Carts() CartRepository
	Idempotency() IdempotencyRepository
	Outbox() OutboxRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ActiveCart(ctx context.Context, userID uuid.UUID) (*cart.Snapshot, error)
	DefaultPaymentMethod(ctx context.Context, userID uuid.UUID) (*PaymentMethodSnapshot, error)
	AddressBelongsTo(ctx context.Context, addressID, userID uuid.UUID) (bool, error)
	CouponByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

// TimeslotRepository persists capacity changes. FindForUpdate takes the row lock that
// serializes every reserve and release on the slot.
type TimeslotRepository interface {
	FindForUpdate(ctx context.Context, id uuid.UUID) (*timeslot.Timeslot, error)
	SaveReservation(ctx context.Context, slot *timeslot.Timeslot, orderID uuid.UUID) error
	SaveRelease(ctx context.Context, slot *timeslot.Timeslot, orderID uuid.UUID) error
	UpdateSettings(ctx context.Context, slot *timeslot.Timeslot) error
	CreateBatch(ctx context.Context, slots []*timeslot.Timeslot) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error)
	UpdateState(ctx context.Context, o *order.Order) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	FindByIntentForUpdate(ctx context.Context, intentID string) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, p *payment.Payment) error
}

type PaymentMethodRepository interface {
	FindForUpdate(ctx context.Context, id, userID uuid.UUID) (*PaymentMethodSnapshot, error)
	SetDefault(ctx context.Context, userID, id uuid.UUID) error
}

type StockRepository interface {
	// Decrement returns false when the product does not have qty units left.
	Decrement(ctx context.Context, productID uuid.UUID, qty int) (bool, error)
	Increment(ctx context.Context, productID uuid.UUID, qty int) error
}

type CartRepository interface {
	// Complete returns false when the cart is no longer active.
	Complete(ctx context.Context, cartID, userID uuid.UUID) (bool, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, key, userID, orderID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// OutboxRepository writes order events in the business transaction; the relay drains them.
type OutboxRepository interface {
	Enqueue(ctx context.Context, evt OutboxEvent) error
	// ClaimDue locks queued events that are due, skipping rows held by another relay.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]OutboxMessage, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkRetry(ctx context.Context, id uuid.UUID, lastError string, runAt time.Time, giveUp bool) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
