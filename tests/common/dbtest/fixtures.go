//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gin-order-service/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var testPasswordHash = sync.OnceValues(func() (string, error) {
	return password.HashPassword(TestPassword)
})

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()
	return CreateTestCustomer(t, db, email, role, nil)
}

// CreateTestCustomer inserts an active user. A non-nil customerRef makes the user chargeable by card.
func CreateTestCustomer(t *testing.T, db DBLike, email, role string, customerRef *string) uuid.UUID {
	t.Helper()

	hash, err := testPasswordHash()
	require.NoError(t, err)

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, role, payment_customer_ref, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, hash, role, customerRef)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

func CreateAddress(t *testing.T, db DBLike, userID uuid.UUID) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO addresses (user_id, line1, city, province, postal_code, is_default)
		VALUES ($1, '100 Queen St W', 'Toronto', 'ON', 'M5H 2N2', true) RETURNING id`, userID).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateProduct(t *testing.T, db DBLike, name string, price decimal.Decimal, stock int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO products (name, price, stock) VALUES ($1, $2, $3) RETURNING id`,
		name, price.StringFixed(2), stock).Scan(&id)
	require.NoError(t, err)
	return id
}

func ProductStock(t *testing.T, db DBLike, productID uuid.UUID) int {
	t.Helper()

	var stock int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT stock FROM products WHERE id = $1", productID).Scan(&stock))
	return stock
}

// CreateActiveCart fills the user's active cart with quantity per product.
func CreateActiveCart(t *testing.T, db DBLike, userID uuid.UUID, items map[uuid.UUID]int) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	var cartID uuid.UUID
	require.NoError(t, db.QueryRow(ctx, `INSERT INTO carts (user_id) VALUES ($1) RETURNING id`, userID).Scan(&cartID))

	for productID, qty := range items {
		_, err := db.Exec(ctx, `INSERT INTO cart_items (cart_id, product_id, quantity) VALUES ($1, $2, $3)`,
			cartID, productID, qty)
		require.NoError(t, err)
	}
	return cartID
}

func CartStatus(t *testing.T, db DBLike, cartID uuid.UUID) string {
	t.Helper()

	var status string
	require.NoError(t, db.QueryRow(context.Background(), "SELECT status FROM carts WHERE id = $1", cartID).Scan(&status))
	return status
}

func CreatePaymentMethod(t *testing.T, db DBLike, userID uuid.UUID, providerRef string, isDefault bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO payment_methods
		(user_id, provider_payment_method_id, brand, last4, exp_month, exp_year, is_default)
		VALUES ($1, $2, 'visa', '4242', 12, 2030, $3) RETURNING id`,
		userID, providerRef, isDefault).Scan(&id)
	require.NoError(t, err)
	return id
}

type TimeslotParams struct {
	Start          time.Time
	Duration       time.Duration
	MaxOrders      int
	BufferCapacity int
	CutoffHours    int
}

func CreateTimeslot(t *testing.T, db DBLike, p TimeslotParams) uuid.UUID {
	t.Helper()

	if p.Duration == 0 {
		p.Duration = 2 * time.Hour
	}
	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO timeslots
		(start_time, end_time, max_orders, buffer_capacity, cutoff_hours, day_of_week)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		p.Start, p.Start.Add(p.Duration), p.MaxOrders, p.BufferCapacity, p.CutoffHours, int(p.Start.Weekday())).Scan(&id)
	require.NoError(t, err)
	return id
}

func TimeslotOrders(t *testing.T, db DBLike, slotID uuid.UUID) int {
	t.Helper()

	var current int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT current_orders FROM timeslots WHERE id = $1", slotID).Scan(&current))
	return current
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// SeedReferenceData inserts rows every test expects. The order schema has none today.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
