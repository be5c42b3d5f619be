//go:build unit

package payment_test

import (
	"testing"
	"time"

	"gin-order-service/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayment(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	newPayment := func(t *testing.T) *payment.Payment {
		t.Helper()
		p, err := payment.NewPayment(uuid.New(), uuid.New(), decimal.RequireFromString("69.5"), "cad", "pi_1", "card", now)
		require.NoError(t, err)
		return p
	}

	t.Run("zero amount NG", func(t *testing.T) {
		_, err := payment.NewPayment(uuid.New(), uuid.New(), decimal.Zero, "cad", "pi_1", "card", now)
		require.ErrorIs(t, err, payment.ErrInvalidAmount)
	})

	t.Run("complete is idempotent", func(t *testing.T) {
		p := newPayment(t)
		assert.Equal(t, payment.StatusPending, p.Status())

		changed, err := p.Complete(now)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = p.Complete(now)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, payment.StatusCompleted, p.Status())
	})

	t.Run("fail records the reason once", func(t *testing.T) {
		p := newPayment(t)

		changed, err := p.Fail("insufficient funds", now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "insufficient funds", *p.FailureReason())

		changed, err = p.Fail("other", now)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "insufficient funds", *p.FailureReason())
	})

	t.Run("conflicting outcomes are rejected", func(t *testing.T) {
		p := newPayment(t)
		_, err := p.Complete(now)
		require.NoError(t, err)
		_, err = p.Fail("late", now)
		require.ErrorIs(t, err, payment.ErrConflictingOutcome)

		q := newPayment(t)
		_, err = q.Fail("declined", now)
		require.NoError(t, err)
		_, err = q.Complete(now)
		require.ErrorIs(t, err, payment.ErrConflictingOutcome)
	})
}
