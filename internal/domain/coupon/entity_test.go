//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"gin-order-service/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCoupon(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	t.Run("fixed discount is capped at the base", func(t *testing.T) {
		c, err := coupon.NewCoupon(uuid.New(), "save10", decPtr("10"), nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, coupon.Code("SAVE10"), c.Code())

		assert.True(t, decimal.NewFromInt(10).Equal(c.DiscountFor(decimal.NewFromInt(50))))
		assert.True(t, decimal.NewFromInt(4).Equal(c.DiscountFor(decimal.NewFromInt(4))))
	})

	t.Run("percentage discount rounds to cents", func(t *testing.T) {
		c, err := coupon.NewCoupon(uuid.New(), "PCT15", nil, decPtr("15"), nil, nil)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("10.43").Equal(c.DiscountFor(decimal.RequireFromString("69.5"))))
	})

	t.Run("validity window", func(t *testing.T) {
		c, err := coupon.NewCoupon(uuid.New(), "WINDOW", decPtr("1"), nil, &yesterday, &tomorrow)
		require.NoError(t, err)
		require.NoError(t, c.ValidateUsage(now))
		require.ErrorIs(t, c.ValidateUsage(tomorrow.Add(time.Second)), coupon.ErrCouponExpired)
		require.ErrorIs(t, c.ValidateUsage(yesterday.Add(-time.Second)), coupon.ErrCouponNotYetValid)
	})

	t.Run("invalid definitions", func(t *testing.T) {
		testCases := []struct {
			name    string
			code    string
			amount  *decimal.Decimal
			percent *decimal.Decimal
			errIs   error
		}{
			{name: "both kinds", code: "BOTH", amount: decPtr("1"), percent: decPtr("1"), errIs: coupon.ErrAmbiguousDiscount},
			{name: "neither kind", code: "NONE", errIs: coupon.ErrAmbiguousDiscount},
			{name: "negative amount", code: "NEG", amount: decPtr("-1"), errIs: coupon.ErrInvalidDiscountAmount},
			{name: "percent over 100", code: "OVER", percent: decPtr("101"), errIs: coupon.ErrInvalidDiscountPercent},
			{name: "bad code", code: "x!", amount: decPtr("1"), errIs: coupon.ErrInvalidCouponCode},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := coupon.NewCoupon(uuid.New(), tc.code, tc.amount, tc.percent, nil, nil)
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}
