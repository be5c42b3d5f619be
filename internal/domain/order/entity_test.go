//go:build unit

package order_test

import (
	"testing"
	"time"

	"gin-order-service/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newPendingOrder(t *testing.T, method order.PaymentMethod) *order.Order {
	t.Helper()
	calc := order.NewDefaultCalculator(order.DefaultFeeTable(), dec("0.18"))
	items := []order.LineItem{{ProductID: uuid.New(), Name: "milk", UnitPrice: dec("10"), Quantity: 2}}
	amounts, err := calc.Calculate(items, order.DeliveryExpress, decimal.Zero)
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		UserID:     uuid.New(),
		AddressID:  uuid.New(),
		TimeslotID: uuid.New(),
		Items:      items,
		Option:     order.DeliveryExpress,
		Amounts:    amounts,
		Method:     method,
	}, now)
	require.NoError(t, err)
	return o
}

func orderWithStatus(t *testing.T, status order.Status, payment order.Payment) *order.Order {
	t.Helper()
	base := newPendingOrder(t, order.CardMethod{MethodRef: "pm_1"})
	return order.Reconstruct(base.ID(), base.UserID(), base.AddressID(), base.TimeslotID(), base.Items(),
		base.Delivery(), base.Amounts(), payment, status, nil, nil, now, now)
}

func TestNewOrder(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		o := newPendingOrder(t, order.CashOnDelivery{})

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.Payment().Status)
		assert.Equal(t, order.MethodCOD, o.Payment().Method.Kind())
		assert.Equal(t, now.Add(6*time.Hour), o.Delivery().EstimatedAt)
		assertMoney(t, "80", o.Delivery().Fee)
	})

	t.Run("空の明細NG", func(t *testing.T) {
		_, err := order.NewOrder(order.NewOrderParams{Option: order.DeliveryStandard, Method: order.CashOnDelivery{}}, now)
		require.ErrorIs(t, err, order.ErrNoItems)
	})

	t.Run("金額不整合NG", func(t *testing.T) {
		_, err := order.NewOrder(order.NewOrderParams{
			Items:   []order.LineItem{{UnitPrice: dec("1"), Quantity: 1}},
			Option:  order.DeliveryStandard,
			Method:  order.CashOnDelivery{},
			Amounts: order.Amounts{Subtotal: dec("1"), Total: dec("2")},
		}, now)
		require.ErrorIs(t, err, order.ErrAmountsMismatch)
	})

	t.Run("items are snapshotted", func(t *testing.T) {
		o := newPendingOrder(t, order.CashOnDelivery{})
		items := o.Items()
		items[0].Quantity = 99
		assert.Equal(t, 2, o.Items()[0].Quantity)
	})
}

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from, to order.Status
		want     bool
	}{
		{order.StatusPending, order.StatusConfirmed, true},
		{order.StatusConfirmed, order.StatusProcessing, true},
		{order.StatusProcessing, order.StatusReadyForPickup, true},
		{order.StatusReadyForPickup, order.StatusOutForDelivery, true},
		{order.StatusOutForDelivery, order.StatusDelivered, true},
		{order.StatusPending, order.StatusProcessing, false},
		{order.StatusDelivered, order.StatusPending, false},
		{order.StatusOutForDelivery, order.StatusCancelled, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusDelivered, order.StatusCancelled, false},
		{order.StatusCancelled, order.StatusCancelled, false},
		{order.StatusRefunded, order.StatusCancelled, false},
		{order.StatusDelivered, order.StatusRefunded, true},
		{order.StatusConfirmed, order.StatusRefunded, false},
	}
	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, order.CanTransition(tc.from, tc.to))
		})
	}
}

func TestCanTransitionPayment(t *testing.T) {
	assert.True(t, order.CanTransitionPayment(order.PaymentPending, order.PaymentAuthorized))
	assert.True(t, order.CanTransitionPayment(order.PaymentPending, order.PaymentFailed))
	assert.True(t, order.CanTransitionPayment(order.PaymentAuthorized, order.PaymentCaptured))
	assert.True(t, order.CanTransitionPayment(order.PaymentAuthorized, order.PaymentFailed))
	assert.True(t, order.CanTransitionPayment(order.PaymentCaptured, order.PaymentRefunded))
	assert.False(t, order.CanTransitionPayment(order.PaymentFailed, order.PaymentAuthorized))
	assert.False(t, order.CanTransitionPayment(order.PaymentRefunded, order.PaymentCaptured))
	assert.False(t, order.CanTransitionPayment(order.PaymentCaptured, order.PaymentFailed))
}

func TestOrder_CapturePayment(t *testing.T) {
	t.Run("pending card payment steps through authorized and confirms the order", func(t *testing.T) {
		o := newPendingOrder(t, order.CardMethod{MethodRef: "pm_1"})
		require.NoError(t, o.AttachIntent("pi_1", false, now))

		changed, err := o.CapturePayment(now.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.PaymentCaptured, o.Payment().Status)
		assert.Equal(t, order.StatusConfirmed, o.Status())
		require.NotNil(t, o.Payment().PaidAt)

		changed, err = o.CapturePayment(now.Add(2 * time.Minute))
		require.NoError(t, err)
		assert.False(t, changed, "second notification is a no-op")
		assert.Equal(t, now.Add(time.Minute), *o.Payment().PaidAt)
	})

	t.Run("failed payment cannot be captured", func(t *testing.T) {
		o := newPendingOrder(t, order.CardMethod{MethodRef: "pm_1"})
		_, err := o.FailPayment("declined", now)
		require.NoError(t, err)

		_, err = o.CapturePayment(now)
		require.ErrorIs(t, err, order.ErrInvalidPaymentTransition)
	})

	t.Run("capture does not resurrect a cancelled order", func(t *testing.T) {
		o := newPendingOrder(t, order.CardMethod{MethodRef: "pm_1"})
		require.NoError(t, o.AttachIntent("pi_1", true, now))
		require.NoError(t, o.Cancel("changed my mind", now))

		changed, err := o.CapturePayment(now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.True(t, o.HasCapturedFunds())
	})
}

func TestOrder_FailPayment(t *testing.T) {
	o := newPendingOrder(t, order.CardMethod{MethodRef: "pm_1"})
	require.NoError(t, o.AttachIntent("pi_1", false, now))

	changed, err := o.FailPayment("card_declined", now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, order.PaymentFailed, o.Payment().Status)
	assert.Equal(t, "card_declined", *o.Payment().FailureReason)
	assert.Equal(t, order.StatusCancelled, o.Status())
	assert.Equal(t, order.CancelReasonPaymentFailed, *o.CancelReason())

	changed, err = o.FailPayment("card_declined", now)
	require.NoError(t, err)
	assert.False(t, changed)

	captured := orderWithStatus(t, order.StatusConfirmed, order.Payment{Method: order.CardMethod{}, Status: order.PaymentCaptured})
	_, err = captured.FailPayment("late failure", now)
	require.ErrorIs(t, err, order.ErrInvalidPaymentTransition)
	assert.Equal(t, order.StatusConfirmed, captured.Status())
}

func TestOrder_Cancel(t *testing.T) {
	testCases := []struct {
		status order.Status
		errIs  error
	}{
		{status: order.StatusPending},
		{status: order.StatusConfirmed},
		{status: order.StatusOutForDelivery},
		{status: order.StatusDelivered, errIs: order.ErrInvalidTransition},
		{status: order.StatusCancelled, errIs: order.ErrInvalidTransition},
		{status: order.StatusRefunded, errIs: order.ErrInvalidTransition},
	}
	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			o := orderWithStatus(t, tc.status, order.Payment{Method: order.CashOnDelivery{}, Status: order.PaymentPending})
			err := o.Cancel("customer request", now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.status, o.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.StatusCancelled, o.Status())
			assert.Equal(t, "customer request", *o.CancelReason())
		})
	}
}

func TestOrder_Refund(t *testing.T) {
	captured := order.Payment{Method: order.CardMethod{MethodRef: "pm_1"}, Status: order.PaymentCaptured}

	t.Run("delivered with captured funds", func(t *testing.T) {
		o := orderWithStatus(t, order.StatusDelivered, captured)
		require.True(t, o.CanRefund())

		require.NoError(t, o.Refund("re_1", o.Amounts().Total, "damaged", now))
		assert.Equal(t, order.StatusRefunded, o.Status())
		assert.Equal(t, order.PaymentRefunded, o.Payment().Status)
		assert.Equal(t, "re_1", *o.Payment().RefundID)
		assert.False(t, o.CanRefund())
	})

	t.Run("not delivered", func(t *testing.T) {
		o := orderWithStatus(t, order.StatusConfirmed, captured)
		require.ErrorIs(t, o.Refund("re_1", o.Amounts().Total, "", now), order.ErrNotRefundable)
	})

	t.Run("payment not captured", func(t *testing.T) {
		o := orderWithStatus(t, order.StatusDelivered, order.Payment{Method: order.CashOnDelivery{}, Status: order.PaymentPending})
		require.ErrorIs(t, o.Refund("re_1", o.Amounts().Total, "", now), order.ErrNotRefundable)
	})
}

func TestOrder_AdvanceTo(t *testing.T) {
	o := newPendingOrder(t, order.CashOnDelivery{})

	require.NoError(t, o.AdvanceTo(order.StatusConfirmed, now))
	require.ErrorIs(t, o.AdvanceTo(order.StatusDelivered, now), order.ErrInvalidTransition)
	require.ErrorIs(t, o.AdvanceTo(order.StatusCancelled, now), order.ErrInvalidTransition)
	assert.Equal(t, order.StatusConfirmed, o.Status())
}

func TestOrder_NeedsVoid(t *testing.T) {
	o := newPendingOrder(t, order.CardMethod{MethodRef: "pm_1"})
	assert.False(t, o.NeedsVoid())

	require.NoError(t, o.AttachIntent("pi_1", true, now))
	assert.True(t, o.NeedsVoid())

	cod := newPendingOrder(t, order.CashOnDelivery{})
	assert.False(t, cod.NeedsVoid())
}

func TestOrder_VoidPayment(t *testing.T) {
	t.Run("open authorization is marked voided and can no longer be captured", func(t *testing.T) {
		o := newPendingOrder(t, order.CardMethod{MethodRef: "pm_1"})
		require.NoError(t, o.AttachIntent("pi_1", true, now))
		require.NoError(t, o.Cancel("changed my mind", now))

		require.NoError(t, o.VoidPayment(now))
		assert.True(t, o.IsVoided())
		assert.False(t, o.NeedsVoid())
		assert.Equal(t, order.PaymentFailed, o.Payment().Status)

		_, err := o.CapturePayment(now)
		require.ErrorIs(t, err, order.ErrInvalidPaymentTransition)
		assert.False(t, o.HasCapturedFunds())
	})

	t.Run("nothing to void without an authorization", func(t *testing.T) {
		o := newPendingOrder(t, order.CardMethod{MethodRef: "pm_1"})
		require.ErrorIs(t, o.VoidPayment(now), order.ErrInvalidPaymentTransition)
		assert.False(t, o.IsVoided())
	})

	t.Run("declined payment is not a void", func(t *testing.T) {
		o := newPendingOrder(t, order.CardMethod{MethodRef: "pm_1"})
		_, err := o.FailPayment("card_declined", now)
		require.NoError(t, err)
		assert.False(t, o.IsVoided())
	})
}
