//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gin-order-service/internal/domain/order"
	"gin-order-service/internal/domain/payment"
	"gin-order-service/internal/domain/timeslot"
	"gin-order-service/internal/infra"
	"gin-order-service/internal/pkg/clock"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/pkg/ptr"
	"gin-order-service/internal/usecase/commands"
	"gin-order-service/internal/usecase/shared"
	"gin-order-service/tests/common/uowtest"
	commandsmock "gin-order-service/tests/mock/commands"
	paymentmock "gin-order-service/tests/mock/payment"
	sharedmock "gin-order-service/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentEventCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	timeslots *sharedmock.MockTimeslotRepository
	orders    *sharedmock.MockOrderRepository
	payments  *sharedmock.MockPaymentRepository
	stock     *sharedmock.MockStockRepository
	outbox    *sharedmock.MockOutboxRepository
	gateway   *paymentmock.MockGateway
	deduper   *commandsmock.MockEventDeduper

	uow *uowtest.UnitOfWork
}

func (s *PaymentEventCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.timeslots = sharedmock.NewMockTimeslotRepository(s.ctrl)
	s.orders = sharedmock.NewMockOrderRepository(s.ctrl)
	s.payments = sharedmock.NewMockPaymentRepository(s.ctrl)
	s.stock = sharedmock.NewMockStockRepository(s.ctrl)
	s.outbox = sharedmock.NewMockOutboxRepository(s.ctrl)
	s.gateway = paymentmock.NewMockGateway(s.ctrl)
	s.deduper = commandsmock.NewMockEventDeduper(s.ctrl)

	s.uow = uowtest.New(&uowtest.Tx{
		TimeslotRepo: s.timeslots,
		OrderRepo:    s.orders,
		PaymentRepo:  s.payments,
		StockRepo:    s.stock,
		OutboxRepo:   s.outbox,
	})
}

func (s *PaymentEventCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPaymentEventCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentEventCommandsTestSuite))
}

func (s *PaymentEventCommandsTestSuite) newCommands(deduper commands.EventDeduper) commands.PaymentEventCommands {
	return commands.NewPaymentEventCommands(s.uow, s.gateway, deduper, clock.NewMockClock(testNow))
}

// cardOrder returns a card order awaiting the provider outcome together with its payment row.
func cardOrder(status order.Status, payStatus order.PaymentStatus, intentID string) (*order.Order, *payment.Payment) {
	userID := uuid.New()
	items := []order.LineItem{
		{ProductID: uuid.New(), Name: "Eggs", UnitPrice: decimal.RequireFromString("6.00"), Quantity: 1},
	}
	amounts := order.Amounts{
		Subtotal: decimal.RequireFromString("6.00"),
		Delivery: decimal.RequireFromString("40.00"),
		Tax:      decimal.RequireFromString("0.78"),
		Discount: decimal.Zero,
		Total:    decimal.RequireFromString("46.78"),
	}
	o := order.Reconstruct(
		uuid.New(), userID, uuid.New(), uuid.New(),
		items,
		order.Delivery{Option: order.DeliveryStandard, Fee: amounts.Delivery, EstimatedAt: testNow.Add(24 * time.Hour)},
		amounts,
		order.Payment{
			Method:   order.CardMethod{CustomerRef: "cus_123", MethodRef: "pm_123"},
			Status:   payStatus,
			IntentID: ptr.Of(intentID),
		},
		status,
		nil, nil,
		testNow, testNow,
	)
	p := payment.Reconstruct(
		uuid.New(), userID, o.ID(),
		amounts.Total, "cad", intentID, "pm_123",
		payment.StatusPending, nil,
		testNow, testNow,
	)
	return o, p
}

func succeeded(intentID string) payment.Event {
	return payment.Event{ID: "evt_" + intentID, Type: payment.EventPaymentSucceeded, ProviderPaymentID: intentID}
}

func (s *PaymentEventCommandsTestSuite) TestHandlePaymentEvent() {
	ctx := context.Background()

	s.Run("success: applying the same success twice updates and publishes once", func() {
		s.SetupTest()
		o, p := cardOrder(order.StatusPending, order.PaymentAuthorized, "pi_ok")

		s.payments.EXPECT().FindByIntentForUpdate(gomock.Any(), "pi_ok").Return(p, nil).Times(2)
		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil).Times(2)
		s.payments.EXPECT().UpdateStatus(gomock.Any(), p).Return(nil).Times(1)
		s.orders.EXPECT().UpdateState(gomock.Any(), o).Return(nil).Times(1)
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, evt shared.OutboxEvent) error {
				s.Equal(shared.EventPaymentSucceeded, evt.Type)
				return nil
			}).Times(1)

		cmd := s.newCommands(nil)
		s.Require().NoError(cmd.HandlePaymentEvent(ctx, succeeded("pi_ok")))
		s.Require().NoError(cmd.HandlePaymentEvent(ctx, succeeded("pi_ok")))

		s.Equal(order.StatusConfirmed, o.Status())
		s.Equal(order.PaymentCaptured, o.Payment().Status)
		s.Equal(payment.StatusCompleted, p.Status())
		s.NotNil(o.Payment().PaidAt)
	})

	s.Run("success: failure cancels a pending order and gives back slot and stock", func() {
		s.SetupTest()
		o, p := cardOrder(order.StatusPending, order.PaymentPending, "pi_bad")
		start := testNow.Add(24 * time.Hour)
		slot := timeslot.Reconstruct(
			o.TimeslotID(), start, start.Add(2*time.Hour),
			timeslot.Capacity{MaxOrders: 5, CutoffHours: 2},
			start.Weekday(), false, nil, true,
			[]uuid.UUID{o.ID()},
			testNow, testNow,
		)

		s.payments.EXPECT().FindByIntentForUpdate(gomock.Any(), "pi_bad").Return(p, nil)
		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		s.payments.EXPECT().UpdateStatus(gomock.Any(), p).Return(nil)
		s.stock.EXPECT().Increment(gomock.Any(), o.Items()[0].ProductID, 1).Return(nil)
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), o.TimeslotID()).Return(slot, nil)
		s.timeslots.EXPECT().SaveRelease(gomock.Any(), slot, o.ID()).Return(nil)
		s.orders.EXPECT().UpdateState(gomock.Any(), o).Return(nil)
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, evt shared.OutboxEvent) error {
				s.Equal(shared.EventPaymentFailed, evt.Type)
				return nil
			})

		err := s.newCommands(nil).HandlePaymentEvent(ctx, payment.Event{
			ID:                "evt_bad",
			Type:              payment.EventPaymentFailed,
			ProviderPaymentID: "pi_bad",
			FailureReason:     "card_declined",
		})

		s.Require().NoError(err)
		s.Equal(order.StatusCancelled, o.Status())
		s.Equal(order.CancelReasonPaymentFailed, *o.CancelReason())
		s.Equal("card_declined", *o.Payment().FailureReason)
		s.Equal(0, slot.CurrentOrders())
	})

	s.Run("success: capture after customer cancellation is refunded", func() {
		s.SetupTest()
		o, p := cardOrder(order.StatusCancelled, order.PaymentPending, "pi_late")

		s.payments.EXPECT().FindByIntentForUpdate(gomock.Any(), "pi_late").Return(p, nil)
		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		s.payments.EXPECT().UpdateStatus(gomock.Any(), p).Return(nil)
		s.gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req payment.RefundRequest) (*payment.RefundResult, error) {
				s.Equal("pi_late", req.IntentID)
				s.Equal(int64(4678), req.AmountMinor)
				return &payment.RefundResult{RefundID: "re_late", AmountMinor: req.AmountMinor}, nil
			})
		s.orders.EXPECT().UpdateState(gomock.Any(), o).Return(nil)
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		s.Require().NoError(s.newCommands(nil).HandlePaymentEvent(ctx, succeeded("pi_late")))

		s.Equal(order.StatusCancelled, o.Status())
		s.Equal(order.PaymentRefunded, o.Payment().Status)
	})

	s.Run("success: success after failure is dropped without writes", func() {
		s.SetupTest()
		o, _ := cardOrder(order.StatusCancelled, order.PaymentFailed, "pi_conflict")
		p := payment.Reconstruct(uuid.New(), o.UserID(), o.ID(), o.Amounts().Total, "cad", "pi_conflict", "pm_123",
			payment.StatusFailed, ptr.Of("card_declined"), testNow, testNow)

		s.payments.EXPECT().FindByIntentForUpdate(gomock.Any(), "pi_conflict").Return(p, nil)
		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)

		err := s.newCommands(nil).HandlePaymentEvent(ctx, succeeded("pi_conflict"))

		s.NoError(err)
		s.Equal(1, s.uow.Rollbacks)
		s.Equal(payment.StatusFailed, p.Status())
	})

	s.Run("success: unknown payment intent is acknowledged", func() {
		s.SetupTest()
		s.payments.EXPECT().FindByIntentForUpdate(gomock.Any(), "pi_unknown").
			Return(nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound))

		err := s.newCommands(nil).HandlePaymentEvent(ctx, succeeded("pi_unknown"))

		s.NoError(err)
		s.Equal(1, s.uow.Rollbacks)
	})

	s.Run("success: unhandled event types are ignored", func() {
		s.SetupTest()

		err := s.newCommands(s.deduper).HandlePaymentEvent(ctx, payment.Event{ID: "evt_x", Type: "charge.dispute.created"})

		s.NoError(err)
		s.Equal(0, s.uow.Commits+s.uow.Rollbacks)
	})
}

func (s *PaymentEventCommandsTestSuite) TestDeduplication() {
	ctx := context.Background()

	s.Run("success: duplicate delivery is skipped", func() {
		s.SetupTest()
		s.deduper.EXPECT().Claim(gomock.Any(), "evt_pi_dup").Return(false, nil)

		err := s.newCommands(s.deduper).HandlePaymentEvent(ctx, succeeded("pi_dup"))

		s.NoError(err)
		s.Equal(0, s.uow.Commits+s.uow.Rollbacks)
	})

	s.Run("error: failed apply releases the claim for redelivery", func() {
		s.SetupTest()
		s.deduper.EXPECT().Claim(gomock.Any(), "evt_pi_retry").Return(true, nil)
		s.payments.EXPECT().FindByIntentForUpdate(gomock.Any(), "pi_retry").
			Return(nil, infra.WrapRepoErr("connection lost", errs.New("eof")))
		s.deduper.EXPECT().Forget(gomock.Any(), "evt_pi_retry").Return(nil)

		err := s.newCommands(s.deduper).HandlePaymentEvent(ctx, succeeded("pi_retry"))

		s.Error(err)
		s.True(infra.IsKind(err, infra.KindDBFailure))
	})

	s.Run("success: dedup store outage still applies the event", func() {
		s.SetupTest()
		o, p := cardOrder(order.StatusPending, order.PaymentAuthorized, "pi_redis")
		s.deduper.EXPECT().Claim(gomock.Any(), "evt_pi_redis").Return(false, errs.New("redis: connection refused"))
		s.payments.EXPECT().FindByIntentForUpdate(gomock.Any(), "pi_redis").Return(p, nil)
		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		s.payments.EXPECT().UpdateStatus(gomock.Any(), p).Return(nil)
		s.orders.EXPECT().UpdateState(gomock.Any(), o).Return(nil)
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		err := s.newCommands(s.deduper).HandlePaymentEvent(ctx, succeeded("pi_redis"))

		s.NoError(err)
		s.Equal(order.PaymentCaptured, o.Payment().Status)
	})
}

func (s *PaymentEventCommandsTestSuite) TestHandleWebhook() {
	ctx := context.Background()

	s.Run("error: bad signature", func() {
		s.SetupTest()
		s.gateway.EXPECT().ParseWebhook([]byte(`{}`), "t=1,v1=bad").
			Return(nil, errs.Mark(errs.New("signature mismatch"), payment.ErrInvalidSignature))

		err := s.newCommands(nil).HandleWebhook(ctx, []byte(`{}`), "t=1,v1=bad")

		s.True(errs.Is(err, errs.ErrInvalidWebhookSignature))
	})

	s.Run("error: malformed payload", func() {
		s.SetupTest()
		s.gateway.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(nil, errs.New("unexpected end of JSON input"))

		err := s.newCommands(nil).HandleWebhook(ctx, []byte(`{`), "sig")

		s.True(errs.Is(err, errs.ErrValidationFailed))
	})

	s.Run("success: verified event is applied", func() {
		s.SetupTest()
		o, p := cardOrder(order.StatusPending, order.PaymentAuthorized, "pi_hook")
		evt := succeeded("pi_hook")
		s.gateway.EXPECT().ParseWebhook(gomock.Any(), "sig").Return(&evt, nil)
		s.payments.EXPECT().FindByIntentForUpdate(gomock.Any(), "pi_hook").Return(p, nil)
		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		s.payments.EXPECT().UpdateStatus(gomock.Any(), p).Return(nil)
		s.orders.EXPECT().UpdateState(gomock.Any(), o).Return(nil)
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		s.Require().NoError(s.newCommands(nil).HandleWebhook(ctx, []byte(`{}`), "sig"))
		s.Equal(order.StatusConfirmed, o.Status())
	})
}
