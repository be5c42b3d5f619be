//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gin-order-service/internal/domain/cart"
	"gin-order-service/internal/domain/order"
	"gin-order-service/internal/domain/payment"
	"gin-order-service/internal/domain/timeslot"
	reqdto "gin-order-service/internal/handler/dto/request"
	"gin-order-service/internal/infra"
	"gin-order-service/internal/pkg/clock"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/pkg/ptr"
	"gin-order-service/internal/usecase/commands"
	"gin-order-service/internal/usecase/queries"
	"gin-order-service/internal/usecase/shared"
	"gin-order-service/tests/common/uowtest"
	paymentmock "gin-order-service/tests/mock/payment"
	queriesmock "gin-order-service/tests/mock/queries"
	sharedmock "gin-order-service/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

type OrderCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	reads        *sharedmock.MockCommandReads
	timeslots    *sharedmock.MockTimeslotRepository
	orders       *sharedmock.MockOrderRepository
	payments     *sharedmock.MockPaymentRepository
	stock        *sharedmock.MockStockRepository
	carts        *sharedmock.MockCartRepository
	idempotency  *sharedmock.MockIdempotencyRepository
	outbox       *sharedmock.MockOutboxRepository
	gateway      *paymentmock.MockGateway
	orderQueries *queriesmock.MockOrderQueries

	uow        *uowtest.UnitOfWork
	calculator order.Calculator
	commands   commands.OrderCommands

	userID     uuid.UUID
	addressID  uuid.UUID
	slotID     uuid.UUID
	cartID     uuid.UUID
	productIDs []uuid.UUID
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.timeslots = sharedmock.NewMockTimeslotRepository(s.ctrl)
	s.orders = sharedmock.NewMockOrderRepository(s.ctrl)
	s.payments = sharedmock.NewMockPaymentRepository(s.ctrl)
	s.stock = sharedmock.NewMockStockRepository(s.ctrl)
	s.carts = sharedmock.NewMockCartRepository(s.ctrl)
	s.idempotency = sharedmock.NewMockIdempotencyRepository(s.ctrl)
	s.outbox = sharedmock.NewMockOutboxRepository(s.ctrl)
	s.gateway = paymentmock.NewMockGateway(s.ctrl)
	s.orderQueries = queriesmock.NewMockOrderQueries(s.ctrl)

	s.uow = uowtest.New(&uowtest.Tx{
		TimeslotRepo:    s.timeslots,
		OrderRepo:       s.orders,
		PaymentRepo:     s.payments,
		StockRepo:       s.stock,
		CartRepo:        s.carts,
		IdempotencyRepo: s.idempotency,
		OutboxRepo:      s.outbox,
		CommandReads:    s.reads,
	})
	s.calculator = order.NewDefaultCalculator(order.DefaultFeeTable(), decimal.RequireFromString("0.13"))
	s.commands = commands.NewOrderCommands(
		s.uow,
		s.gateway,
		s.calculator,
		s.orderQueries,
		clock.NewMockClock(testNow),
		commands.OrderOptions{Currency: "cad"},
	)

	s.userID = uuid.New()
	s.addressID = uuid.New()
	s.slotID = uuid.New()
	s.cartID = uuid.New()
	s.productIDs = []uuid.UUID{uuid.New(), uuid.New()}
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) placeRequest(method string) reqdto.PlaceOrderRequest {
	return reqdto.PlaceOrderRequest{
		AddressID:  s.addressID,
		TimeslotID: s.slotID,
		Delivery:   reqdto.DeliveryRequest{Option: "standard", Instructions: "leave at door"},
		Payment:    reqdto.PaymentRequest{Method: method},
	}
}

func (s *OrderCommandsTestSuite) cartSnapshot() *cart.Snapshot {
	return &cart.Snapshot{
		CartID: s.cartID,
		UserID: s.userID,
		Lines: []cart.Line{
			{ProductID: s.productIDs[0], Name: "Milk", UnitPrice: decimal.RequireFromString("4.50"), Quantity: 2, Available: true},
			{ProductID: s.productIDs[1], Name: "Bread", UnitPrice: decimal.RequireFromString("3.25"), Quantity: 1, Available: true},
		},
	}
}

func (s *OrderCommandsTestSuite) openSlot(currentOrders int) *timeslot.Timeslot {
	start := testNow.Add(24 * time.Hour)
	orderIDs := make([]uuid.UUID, 0, currentOrders)
	for range currentOrders {
		orderIDs = append(orderIDs, uuid.New())
	}
	return timeslot.Reconstruct(
		s.slotID,
		start, start.Add(2*time.Hour),
		timeslot.Capacity{MaxOrders: 2, BufferCapacity: 1, CutoffHours: 2},
		start.Weekday(), false, nil, true,
		orderIDs,
		testNow, testNow,
	)
}

func (s *OrderCommandsTestSuite) expectCheckout(method string) {
	user := &shared.UserSnapshot{ID: s.userID, Email: "shopper@example.com", Role: "customer", IsActive: true}
	if method == "card" {
		user.PaymentCustomerRef = ptr.Of("cus_123")
	}
	s.reads.EXPECT().UserByID(gomock.Any(), s.userID).Return(user, nil)
	s.reads.EXPECT().AddressBelongsTo(gomock.Any(), s.addressID, s.userID).Return(true, nil)
	s.reads.EXPECT().ActiveCart(gomock.Any(), s.userID).Return(s.cartSnapshot(), nil)
	if method == "card" {
		s.reads.EXPECT().DefaultPaymentMethod(gomock.Any(), s.userID).Return(&shared.PaymentMethodSnapshot{
			ID:                      uuid.New(),
			UserID:                  s.userID,
			ProviderPaymentMethodID: "pm_123",
			IsDefault:               true,
			IsActive:                true,
		}, nil)
	}
}

// expectPlacement covers every write up to and including the cart, in placement order.
func (s *OrderCommandsTestSuite) expectPlacement() {
	s.timeslots.EXPECT().FindForUpdate(gomock.Any(), s.slotID).Return(s.openSlot(0), nil)
	s.timeslots.EXPECT().SaveReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.stock.EXPECT().Decrement(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.carts.EXPECT().Complete(gomock.Any(), s.cartID, s.userID).Return(true, nil)
}

func orderView(id uuid.UUID, intentID *string) *queries.OrderView {
	return &queries.OrderView{ID: id, Status: "pending", PaymentIntentID: intentID}
}

// ================================================================================
// PlaceOrder
// ================================================================================

func (s *OrderCommandsTestSuite) TestPlaceOrder() {
	ctx := context.Background()

	s.Run("success: cash on delivery order is stored with an order.placed event", func() {
		s.SetupTest()
		s.expectCheckout("cod")
		s.expectPlacement()

		var enqueued shared.OutboxEvent
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, evt shared.OutboxEvent) error {
				enqueued = evt
				return nil
			})
		s.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
				return orderView(id, nil), nil
			})

		result, err := s.commands.PlaceOrder(ctx, s.placeRequest("cod"), s.userID, nil)

		s.Require().NoError(err)
		s.Nil(result.PaymentIntentID)
		s.False(result.IsReplayed)
		s.Equal(shared.EventOrderPlaced, enqueued.Type)
		s.Equal(result.Order.ID, enqueued.AggregateID)
		s.Equal(1, s.uow.Commits)
	})

	s.Run("success: card order records the authorization and returns the intent", func() {
		s.SetupTest()
		s.expectCheckout("card")
		s.expectPlacement()

		var authReq payment.AuthorizeRequest
		s.gateway.EXPECT().Authorize(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req payment.AuthorizeRequest) (*payment.Authorization, error) {
				authReq = req
				return &payment.Authorization{IntentID: "pi_123", Status: payment.AuthorizationApproved}, nil
			})
		s.orders.EXPECT().UpdateState(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *order.Order) error {
				s.Equal(order.PaymentAuthorized, o.Payment().Status)
				return nil
			})
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
		s.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
				return orderView(id, ptr.Of("pi_123")), nil
			})

		result, err := s.commands.PlaceOrder(ctx, s.placeRequest("card"), s.userID, nil)

		s.Require().NoError(err)
		s.Require().NotNil(result.PaymentIntentID)
		s.Equal("pi_123", *result.PaymentIntentID)
		s.Equal("cad", authReq.Currency)
		s.Equal("cus_123", authReq.CustomerRef)
		s.Equal("pm_123", authReq.MethodRef)
		s.Equal("order-"+result.Order.ID.String()+"-authorize", authReq.IdempotencyKey)
		// 2*4.50 + 3.25 = 12.25; +40.00 delivery; +1.59 tax
		s.Equal(int64(5384), authReq.AmountMinor)
	})

	s.Run("error: empty cart is rejected before any write or provider call", func() {
		s.SetupTest()
		s.reads.EXPECT().UserByID(gomock.Any(), s.userID).
			Return(&shared.UserSnapshot{ID: s.userID, IsActive: true}, nil)
		s.reads.EXPECT().AddressBelongsTo(gomock.Any(), s.addressID, s.userID).Return(true, nil)
		s.reads.EXPECT().ActiveCart(gomock.Any(), s.userID).
			Return(&cart.Snapshot{CartID: s.cartID, UserID: s.userID}, nil)

		result, err := s.commands.PlaceOrder(ctx, s.placeRequest("card"), s.userID, nil)

		s.Nil(result)
		s.True(errs.Is(err, errs.ErrEmptyCart))
		s.Equal(0, s.uow.Commits+s.uow.Rollbacks)
	})

	s.Run("error: address of another user", func() {
		s.SetupTest()
		s.reads.EXPECT().UserByID(gomock.Any(), s.userID).
			Return(&shared.UserSnapshot{ID: s.userID, IsActive: true}, nil)
		s.reads.EXPECT().AddressBelongsTo(gomock.Any(), s.addressID, s.userID).Return(false, nil)

		_, err := s.commands.PlaceOrder(ctx, s.placeRequest("cod"), s.userID, nil)

		s.True(errs.Is(err, errs.ErrAddressNotFound))
	})

	s.Run("error: card payment without a default method", func() {
		s.SetupTest()
		s.reads.EXPECT().UserByID(gomock.Any(), s.userID).
			Return(&shared.UserSnapshot{ID: s.userID, IsActive: true, PaymentCustomerRef: ptr.Of("cus_123")}, nil)
		s.reads.EXPECT().AddressBelongsTo(gomock.Any(), s.addressID, s.userID).Return(true, nil)
		s.reads.EXPECT().ActiveCart(gomock.Any(), s.userID).Return(s.cartSnapshot(), nil)
		s.reads.EXPECT().DefaultPaymentMethod(gomock.Any(), s.userID).
			Return(nil, infra.WrapRepoErr("no default payment method", nil, infra.KindNotFound))

		_, err := s.commands.PlaceOrder(ctx, s.placeRequest("card"), s.userID, nil)

		s.True(errs.Is(err, errs.ErrNoDefaultPaymentMethod))
	})

	s.Run("error: full timeslot stops placement before stock is touched", func() {
		s.SetupTest()
		s.expectCheckout("cod")
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), s.slotID).Return(s.openSlot(3), nil)

		_, err := s.commands.PlaceOrder(ctx, s.placeRequest("cod"), s.userID, nil)

		s.True(errs.Is(err, errs.ErrCapacityExceeded))
		s.Equal(1, s.uow.Rollbacks)
	})

	s.Run("error: out of stock product rolls back the reservation", func() {
		s.SetupTest()
		s.expectCheckout("cod")
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), s.slotID).Return(s.openSlot(0), nil)
		s.timeslots.EXPECT().SaveReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.stock.EXPECT().Decrement(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := s.commands.PlaceOrder(ctx, s.placeRequest("cod"), s.userID, nil)

		s.True(errs.Is(err, errs.ErrInsufficientStock))
		s.Equal(1, s.uow.Rollbacks)
	})

	s.Run("error: declined card rolls back without a void", func() {
		s.SetupTest()
		s.expectCheckout("card")
		s.expectPlacement()
		s.gateway.EXPECT().Authorize(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("card_declined"), payment.ErrDeclined))

		result, err := s.commands.PlaceOrder(ctx, s.placeRequest("card"), s.userID, nil)

		s.Nil(result)
		s.True(errs.Is(err, errs.ErrPaymentAuthorizationFailed))
		s.Equal(1, s.uow.Rollbacks)
		s.Equal(0, s.uow.Commits)
	})

	s.Run("error: failed commit voids the authorization", func() {
		s.SetupTest()
		s.uow.CommitErr = errs.Mark(errs.New("connection reset"), errs.ErrDatabaseOperationFailed)
		s.expectCheckout("card")
		s.expectPlacement()
		s.gateway.EXPECT().Authorize(gomock.Any(), gomock.Any()).
			Return(&payment.Authorization{IntentID: "pi_void", Status: payment.AuthorizationApproved}, nil)
		s.orders.EXPECT().UpdateState(gomock.Any(), gomock.Any()).Return(nil)
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
		s.gateway.EXPECT().Void(gomock.Any(), "pi_void").Return(nil).Times(1)

		_, err := s.commands.PlaceOrder(ctx, s.placeRequest("card"), s.userID, nil)

		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	s.Run("success: retry after checkout replays the order without reading the consumed cart", func() {
		s.SetupTest()
		key := uuid.New()
		keyMissing := infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)

		var (
			requestHash string
			placedID    uuid.UUID
		)
		s.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.userID).Return(nil, keyMissing)
		s.expectCheckout("cod")
		s.idempotency.EXPECT().TryInsert(gomock.Any(), key, s.userID, "POST /orders", gomock.Any(), testNow.Add(24*time.Hour)).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, _, hash string, _ time.Time) (bool, error) {
				requestHash = hash
				return true, nil
			})
		s.expectPlacement()
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
		s.idempotency.EXPECT().Complete(gomock.Any(), key, s.userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, orderID uuid.UUID) error {
				placedID = orderID
				return nil
			})
		s.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
				return orderView(id, nil), nil
			}).Times(2)

		first, err := s.commands.PlaceOrder(ctx, s.placeRequest("cod"), s.userID, &key)
		s.Require().NoError(err)
		s.False(first.IsReplayed)

		// the cart is completed now; ActiveCart has no further expectation
		s.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.userID).DoAndReturn(
			func(_ context.Context, _, _ uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Key:           key,
					UserID:        s.userID,
					Status:        shared.IdempotencyStatusCompleted,
					RequestHash:   requestHash,
					ResultOrderID: &placedID,
					ExpiresAt:     testNow.Add(time.Hour),
				}, nil
			})

		second, err := s.commands.PlaceOrder(ctx, s.placeRequest("cod"), s.userID, &key)

		s.Require().NoError(err)
		s.True(second.IsReplayed)
		s.Equal(first.Order.ID, second.Order.ID)
		s.Equal(1, s.uow.Commits)
	})

	s.Run("success: concurrent first attempt is replayed from inside the transaction", func() {
		s.SetupTest()
		key := uuid.New()
		storedID := uuid.New()

		var requestHash string
		s.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.userID).
			Return(nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound))
		s.expectCheckout("cod")
		s.idempotency.EXPECT().TryInsert(gomock.Any(), key, s.userID, "POST /orders", gomock.Any(), testNow.Add(24*time.Hour)).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, _, hash string, _ time.Time) (bool, error) {
				requestHash = hash
				return false, nil
			})
		s.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.userID).DoAndReturn(
			func(_ context.Context, _, _ uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Key:           key,
					UserID:        s.userID,
					Status:        shared.IdempotencyStatusCompleted,
					RequestHash:   requestHash,
					ResultOrderID: &storedID,
					ExpiresAt:     testNow.Add(time.Hour),
				}, nil
			})
		s.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), storedID).Return(orderView(storedID, nil), nil)

		result, err := s.commands.PlaceOrder(ctx, s.placeRequest("cod"), s.userID, &key)

		s.Require().NoError(err)
		s.True(result.IsReplayed)
		s.Equal(storedID, result.Order.ID)
	})

	s.Run("error: idempotency key reused with a different body", func() {
		s.SetupTest()
		key := uuid.New()
		s.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.userID).Return(&shared.IdempotencyRecord{
			Key:           key,
			UserID:        s.userID,
			Status:        shared.IdempotencyStatusCompleted,
			RequestHash:   "another-body",
			ResultOrderID: ptr.Of(uuid.New()),
			ExpiresAt:     testNow.Add(time.Hour),
		}, nil)

		_, err := s.commands.PlaceOrder(ctx, s.placeRequest("cod"), s.userID, &key)

		s.True(errs.Is(err, errs.ErrIdempotencyConflict))
		s.Equal(0, s.uow.Commits+s.uow.Rollbacks)
	})

	s.Run("error: idempotency key still processing", func() {
		s.SetupTest()
		key := uuid.New()

		var requestHash string
		s.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.userID).
			Return(nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound))
		s.expectCheckout("cod")
		s.idempotency.EXPECT().TryInsert(gomock.Any(), key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, _, hash string, _ time.Time) (bool, error) {
				requestHash = hash
				return false, nil
			})
		s.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.userID).DoAndReturn(
			func(_ context.Context, _, _ uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Key:         key,
					UserID:      s.userID,
					Status:      shared.IdempotencyStatusProcessing,
					RequestHash: requestHash,
					ExpiresAt:   testNow.Add(time.Hour),
				}, nil
			})

		_, err := s.commands.PlaceOrder(ctx, s.placeRequest("cod"), s.userID, &key)

		s.True(errs.Is(err, errs.ErrIdempotencyInProgress))
	})

	s.Run("error: key lookup failure stops before checkout", func() {
		s.SetupTest()
		key := uuid.New()
		s.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, s.userID).
			Return(nil, infra.WrapRepoErr("select idempotency key", errs.New("connection reset"), infra.KindDBFailure))

		_, err := s.commands.PlaceOrder(ctx, s.placeRequest("cod"), s.userID, &key)

		s.True(errs.Is(err, errs.ErrIdempotencyCheckFailed))
	})
}

// ================================================================================
// CancelOrder / RefundOrder / AdvanceStatus
// ================================================================================

func (s *OrderCommandsTestSuite) storedOrder(status order.Status, pay order.Payment) *order.Order {
	items := []order.LineItem{
		{ProductID: s.productIDs[0], Name: "Milk", UnitPrice: decimal.RequireFromString("4.50"), Quantity: 2},
		{ProductID: s.productIDs[1], Name: "Bread", UnitPrice: decimal.RequireFromString("3.25"), Quantity: 1},
	}
	amounts, err := s.calculator.Calculate(items, order.DeliveryStandard, decimal.Zero)
	s.Require().NoError(err)

	return order.Reconstruct(
		uuid.New(), s.userID, s.addressID, s.slotID,
		items,
		order.Delivery{Option: order.DeliveryStandard, Fee: amounts.Delivery, EstimatedAt: testNow.Add(24 * time.Hour)},
		amounts,
		pay,
		status,
		nil, nil,
		testNow, testNow,
	)
}

func (s *OrderCommandsTestSuite) TestCancelOrder() {
	ctx := context.Background()

	s.Run("success: pending order releases its slot and restocks", func() {
		s.SetupTest()
		o := s.storedOrder(order.StatusPending, order.Payment{Method: order.CashOnDelivery{}, Status: order.PaymentPending})
		slot := s.openSlot(0)
		_, err := slot.Reserve(o.ID(), testNow)
		s.Require().NoError(err)

		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		s.stock.EXPECT().Increment(gomock.Any(), s.productIDs[0], 2).Return(nil)
		s.stock.EXPECT().Increment(gomock.Any(), s.productIDs[1], 1).Return(nil)
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), s.slotID).Return(slot, nil)
		s.timeslots.EXPECT().SaveRelease(gomock.Any(), slot, o.ID()).Return(nil)
		s.orders.EXPECT().UpdateState(gomock.Any(), o).Return(nil)
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, evt shared.OutboxEvent) error {
				s.Equal(shared.EventOrderCancelled, evt.Type)
				return nil
			})
		s.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), o.ID()).Return(orderView(o.ID(), nil), nil)

		_, err = s.commands.CancelOrder(ctx, s.userID, o.ID(), "changed my mind")

		s.Require().NoError(err)
		s.Equal(order.StatusCancelled, o.Status())
		s.Equal(0, slot.CurrentOrders())
	})

	s.Run("success: authorized card is voided after commit", func() {
		s.SetupTest()
		o := s.storedOrder(order.StatusPending, order.Payment{
			Method:   order.CardMethod{CustomerRef: "cus_123", MethodRef: "pm_123"},
			Status:   order.PaymentAuthorized,
			IntentID: ptr.Of("pi_hold"),
		})

		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		s.stock.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), s.slotID).Return(s.openSlot(0), nil)
		s.orders.EXPECT().UpdateState(gomock.Any(), o).Return(nil)
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
		s.gateway.EXPECT().Void(gomock.Any(), "pi_hold").Return(nil)
		s.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), o.ID()).Return(orderView(o.ID(), nil), nil)

		_, err := s.commands.CancelOrder(ctx, s.userID, o.ID(), "")

		s.Require().NoError(err)
		s.Equal(order.PaymentFailed, o.Payment().Status)
		s.True(o.IsVoided())
	})

	s.Run("success: charge settling after a voided cancellation is released, not refunded", func() {
		s.SetupTest()
		o := s.storedOrder(order.StatusPending, order.Payment{
			Method:   order.CardMethod{CustomerRef: "cus_123", MethodRef: "pm_123"},
			Status:   order.PaymentAuthorized,
			IntentID: ptr.Of("pi_voided"),
		})
		p := payment.Reconstruct(
			uuid.New(), s.userID, o.ID(),
			o.Amounts().Total, "cad", "pi_voided", "pm_123",
			payment.StatusPending, nil,
			testNow, testNow,
		)

		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil).Times(2)
		s.stock.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), s.slotID).Return(s.openSlot(0), nil)
		s.orders.EXPECT().UpdateState(gomock.Any(), o).Return(nil)
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
		s.gateway.EXPECT().Void(gomock.Any(), "pi_voided").Return(nil).Times(2)
		s.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), o.ID()).Return(orderView(o.ID(), nil), nil)

		_, err := s.commands.CancelOrder(ctx, s.userID, o.ID(), "")
		s.Require().NoError(err)

		s.payments.EXPECT().FindByIntentForUpdate(gomock.Any(), "pi_voided").Return(p, nil)
		s.payments.EXPECT().UpdateStatus(gomock.Any(), p).Return(nil)
		reconciler := commands.NewPaymentEventCommands(s.uow, s.gateway, nil, clock.NewMockClock(testNow))

		err = reconciler.HandlePaymentEvent(ctx, payment.Event{
			ID:                "evt_late",
			Type:              payment.EventPaymentSucceeded,
			ProviderPaymentID: "pi_voided",
		})

		s.Require().NoError(err)
		s.Equal(order.StatusCancelled, o.Status())
		s.Equal(order.PaymentFailed, o.Payment().Status)
		s.Nil(o.Payment().RefundID)
		s.Equal(payment.StatusFailed, p.Status())
		s.Equal(2, s.uow.Commits)
	})

	s.Run("success: captured card is refunded in the same transaction", func() {
		s.SetupTest()
		o := s.storedOrder(order.StatusConfirmed, order.Payment{
			Method:   order.CardMethod{CustomerRef: "cus_123", MethodRef: "pm_123"},
			Status:   order.PaymentCaptured,
			IntentID: ptr.Of("pi_paid"),
		})

		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		s.stock.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		s.timeslots.EXPECT().FindForUpdate(gomock.Any(), s.slotID).Return(s.openSlot(0), nil)
		s.gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req payment.RefundRequest) (*payment.RefundResult, error) {
				s.Equal("pi_paid", req.IntentID)
				s.Equal(o.Amounts().MinorUnits(), req.AmountMinor)
				return &payment.RefundResult{RefundID: "re_1", AmountMinor: req.AmountMinor}, nil
			})
		s.orders.EXPECT().UpdateState(gomock.Any(), o).Return(nil)
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
		s.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), o.ID()).Return(orderView(o.ID(), nil), nil)

		_, err := s.commands.CancelOrder(ctx, s.userID, o.ID(), "duplicate")

		s.Require().NoError(err)
		s.Equal(order.PaymentRefunded, o.Payment().Status)
		s.Equal(order.StatusCancelled, o.Status())
	})

	s.Run("error: delivered order cannot be cancelled", func() {
		s.SetupTest()
		o := s.storedOrder(order.StatusDelivered, order.Payment{Method: order.CashOnDelivery{}, Status: order.PaymentCaptured})
		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)

		_, err := s.commands.CancelOrder(ctx, s.userID, o.ID(), "")

		s.True(errs.Is(err, errs.ErrInvalidStateTransition))
		s.Equal(order.StatusDelivered, o.Status())
	})

	s.Run("error: order of another customer looks missing", func() {
		s.SetupTest()
		o := s.storedOrder(order.StatusPending, order.Payment{Method: order.CashOnDelivery{}, Status: order.PaymentPending})
		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)

		_, err := s.commands.CancelOrder(ctx, uuid.New(), o.ID(), "")

		s.True(errs.Is(err, errs.ErrOrderNotFound))
	})

	s.Run("error: unknown order", func() {
		s.SetupTest()
		id := uuid.New()
		s.orders.EXPECT().FindForUpdate(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		_, err := s.commands.CancelOrder(ctx, s.userID, id, "")

		s.True(errs.Is(err, errs.ErrOrderNotFound))
	})
}

func (s *OrderCommandsTestSuite) TestRefundOrder() {
	ctx := context.Background()

	s.Run("success: delivered captured order is refunded", func() {
		s.SetupTest()
		o := s.storedOrder(order.StatusDelivered, order.Payment{
			Method:   order.CardMethod{CustomerRef: "cus_123", MethodRef: "pm_123"},
			Status:   order.PaymentCaptured,
			IntentID: ptr.Of("pi_paid"),
		})
		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		s.gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).
			Return(&payment.RefundResult{RefundID: "re_2"}, nil)
		s.orders.EXPECT().UpdateState(gomock.Any(), o).Return(nil)
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
		s.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), o.ID()).Return(orderView(o.ID(), nil), nil)

		_, err := s.commands.RefundOrder(ctx, o.ID(), "damaged")

		s.Require().NoError(err)
		s.Equal(order.StatusRefunded, o.Status())
		s.Equal("re_2", *o.Payment().RefundID)
	})

	s.Run("error: provider refund failure leaves the order delivered", func() {
		s.SetupTest()
		o := s.storedOrder(order.StatusDelivered, order.Payment{
			Method:   order.CardMethod{CustomerRef: "cus_123", MethodRef: "pm_123"},
			Status:   order.PaymentCaptured,
			IntentID: ptr.Of("pi_paid"),
		})
		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		s.gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil, errs.New("provider unavailable"))

		_, err := s.commands.RefundOrder(ctx, o.ID(), "damaged")

		s.True(errs.Is(err, errs.ErrRefundFailed))
		s.Equal(order.StatusDelivered, o.Status())
	})

	s.Run("error: order not yet delivered", func() {
		s.SetupTest()
		o := s.storedOrder(order.StatusProcessing, order.Payment{Method: order.CashOnDelivery{}, Status: order.PaymentPending})
		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)

		_, err := s.commands.RefundOrder(ctx, o.ID(), "damaged")

		s.True(errs.Is(err, errs.ErrInvalidStateTransition))
	})
}

func (s *OrderCommandsTestSuite) TestAdvanceStatus() {
	ctx := context.Background()

	s.Run("success: confirmed moves to processing", func() {
		s.SetupTest()
		o := s.storedOrder(order.StatusConfirmed, order.Payment{Method: order.CashOnDelivery{}, Status: order.PaymentPending})
		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)
		s.orders.EXPECT().UpdateState(gomock.Any(), o).Return(nil)
		s.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, evt shared.OutboxEvent) error {
				s.Equal(shared.EventOrderStatusChange, evt.Type)
				return nil
			})
		s.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), o.ID()).Return(orderView(o.ID(), nil), nil)

		_, err := s.commands.AdvanceStatus(ctx, o.ID(), reqdto.AdvanceStatusRequest{Status: "processing"})

		s.Require().NoError(err)
		s.Equal(order.StatusProcessing, o.Status())
	})

	s.Run("error: skipping a step", func() {
		s.SetupTest()
		o := s.storedOrder(order.StatusConfirmed, order.Payment{Method: order.CashOnDelivery{}, Status: order.PaymentPending})
		s.orders.EXPECT().FindForUpdate(gomock.Any(), o.ID()).Return(o, nil)

		_, err := s.commands.AdvanceStatus(ctx, o.ID(), reqdto.AdvanceStatusRequest{Status: "delivered"})

		s.True(errs.Is(err, errs.ErrInvalidStateTransition))
	})

	s.Run("error: unknown status", func() {
		s.SetupTest()

		_, err := s.commands.AdvanceStatus(ctx, uuid.New(), reqdto.AdvanceStatusRequest{Status: "teleported"})

		s.True(errs.Is(err, errs.ErrValidationFailed))
	})
}
