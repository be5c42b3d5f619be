package commands

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"slices"

	"gin-order-service/internal/domain/cart"
	"gin-order-service/internal/domain/coupon"
	"gin-order-service/internal/domain/order"
	"gin-order-service/internal/domain/payment"
	reqdto "gin-order-service/internal/handler/dto/request"
	"gin-order-service/internal/infra"
	"gin-order-service/internal/pkg/clock"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/usecase/queries"
	"gin-order-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const placeOrderEndpoint = "POST /orders"

type PlaceOrderResult struct {
	Order           *queries.OrderView
	PaymentIntentID *string
	IsReplayed      bool
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, req reqdto.PlaceOrderRequest, userID uuid.UUID, idempotencyKey *uuid.UUID) (*PlaceOrderResult, error)
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID, reason string) (*queries.OrderView, error)
	RefundOrder(ctx context.Context, orderID uuid.UUID, reason string) (*queries.OrderView, error)
	AdvanceStatus(ctx context.Context, orderID uuid.UUID, req reqdto.AdvanceStatusRequest) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	uow          shared.UnitOfWork
	gateway      payment.Gateway
	calculator   order.Calculator
	orderQueries queries.OrderQueries
	clock        clock.Clock
	opts         OrderOptions
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	gateway payment.Gateway,
	calculator order.Calculator,
	orderQueries queries.OrderQueries,
	clk clock.Clock,
	opts OrderOptions,
) OrderCommands {
	return &orderCommandsImpl{
		uow:          uow,
		gateway:      gateway,
		calculator:   calculator,
		orderQueries: orderQueries,
		clock:        clk,
		opts:         opts.withDefaults(),
	}
}

// checkout is everything PlaceOrder resolves before opening the order transaction.
type checkout struct {
	input   reqdto.PlaceOrderInput
	cart    *cart.Snapshot
	items   []order.LineItem
	method  order.PaymentMethod
	amounts order.Amounts
}

func (c *orderCommandsImpl) PlaceOrder(
	ctx context.Context,
	req reqdto.PlaceOrderRequest,
	userID uuid.UUID,
	idempotencyKey *uuid.UUID,
) (*PlaceOrderResult, error) {
	input, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	requestHash := c.calculateRequestHash(req)
	if idempotencyKey != nil {
		storedID, err := c.lookupIdempotencyKey(ctx, *idempotencyKey, userID, requestHash)
		if err != nil {
			return nil, err
		}
		if storedID != nil {
			return c.replay(ctx, *storedID)
		}
	}

	co, err := c.prepareCheckout(ctx, input, userID)
	if err != nil {
		return nil, err
	}

	orderID := uuid.New()

	var (
		authorization *payment.Authorization
		replayedID    *uuid.UUID
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayedID = nil
		if idempotencyKey != nil {
			existing, err := c.claimIdempotencyKey(ctx, tx, *idempotencyKey, userID, requestHash)
			if err != nil {
				return err
			}
			if existing != nil {
				replayedID = existing
				return nil
			}
		}

		authz, err := c.placeInTx(ctx, tx, co, orderID, userID)
		if authz != nil {
			authorization = authz
		}
		if err != nil {
			return err
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().Complete(ctx, *idempotencyKey, userID, orderID); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		if authorization != nil {
			c.voidAuthorization(ctx, authorization.IntentID, orderID)
		}
		return nil, err
	}

	if replayedID != nil {
		return c.replay(ctx, *replayedID)
	}

	slog.Info("order placed",
		"order_id", orderID,
		"user_id", userID,
		"timeslot_id", co.input.TimeslotID,
		"payment_method", co.method.Kind().String(),
		"total", co.amounts.Total.StringFixed(2))

	view, err := c.orderQueries.GetByIDSystem(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := &PlaceOrderResult{Order: view}
	if authorization != nil {
		intentID := authorization.IntentID
		result.PaymentIntentID = &intentID
	}
	return result, nil
}

// placeInTx reserves, decrements, persists and authorizes in that order. The returned
// authorization is non-nil whenever the provider accepted the charge, even if a later step failed.
func (c *orderCommandsImpl) placeInTx(
	ctx context.Context,
	tx shared.Tx,
	co *checkout,
	orderID, userID uuid.UUID,
) (*payment.Authorization, error) {
	if _, err := reserveSlot(ctx, tx, co.input.TimeslotID, orderID, c.clock); err != nil {
		return nil, err
	}

	if err := decrementStock(ctx, tx, co.items); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	o, err := order.NewOrder(order.NewOrderParams{
		ID:           orderID,
		UserID:       userID,
		AddressID:    co.input.AddressID,
		TimeslotID:   co.input.TimeslotID,
		Items:        co.items,
		Option:       co.input.Option,
		Instructions: co.input.Instructions,
		Amounts:      co.amounts,
		Method:       co.method,
		PromoCode:    co.input.PromoCode,
	}, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	if err := tx.Orders().Create(ctx, o); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	completed, err := tx.Carts().Complete(ctx, co.cart.CartID, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !completed {
		// another checkout consumed the cart first
		return nil, errs.WithDetail(errs.ErrEmptyCart, "cart_id="+co.cart.CartID.String())
	}

	var authorization *payment.Authorization
	if card, ok := co.method.(order.CardMethod); ok {
		authorization, err = c.authorize(ctx, o, card)
		if err != nil {
			return nil, err
		}
		if err := c.recordAuthorization(ctx, tx, o, card, authorization); err != nil {
			return authorization, err
		}
	}

	evt, err := shared.NewOrderEvent(shared.EventOrderPlaced, o, "", now)
	if err != nil {
		return authorization, errs.Wrap(err, "encode order.placed event")
	}
	if err := tx.Outbox().Enqueue(ctx, evt); err != nil {
		return authorization, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return authorization, nil
}

func (c *orderCommandsImpl) authorize(ctx context.Context, o *order.Order, card order.CardMethod) (*payment.Authorization, error) {
	authCtx, cancel := context.WithTimeout(ctx, c.opts.AuthorizeTimeout)
	defer cancel()

	// the same key on every retry of the transaction, so the provider never charges twice
	authorization, err := c.gateway.Authorize(authCtx, payment.AuthorizeRequest{
		AmountMinor:    o.Amounts().MinorUnits(),
		Currency:       c.opts.Currency,
		CustomerRef:    card.CustomerRef,
		MethodRef:      card.MethodRef,
		IdempotencyKey: "order-" + o.ID().String() + "-authorize",
		Metadata:       map[string]string{"orderId": o.ID().String()},
	})
	if err != nil {
		slog.Warn("payment authorization failed", "order_id", o.ID(), "error", err.Error())
		return nil, errs.WithDetail(errs.Mark(err, errs.ErrPaymentAuthorizationFailed), "order_id="+o.ID().String())
	}
	return authorization, nil
}

func (c *orderCommandsImpl) recordAuthorization(
	ctx context.Context,
	tx shared.Tx,
	o *order.Order,
	card order.CardMethod,
	authorization *payment.Authorization,
) error {
	now := c.clock.Now()
	approved := authorization.Status == payment.AuthorizationApproved
	if err := o.AttachIntent(authorization.IntentID, approved, now); err != nil {
		return errs.Mark(err, errs.ErrInvalidStateTransition)
	}
	if err := tx.Orders().UpdateState(ctx, o); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	p, err := payment.NewPayment(o.UserID(), o.ID(), o.Amounts().Total, c.opts.Currency, authorization.IntentID, card.MethodRef, now)
	if err != nil {
		return errs.Mark(err, errs.ErrValidationFailed)
	}
	if err := tx.Payments().Create(ctx, p); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// voidAuthorization releases a hold whose order never committed. It runs on a fresh context
// because the request context may already be cancelled.
func (c *orderCommandsImpl) voidAuthorization(ctx context.Context, intentID string, orderID uuid.UUID) {
	voidCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.VoidTimeout)
	defer cancel()

	if err := c.gateway.Void(voidCtx, intentID); err != nil {
		slog.Error("failed to void payment authorization",
			"order_id", orderID,
			"payment_intent_id", intentID,
			"error", err.Error())
		return
	}
	slog.Info("voided payment authorization", "order_id", orderID, "payment_intent_id", intentID)
}

func (c *orderCommandsImpl) prepareCheckout(ctx context.Context, input reqdto.PlaceOrderInput, userID uuid.UUID) (*checkout, error) {
	reads := c.uow.CommandReads()

	u, err := reads.UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, errs.ErrUserInactive
	}

	owned, err := reads.AddressBelongsTo(ctx, input.AddressID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, errs.WithDetail(errs.ErrAddressNotFound, "address_id="+input.AddressID.String())
	}

	snapshot, err := reads.ActiveCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snapshot.IsEmpty() {
		return nil, errs.ErrEmptyCart
	}
	items, err := snapshot.LineItems()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInsufficientStock)
	}

	method, err := c.resolveMethod(ctx, reads, u, input.Method)
	if err != nil {
		return nil, err
	}

	amounts, err := c.calculator.Calculate(items, input.Option, decimal.Zero)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}
	if input.PromoCode != nil {
		discount, err := c.promoDiscount(ctx, reads, *input.PromoCode, amounts.Subtotal)
		if err != nil {
			return nil, err
		}
		amounts, err = c.calculator.Calculate(items, input.Option, discount)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrValidationFailed)
		}
	}

	return &checkout{
		input:   input,
		cart:    snapshot,
		items:   items,
		method:  method,
		amounts: amounts,
	}, nil
}

func (c *orderCommandsImpl) resolveMethod(
	ctx context.Context,
	reads shared.CommandReads,
	u *shared.UserSnapshot,
	kind order.MethodKind,
) (order.PaymentMethod, error) {
	if kind != order.MethodCard {
		return order.MethodFromKind(kind, "")
	}

	if u.PaymentCustomerRef == nil || *u.PaymentCustomerRef == "" {
		return nil, errs.ErrNoDefaultPaymentMethod
	}
	pm, err := reads.DefaultPaymentMethod(ctx, u.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNoDefaultPaymentMethod)
		}
		return nil, err
	}
	if !pm.IsActive {
		return nil, errs.ErrNoDefaultPaymentMethod
	}

	return order.CardMethod{
		CustomerRef: *u.PaymentCustomerRef,
		MethodRef:   pm.ProviderPaymentMethodID,
	}, nil
}

func (c *orderCommandsImpl) promoDiscount(ctx context.Context, reads shared.CommandReads, code string, subtotal decimal.Decimal) (decimal.Decimal, error) {
	snapshot, err := reads.CouponByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return decimal.Zero, errs.WithDetail(errs.Mark(err, errs.ErrInvalidPromo), "promo_code="+code)
		}
		return decimal.Zero, err
	}

	promo, err := coupon.NewCoupon(
		snapshot.ID,
		snapshot.Code,
		snapshot.AmountOff,
		snapshot.PercentOff,
		snapshot.ValidFrom,
		snapshot.ValidTo,
	)
	if err != nil {
		return decimal.Zero, errs.Mark(err, errs.ErrInvalidPromo)
	}
	if err := promo.ValidateUsage(c.clock.Now()); err != nil {
		return decimal.Zero, errs.WithDetail(errs.Mark(err, errs.ErrInvalidPromo), "promo_code="+code)
	}

	return promo.DiscountFor(subtotal), nil
}

func (c *orderCommandsImpl) replay(ctx context.Context, orderID uuid.UUID) (*PlaceOrderResult, error) {
	view, err := c.orderQueries.GetByIDSystem(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &PlaceOrderResult{Order: view, PaymentIntentID: view.PaymentIntentID, IsReplayed: true}, nil
}

// lookupIdempotencyKey answers a retry before the cart is read, since a completed checkout has
// already consumed the cart. Unknown and expired keys fall through to claimIdempotencyKey.
func (c *orderCommandsImpl) lookupIdempotencyKey(ctx context.Context, key, userID uuid.UUID, requestHash string) (*uuid.UUID, error) {
	existing, err := c.uow.CommandReads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if existing.IsExpired(c.clock.Now()) {
		return nil, nil
	}
	return storedOrderFor(existing, requestHash)
}

// claimIdempotencyKey returns the stored order id when the request is a replay. It must be the
// first statement of the transaction: a concurrent insert of the same key blocks until this
// transaction ends.
func (c *orderCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
) (*uuid.UUID, error) {
	now := c.clock.Now()
	expiresAt := now.Add(c.opts.IdempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, key, userID, placeOrderEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	if existing.IsExpired(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, key, userID, requestHash, expiresAt)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		if !claimed {
			return nil, errs.ErrIdempotencyInProgress
		}
		return nil, nil
	}

	return storedOrderFor(existing, requestHash)
}

// storedOrderFor resolves a live key: the stored order for a completed identical request,
// otherwise a conflict or in-progress error.
func storedOrderFor(existing *shared.IdempotencyRecord, requestHash string) (*uuid.UUID, error) {
	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyConflict
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultOrderID == nil {
			return nil, errs.Mark(errs.New("completed idempotency key has no order"), errs.ErrIdempotencyCheckFailed)
		}
		return existing.ResultOrderID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.Mark(errs.Newf("invalid idempotency key status %q", existing.Status), errs.ErrIdempotencyCheckFailed)
	}
}

func (c *orderCommandsImpl) CancelOrder(ctx context.Context, userID, orderID uuid.UUID, reason string) (*queries.OrderView, error) {
	var voidIntent string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		voidIntent = ""
		o, err := lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if !o.IsOwnedBy(userID) {
			return errs.WithDetail(errs.ErrOrderNotFound, "order_id="+orderID.String())
		}
		if !o.CanCancel() {
			return errs.WithDetail(errs.ErrInvalidStateTransition, "status="+o.Status().String())
		}

		if err := restoreStock(ctx, tx, o.Items()); err != nil {
			return err
		}
		if _, err := releaseSlot(ctx, tx, o.TimeslotID(), o.ID(), c.clock); err != nil {
			return err
		}

		now := c.clock.Now()
		needsRefund := o.HasCapturedFunds()
		needsVoid := o.NeedsVoid()
		if err := o.Cancel(reason, now); err != nil {
			return errs.Mark(err, errs.ErrInvalidStateTransition)
		}

		if needsRefund {
			res, err := refundPayment(ctx, c.gateway, o, reason)
			if err != nil {
				return err
			}
			if err := o.RecordRefund(res.RefundID, o.Amounts().Total, reason, now); err != nil {
				return errs.Mark(err, errs.ErrInvalidStateTransition)
			}
		}
		if needsVoid {
			// a late success event must see the release and not refund again
			if err := o.VoidPayment(now); err != nil {
				return errs.Mark(err, errs.ErrInvalidStateTransition)
			}
			voidIntent = *o.Payment().IntentID
		}

		return saveOrderEvent(ctx, tx, o, shared.EventOrderCancelled, reason, c.clock)
	})
	if err != nil {
		return nil, err
	}

	if voidIntent != "" {
		c.voidAuthorization(ctx, voidIntent, orderID)
	}

	slog.Info("order cancelled", "order_id", orderID, "user_id", userID)
	return c.orderQueries.GetByIDSystem(ctx, orderID)
}

// RefundOrder refunds the full total of a delivered order whose payment was captured.
func (c *orderCommandsImpl) RefundOrder(ctx context.Context, orderID uuid.UUID, reason string) (*queries.OrderView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if !o.CanRefund() {
			return errs.WithDetail(errs.ErrInvalidStateTransition, "status="+o.Status().String())
		}

		res, err := refundPayment(ctx, c.gateway, o, reason)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		if err := o.Refund(res.RefundID, o.Amounts().Total, reason, now); err != nil {
			return errs.Mark(err, errs.ErrInvalidStateTransition)
		}
		return saveOrderEvent(ctx, tx, o, shared.EventOrderRefunded, reason, c.clock)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order refunded", "order_id", orderID)
	return c.orderQueries.GetByIDSystem(ctx, orderID)
}

func (c *orderCommandsImpl) AdvanceStatus(ctx context.Context, orderID uuid.UUID, req reqdto.AdvanceStatusRequest) (*queries.OrderView, error) {
	next, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		if err := o.AdvanceTo(next, now); err != nil {
			return errs.WithDetail(errs.Mark(err, errs.ErrInvalidStateTransition), "status="+o.Status().String())
		}
		return saveOrderEvent(ctx, tx, o, shared.EventOrderStatusChange, "", c.clock)
	})
	if err != nil {
		return nil, err
	}

	return c.orderQueries.GetByIDSystem(ctx, orderID)
}

// refundPayment refunds the full order total at the provider.
func refundPayment(ctx context.Context, gateway payment.Gateway, o *order.Order, reason string) (*payment.RefundResult, error) {
	intentID := o.Payment().IntentID
	if intentID == nil {
		return nil, errs.WithDetail(errs.Mark(errs.New("order has no payment intent"), errs.ErrRefundFailed), "order_id="+o.ID().String())
	}

	res, err := gateway.Refund(ctx, payment.RefundRequest{
		IntentID:       *intentID,
		AmountMinor:    o.Amounts().MinorUnits(),
		Reason:         reason,
		IdempotencyKey: "order-" + o.ID().String() + "-refund",
	})
	if err != nil {
		slog.Error("refund failed", "order_id", o.ID(), "payment_intent_id", *intentID, "error", err.Error())
		return nil, errs.WithDetail(errs.Mark(err, errs.ErrRefundFailed), "order_id="+o.ID().String())
	}
	return res, nil
}

func (c *orderCommandsImpl) calculateRequestHash(req reqdto.PlaceOrderRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func lockOrder(ctx context.Context, tx shared.Tx, orderID uuid.UUID) (*order.Order, error) {
	o, err := tx.Orders().FindForUpdate(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithDetail(errs.Mark(err, errs.ErrOrderNotFound), "order_id="+orderID.String())
		}
		return nil, err
	}
	return o, nil
}

// byProductID gives every transaction the same row lock order on products.
func byProductID(items []order.LineItem) []order.LineItem {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b order.LineItem) int {
		return bytes.Compare(a.ProductID[:], b.ProductID[:])
	})
	return sorted
}

func decrementStock(ctx context.Context, tx shared.Tx, items []order.LineItem) error {
	for _, item := range byProductID(items) {
		ok, err := tx.Stock().Decrement(ctx, item.ProductID, item.Quantity)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !ok {
			return errs.WithDetail(errs.ErrInsufficientStock, "product_id="+item.ProductID.String())
		}
	}
	return nil
}

func restoreStock(ctx context.Context, tx shared.Tx, items []order.LineItem) error {
	for _, item := range byProductID(items) {
		if err := tx.Stock().Increment(ctx, item.ProductID, item.Quantity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}
