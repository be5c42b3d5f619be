package commands

import (
	"context"
	"log/slog"

	"gin-order-service/internal/domain/order"
	"gin-order-service/internal/domain/payment"
	"gin-order-service/internal/infra"
	"gin-order-service/internal/pkg/clock"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/usecase/shared"
)

// errOutcomeDropped rolls back a reconciliation that must not be applied; callers treat it as success.
var errOutcomeDropped = errs.New("payment outcome dropped")

type PaymentEventCommands interface {
	// HandleWebhook verifies and applies a provider webhook delivery.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	HandlePaymentEvent(ctx context.Context, evt payment.Event) error
}

type paymentEventCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway payment.Gateway
	deduper EventDeduper
	clock   clock.Clock
}

// NewPaymentEventCommands accepts a nil deduper; every delivery is then applied, which is safe
// because applying an outcome twice is a no-op.
func NewPaymentEventCommands(uow shared.UnitOfWork, gateway payment.Gateway, deduper EventDeduper, clk clock.Clock) PaymentEventCommands {
	return &paymentEventCommandsImpl{
		uow:     uow,
		gateway: gateway,
		deduper: deduper,
		clock:   clk,
	}
}

func (c *paymentEventCommandsImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	evt, err := c.gateway.ParseWebhook(payload, signature)
	if err != nil {
		if errs.Is(err, payment.ErrInvalidSignature) {
			return errs.Mark(err, errs.ErrInvalidWebhookSignature)
		}
		return errs.Mark(err, errs.ErrValidationFailed)
	}
	return c.HandlePaymentEvent(ctx, *evt)
}

func (c *paymentEventCommandsImpl) HandlePaymentEvent(ctx context.Context, evt payment.Event) error {
	var apply func(ctx context.Context, evt payment.Event) error
	switch evt.Type {
	case payment.EventPaymentSucceeded:
		apply = c.onPaymentSucceeded
	case payment.EventPaymentFailed:
		apply = c.onPaymentFailed
	default:
		slog.Debug("ignoring payment event", "event_id", evt.ID, "event_type", string(evt.Type))
		return nil
	}

	claimed := c.claim(ctx, evt.ID)
	if claimed == claimDuplicate {
		slog.Info("duplicate payment event skipped", "event_id", evt.ID, "event_type", string(evt.Type))
		return nil
	}

	err := apply(ctx, evt)
	if errs.Is(err, errOutcomeDropped) {
		return nil
	}
	if err != nil && claimed == claimOwned {
		// let the provider's redelivery through
		if forgetErr := c.deduper.Forget(ctx, evt.ID); forgetErr != nil {
			slog.Warn("failed to release payment event dedup key", "event_id", evt.ID, "error", forgetErr.Error())
		}
	}
	return err
}

type claimResult int

const (
	claimOwned claimResult = iota
	claimDuplicate
	claimSkipped
)

func (c *paymentEventCommandsImpl) claim(ctx context.Context, eventID string) claimResult {
	if c.deduper == nil || eventID == "" {
		return claimSkipped
	}
	ok, err := c.deduper.Claim(ctx, eventID)
	if err != nil {
		slog.Warn("payment event dedup unavailable, applying anyway", "event_id", eventID, "error", err.Error())
		return claimSkipped
	}
	if !ok {
		return claimDuplicate
	}
	return claimOwned
}

func (c *paymentEventCommandsImpl) onPaymentSucceeded(ctx context.Context, evt payment.Event) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, o, err := c.lockPayment(ctx, tx, evt.ProviderPaymentID)
		if err != nil {
			return err
		}

		if o.IsVoided() {
			return c.releaseVoided(ctx, tx, p, o, evt)
		}

		now := c.clock.Now()
		paymentChanged, err := p.Complete(now)
		if err != nil {
			return dropConflict(evt, err)
		}
		orderChanged, err := o.CapturePayment(now)
		if err != nil {
			return dropConflict(evt, err)
		}

		if paymentChanged {
			if err := tx.Payments().UpdateStatus(ctx, p); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		if !orderChanged {
			return nil
		}

		// the customer cancelled while the charge was in flight
		if o.Status() == order.StatusCancelled && o.HasCapturedFunds() {
			res, err := refundPayment(ctx, c.gateway, o, "order_cancelled")
			if err != nil {
				return err
			}
			if err := o.RecordRefund(res.RefundID, o.Amounts().Total, "order_cancelled", now); err != nil {
				return errs.Mark(err, errs.ErrInvalidStateTransition)
			}
		}

		if err := saveOrderEvent(ctx, tx, o, shared.EventPaymentSucceeded, "", c.clock); err != nil {
			return err
		}

		slog.Info("payment captured", "order_id", o.ID(), "payment_intent_id", evt.ProviderPaymentID, "order_status", o.Status().String())
		return nil
	})
}

func (c *paymentEventCommandsImpl) onPaymentFailed(ctx context.Context, evt payment.Event) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, o, err := c.lockPayment(ctx, tx, evt.ProviderPaymentID)
		if err != nil {
			return err
		}

		reason := evt.FailureReason
		if reason == "" {
			reason = "payment_failed"
		}

		now := c.clock.Now()
		paymentChanged, err := p.Fail(reason, now)
		if err != nil {
			return dropConflict(evt, err)
		}
		wasOpen := o.CanCancel()
		orderChanged, err := o.FailPayment(reason, now)
		if err != nil {
			return dropConflict(evt, err)
		}

		if paymentChanged {
			if err := tx.Payments().UpdateStatus(ctx, p); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		if !orderChanged {
			return nil
		}

		if wasOpen && o.Status() == order.StatusCancelled {
			if err := restoreStock(ctx, tx, o.Items()); err != nil {
				return err
			}
			if _, err := releaseSlot(ctx, tx, o.TimeslotID(), o.ID(), c.clock); err != nil {
				return err
			}
		}

		if err := saveOrderEvent(ctx, tx, o, shared.EventPaymentFailed, reason, c.clock); err != nil {
			return err
		}

		slog.Info("payment failed", "order_id", o.ID(), "payment_intent_id", evt.ProviderPaymentID, "reason", reason)
		return nil
	})
}

// releaseVoided handles a charge that settled after the order was cancelled and its
// authorization voided. Void is idempotent at the provider, so repeating it never refunds twice.
func (c *paymentEventCommandsImpl) releaseVoided(
	ctx context.Context,
	tx shared.Tx,
	p *payment.Payment,
	o *order.Order,
	evt payment.Event,
) error {
	if err := c.gateway.Void(ctx, evt.ProviderPaymentID); err != nil {
		slog.Error("failed to release voided payment",
			"order_id", o.ID(),
			"payment_intent_id", evt.ProviderPaymentID,
			"error", err.Error())
		return errs.WithDetail(errs.Mark(err, errs.ErrRefundFailed), "order_id="+o.ID().String())
	}

	changed, err := p.Fail(order.PaymentFailureVoided, c.clock.Now())
	if err != nil {
		return dropConflict(evt, err)
	}
	if changed {
		if err := tx.Payments().UpdateStatus(ctx, p); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	slog.Info("payment settled after void, released again", "order_id", o.ID(), "payment_intent_id", evt.ProviderPaymentID)
	return nil
}

// lockPayment drops events for intents this service never created.
func (c *paymentEventCommandsImpl) lockPayment(ctx context.Context, tx shared.Tx, intentID string) (*payment.Payment, *order.Order, error) {
	p, err := tx.Payments().FindByIntentForUpdate(ctx, intentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("payment event for unknown payment", "payment_intent_id", intentID)
			return nil, nil, errs.Mark(errs.Mark(err, errs.ErrPaymentNotFound), errOutcomeDropped)
		}
		return nil, nil, err
	}

	o, err := lockOrder(ctx, tx, p.OrderID())
	if err != nil {
		return nil, nil, err
	}
	return p, o, nil
}

func dropConflict(evt payment.Event, err error) error {
	if errs.Is(err, payment.ErrConflictingOutcome) || errs.Is(err, order.ErrInvalidPaymentTransition) {
		slog.Warn("payment outcome conflicts with settled state",
			"event_id", evt.ID,
			"event_type", string(evt.Type),
			"payment_intent_id", evt.ProviderPaymentID)
		return errs.Mark(err, errOutcomeDropped)
	}
	return err
}

func saveOrderEvent(ctx context.Context, tx shared.Tx, o *order.Order, eventType, reason string, clk clock.Clock) error {
	if err := tx.Orders().UpdateState(ctx, o); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	evt, err := shared.NewOrderEvent(eventType, o, reason, clk.Now())
	if err != nil {
		return errs.Wrap(err, "encode "+eventType+" event")
	}
	if err := tx.Outbox().Enqueue(ctx, evt); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
