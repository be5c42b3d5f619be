package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"

	"gin-order-service/internal/domain/payment"
	"gin-order-service/internal/pkg/errs"
)

// envelope event types accepted on the payment events topic, besides the provider's own names
var paymentEventTypes = map[string]payment.EventType{
	"payment.succeeded":                   payment.EventPaymentSucceeded,
	"payment.failed":                      payment.EventPaymentFailed,
	string(payment.EventPaymentSucceeded): payment.EventPaymentSucceeded,
	string(payment.EventPaymentFailed):    payment.EventPaymentFailed,
}

// PaymentEventHandler adapts payment outcome envelopes to apply. Unknown event types are
// acknowledged without being applied.
func PaymentEventHandler(apply func(ctx context.Context, evt payment.Event) error) Handler {
	return func(ctx context.Context, env Envelope) error {
		eventType, ok := paymentEventTypes[env.EventType]
		if !ok {
			slog.Debug("ignoring envelope", "event_id", env.EventID, "event_type", env.EventType)
			return nil
		}

		var payload PaymentEventPayload
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			slog.Error("undecodable payment event payload", "event_id", env.EventID, "error", err.Error())
			return nil
		}
		if payload.ProviderPaymentID == "" {
			slog.Error("payment event without provider payment id", "event_id", env.EventID)
			return nil
		}

		err := apply(ctx, payment.Event{
			ID:                env.EventID,
			Type:              eventType,
			ProviderPaymentID: payload.ProviderPaymentID,
			FailureReason:     payload.FailureReason,
		})
		if err != nil {
			return errs.Wrapf(err, "apply payment event %s", env.EventID)
		}
		return nil
	}
}
