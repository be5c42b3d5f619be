package paymentgw

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"gin-order-service/internal/domain/payment"
	"gin-order-service/internal/pkg/errs"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(secretKey, webhookSecret string) *StripeGateway {
	return &StripeGateway{
		api:           client.New(secretKey, nil),
		webhookSecret: webhookSecret,
	}
}

// Authorize confirms an off-session intent against the customer's saved card.
func (g *StripeGateway) Authorize(ctx context.Context, req payment.AuthorizeRequest) (*payment.Authorization, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountMinor),
		Currency:      stripe.String(req.Currency),
		Customer:      stripe.String(req.CustomerRef),
		PaymentMethod: stripe.String(req.MethodRef),
		OffSession:    stripe.Bool(true),
		Confirm:       stripe.Bool(true),
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.SetIdempotencyKey(req.IdempotencyKey)
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return nil, errs.Wrap(payment.ErrDeclined, stripeErr.Msg)
		}
		return nil, errs.Wrap(err, "stripe: create payment intent")
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded, stripe.PaymentIntentStatusRequiresCapture:
		return &payment.Authorization{IntentID: pi.ID, Status: payment.AuthorizationApproved}, nil
	case stripe.PaymentIntentStatusProcessing:
		return &payment.Authorization{IntentID: pi.ID, Status: payment.AuthorizationProcessing}, nil
	default:
		reason := string(pi.Status)
		if pi.LastPaymentError != nil && pi.LastPaymentError.Msg != "" {
			reason = pi.LastPaymentError.Msg
		}
		return nil, errs.Wrap(payment.ErrDeclined, reason)
	}
}

func (g *StripeGateway) Refund(ctx context.Context, req payment.RefundRequest) (*payment.RefundResult, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(req.IntentID),
		Amount:        stripe.Int64(req.AmountMinor),
		Reason:        stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
	}
	if req.Reason != "" {
		params.AddMetadata("reason", req.Reason)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	params.Context = ctx

	r, err := g.api.Refunds.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: create refund")
	}
	return &payment.RefundResult{RefundID: r.ID, AmountMinor: r.Amount}, nil
}

// Void cancels an uncaptured intent. Stripe rejects cancelling a succeeded intent, in which
// case the funds are refunded in full instead. Repeating Void on a cancelled or fully refunded
// intent is a no-op.
func (g *StripeGateway) Void(ctx context.Context, intentID string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx

	_, err := g.api.PaymentIntents.Cancel(intentID, params)
	if err == nil {
		return nil
	}

	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) || stripeErr.Code != stripe.ErrorCodePaymentIntentUnexpectedState {
		return errs.Wrap(err, "stripe: cancel payment intent")
	}
	if stripeErr.PaymentIntent != nil && stripeErr.PaymentIntent.Status == stripe.PaymentIntentStatusCanceled {
		return nil
	}

	slog.Info("payment intent already settled, refunding instead of void", "payment_intent_id", intentID)
	refundParams := &stripe.RefundParams{PaymentIntent: stripe.String(intentID)}
	refundParams.SetIdempotencyKey("void-" + intentID)
	refundParams.Context = ctx
	if _, rerr := g.api.Refunds.New(refundParams); rerr != nil {
		if errors.As(rerr, &stripeErr) && stripeErr.Code == stripe.ErrorCodeChargeAlreadyRefunded {
			return nil
		}
		return errs.Wrap(rerr, "stripe: refund after failed void")
	}
	return nil
}

func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*payment.Event, error) {
	evt, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "stripe: verify webhook"), payment.ErrInvalidSignature)
	}
	return eventFromStripe(evt.ID, string(evt.Type), evt.Data.Raw)
}

func eventFromStripe(id, eventType string, raw json.RawMessage) (*payment.Event, error) {
	out := &payment.Event{ID: id, Type: payment.EventType(eventType)}
	if out.Type != payment.EventPaymentSucceeded && out.Type != payment.EventPaymentFailed {
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(raw, &pi); err != nil {
		return nil, errs.Wrap(err, "decode payment intent")
	}
	out.ProviderPaymentID = pi.ID
	if pi.LastPaymentError != nil {
		out.FailureReason = pi.LastPaymentError.Msg
	}
	return out, nil
}
