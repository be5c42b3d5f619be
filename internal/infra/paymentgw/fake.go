package paymentgw

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"gin-order-service/internal/domain/payment"
	"gin-order-service/internal/pkg/errs"

	"github.com/google/uuid"
)

type FakeIntent struct {
	ID          string
	AmountMinor int64
	Status      string
	RefundedMin int64
}

// FakeGateway keeps intents in memory. Any customer or method reference containing
// "decline" is refused, and "processing" leaves the intent pending.
type FakeGateway struct {
	mu      sync.Mutex
	intents map[string]*FakeIntent
	byKey   map[string]string
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{
		intents: make(map[string]*FakeIntent),
		byKey:   make(map[string]string),
	}
}

func (g *FakeGateway) Authorize(ctx context.Context, req payment.AuthorizeRequest) (*payment.Authorization, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.Contains(req.CustomerRef, "decline") || strings.Contains(req.MethodRef, "decline") {
		return nil, errs.Wrap(payment.ErrDeclined, "Your card was declined.")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.byKey[req.IdempotencyKey]; ok && req.IdempotencyKey != "" {
		return &payment.Authorization{IntentID: id, Status: statusOf(g.intents[id])}, nil
	}

	intent := &FakeIntent{ID: "pi_" + uuid.NewString(), AmountMinor: req.AmountMinor, Status: "requires_capture"}
	if strings.Contains(req.MethodRef, "processing") {
		intent.Status = "processing"
	}
	g.intents[intent.ID] = intent
	if req.IdempotencyKey != "" {
		g.byKey[req.IdempotencyKey] = intent.ID
	}
	return &payment.Authorization{IntentID: intent.ID, Status: statusOf(intent)}, nil
}

func (g *FakeGateway) Refund(ctx context.Context, req payment.RefundRequest) (*payment.RefundResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	intent, ok := g.intents[req.IntentID]
	if !ok {
		return nil, errs.Newf("fake: no such payment intent %s", req.IntentID)
	}
	intent.RefundedMin += req.AmountMinor
	intent.Status = "refunded"
	return &payment.RefundResult{RefundID: "re_" + uuid.NewString(), AmountMinor: req.AmountMinor}, nil
}

func (g *FakeGateway) Void(ctx context.Context, intentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	intent, ok := g.intents[intentID]
	if !ok {
		return errs.Newf("fake: no such payment intent %s", intentID)
	}
	intent.Status = "canceled"
	return nil
}

// ParseWebhook accepts Stripe-shaped events without checking the signature.
func (g *FakeGateway) ParseWebhook(payload []byte, _ string) (*payment.Event, error) {
	var evt struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Data struct {
			Object json.RawMessage `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "fake: decode webhook"), payment.ErrInvalidSignature)
	}
	return eventFromStripe(evt.ID, evt.Type, evt.Data.Object)
}

// Intent returns a copy of the stored intent for assertions.
func (g *FakeGateway) Intent(id string) (FakeIntent, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	intent, ok := g.intents[id]
	if !ok {
		return FakeIntent{}, false
	}
	return *intent, true
}

func statusOf(intent *FakeIntent) payment.AuthorizationStatus {
	if intent.Status == "processing" {
		return payment.AuthorizationProcessing
	}
	return payment.AuthorizationApproved
}
