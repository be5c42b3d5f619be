package commands

import (
	"context"
	"time"
)

// EventDeduper suppresses provider events that were already handled.
// Claim returns false when eventID was seen before.
type EventDeduper interface {
	Claim(ctx context.Context, eventID string) (bool, error)
	Forget(ctx context.Context, eventID string) error
}

type OrderOptions struct {
	Currency         string
	AuthorizeTimeout time.Duration
	VoidTimeout      time.Duration
	IdempotencyTTL   time.Duration
}

func (o OrderOptions) withDefaults() OrderOptions {
	if o.Currency == "" {
		o.Currency = "cad"
	}
	if o.AuthorizeTimeout <= 0 {
		o.AuthorizeTimeout = 10 * time.Second
	}
	if o.VoidTimeout <= 0 {
		o.VoidTimeout = 10 * time.Second
	}
	if o.IdempotencyTTL <= 0 {
		o.IdempotencyTTL = 24 * time.Hour
	}
	return o
}
