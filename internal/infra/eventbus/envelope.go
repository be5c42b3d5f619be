package eventbus

import (
	"encoding/json"
	"time"
)

const EnvelopeVersion = 1

// Envelope wraps every message published to or consumed from Kafka.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// PaymentEventPayload is the payload of payment outcome envelopes.
type PaymentEventPayload struct {
	ProviderPaymentID string `json:"provider_payment_id"`
	FailureReason     string `json:"failure_reason,omitempty"`
}
