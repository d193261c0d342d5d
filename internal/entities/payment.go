package entities

import (
	"encoding/json"
	"time"
)

// EventType tags entries in the append-only payment event log.
type EventType string

const (
	EventSessionCreated   EventType = "session-created"
	EventCallbackReceived EventType = "callback-received"
	EventCallbackRejected EventType = "callback-rejected"
	EventStatusChecked    EventType = "status-checked"
	EventCaptureAttempted EventType = "capture-attempted"
	EventCaptureSucceeded EventType = "capture-succeeded"
	EventCaptureFailed    EventType = "capture-failed"
	EventCancelled        EventType = "cancelled"
	EventRefunded         EventType = "refunded"
)

// PaymentEvent is one ledger entry for an order. Events are never mutated or
// deleted; the most recent event is the current known provider state.
type PaymentEvent struct {
	ID            int64
	OrderRef      string
	EventType     EventType
	Status        string
	TransactionID string
	Amount        *int64
	Payload       json.RawMessage
	CreatedAt     time.Time
}

// ProviderState is the normalized payment state reported by the provider.
type ProviderState string

const (
	ProviderStateInitiated  ProviderState = "INITIATED"
	ProviderStateAuthorized ProviderState = "AUTHORIZED"
	ProviderStateCaptured   ProviderState = "CAPTURED"
	ProviderStateFailed     ProviderState = "FAILED"
	ProviderStateCancelled  ProviderState = "CANCELLED"
	ProviderStateTerminated ProviderState = "TERMINATED"
	ProviderStateUnknown    ProviderState = "UNKNOWN"
)

// PaymentState is the authoritative provider-side view of a payment.
// AuthorizedAmount is nil when the provider response carried no usable
// amount in any of its known shapes.
type PaymentState struct {
	State            ProviderState
	AuthorizedAmount *int64
	Raw              json.RawMessage
}

// StatusChange is published to downstream consumers whenever reconciliation
// or an explicit action moves an order to a new status.
type StatusChange struct {
	Reference string      `json:"reference"`
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	Amount    int64       `json:"amount"`
	Currency  string      `json:"currency"`
	Trigger   string      `json:"trigger"`
	At        time.Time   `json:"at"`
}
