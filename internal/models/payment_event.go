package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	StatusReceived  PaymentStatus = "received"
	StatusProcessed PaymentStatus = "processed"
	StatusFailed    PaymentStatus = "failed"

	DefaultProvider = "unknown"
	DefaultCurrency = "USD"
)

// PaymentEvent is the stored and canonical representation of one webhook delivery.
// (PaymentID, Timestamp) is the primary key; a later delivery of the same payment id
// gets its own row.
type PaymentEvent struct {
	PaymentID      string          `gorm:"primaryKey;column:payment_id" json:"paymentId"`
	Timestamp      int64           `gorm:"primaryKey;autoIncrement:false;column:timestamp_ms;index:idx_payment_events_provider_timestamp,priority:2" json:"timestamp"`
	Provider       string          `gorm:"not null;index:idx_payment_events_provider_timestamp,priority:1" json:"provider"`
	Amount         decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Currency       string          `gorm:"not null" json:"currency"`
	Status         PaymentStatus   `gorm:"not null" json:"status"`
	ProviderStatus string          `json:"providerStatus,omitempty"`
	RawPayload     datatypes.JSON  `json:"rawPayload,omitempty"`
	ProcessedAt    *int64          `json:"processedAt,omitempty"`
}

// MarshalJSON writes amount as a JSON number. Decoding goes through decimal, which
// accepts both numbers and quoted strings.
func (p PaymentEvent) MarshalJSON() ([]byte, error) {
	type event PaymentEvent
	return json.Marshal(struct {
		event
		Amount json.Number `json:"amount"`
	}{event: event(p), Amount: json.Number(p.Amount.String())})
}

func (PaymentEvent) TableName() string {
	return "payment_events"
}

// Key identifies a stored PaymentEvent.
type Key struct {
	PaymentID string
	Timestamp int64
}

func (p PaymentEvent) Key() Key {
	return Key{PaymentID: p.PaymentID, Timestamp: p.Timestamp}
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusReceived, StatusProcessed, StatusFailed:
		return true
	default:
		return false
	}
}
