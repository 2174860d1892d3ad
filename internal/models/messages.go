package models

import (
	"encoding/json"
	"time"
)

const (
	PaymentProcessedDetailType = "Payment Processed"
	ProcessorEventSource       = "payments.webhook-processor"
)

// ProcessingMessage is what the receiver enqueues for the processor.
type ProcessingMessage struct {
	PaymentID string          `json:"paymentId"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// DomainEvent is the envelope published on the event bus.
type DomainEvent struct {
	ID         string       `json:"id"`
	Source     string       `json:"source"`
	DetailType string       `json:"detailType"`
	Time       time.Time    `json:"time"`
	Detail     PaymentEvent `json:"detail"`
}

type Alert struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	PaymentID string `json:"paymentId"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
	Error         string    `json:"error,omitempty"`
}
