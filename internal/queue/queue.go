// Package queue provides at-least-once queues with visibility timeouts and batch
// delivery, backed by Kafka topics or by memory.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
)

// Message is one delivery. Attempt starts at 1 and grows with every redelivery.
type Message struct {
	ID      string
	Key     string
	Body    []byte
	Attempt int

	handle any
}

// Queue is the contract both backends satisfy.
type Queue interface {
	Send(ctx context.Context, key string, body []byte) error
	// Receive blocks until at least one message is available, the wait time elapses
	// or ctx is done, and returns up to max messages.
	Receive(ctx context.Context, max int) ([]Message, error)
	// Ack removes delivered messages for good.
	Ack(ctx context.Context, msgs ...Message) error
	// Nack leaves msg for redelivery once its visibility timeout expires, or dead-letters
	// it when the receive limit is reached.
	Nack(ctx context.Context, msg Message, cause error) error
	Close() error
}

// Sender is the producer half of a Queue.
type Sender interface {
	Send(ctx context.Context, key string, body []byte) error
}

// SendJSON marshals v and sends it keyed by key.
func SendJSON(ctx context.Context, q Sender, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal queue message: %w", err)
	}
	return q.Send(ctx, key, body)
}
