package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
)

// PaymentEventRepo defines the durable store operations the pipeline needs.
// Implementations must treat (paymentId, timestamp) as the unique key.
type PaymentEventRepo interface {
	Create(ctx context.Context, event *models.PaymentEvent) error
	GetByKey(ctx context.Context, key models.Key) (*models.PaymentEvent, error)
	MarkProcessed(ctx context.Context, key models.Key, currency string, processedAt int64) (*models.PaymentEvent, error)
	ListByProvider(ctx context.Context, provider string, from, to int64, limit int) ([]models.PaymentEvent, error)
	DeleteReceived(ctx context.Context, key models.Key) error
}

// Archive stores raw payloads write-once. PutJSON returns ErrDuplicateKey when key
// already holds different bytes.
type Archive interface {
	PutJSON(ctx context.Context, key string, raw []byte) error
}

// Enqueuer sends a keyed message to a queue.
type Enqueuer interface {
	Send(ctx context.Context, key string, body []byte) error
}

// EventPublisher publishes domain events to the event bus.
type EventPublisher interface {
	Publish(ctx context.Context, event models.DomainEvent) error
}

// AlertChannel delivers composed alerts to operators.
type AlertChannel interface {
	Send(ctx context.Context, alert models.Alert) error
}

// wrapErr adds op context and marks failures caused by an exhausted invocation
// budget as transient.
func wrapErr(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil && !errors.Is(err, models.ErrTransient) {
		return fmt.Errorf("error %s: %w: %w", op, models.ErrTransient, err)
	}
	return fmt.Errorf("error %s: %w", op, err)
}
