package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/queue"
)

// QueueBus publishes domain events onto a queue that the router consumes.
type QueueBus struct {
	sender queue.Sender
}

func NewQueueBus(sender queue.Sender) *QueueBus {
	return &QueueBus{sender: sender}
}

func (b *QueueBus) Publish(ctx context.Context, event models.DomainEvent) error {
	if err := queue.SendJSON(ctx, b.sender, event.Detail.PaymentID, event); err != nil {
		return fmt.Errorf("publish %s event: %w", event.DetailType, err)
	}
	return nil
}

// PaymentProcessed wraps a canonical event in a "Payment Processed" envelope.
func PaymentProcessed(event models.PaymentEvent, now time.Time) models.DomainEvent {
	return models.DomainEvent{
		ID:         uuid.NewString(),
		Source:     models.ProcessorEventSource,
		DetailType: models.PaymentProcessedDetailType,
		Time:       now.UTC(),
		Detail:     event,
	}
}

func Decode(body []byte) (models.DomainEvent, error) {
	var event models.DomainEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return models.DomainEvent{}, fmt.Errorf("error parsing domain event: %w", err)
	}
	return event, nil
}
