package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/eventbus"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/queue"
	"github.com/sirupsen/logrus"
)

type PaymentProcessor interface {
	Process(ctx context.Context, msg models.ProcessingMessage) (*models.PaymentEvent, error)
}

type PaymentNotifier interface {
	Notify(ctx context.Context, event models.PaymentEvent) error
}

type EventRouter interface {
	Route(ctx context.Context, event models.DomainEvent) error
}

// ProcessorHandler consumes the processing queue.
type ProcessorHandler struct {
	Processor PaymentProcessor
}

func NewProcessorHandler(p PaymentProcessor) *ProcessorHandler {
	return &ProcessorHandler{Processor: p}
}

func (h *ProcessorHandler) HandleBatch(ctx context.Context, batch []queue.Message) []error {
	return eachMessage(ctx, batch, func(ctx context.Context, body []byte) error {
		var msg models.ProcessingMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("%w: error parsing processing message: %w", models.ErrValidation, err)
		}
		_, err := h.Processor.Process(ctx, msg)
		return err
	})
}

// NotifierHandler consumes the notification queue.
type NotifierHandler struct {
	Notifier PaymentNotifier
}

func NewNotifierHandler(n PaymentNotifier) *NotifierHandler {
	return &NotifierHandler{Notifier: n}
}

func (h *NotifierHandler) HandleBatch(ctx context.Context, batch []queue.Message) []error {
	return eachMessage(ctx, batch, func(ctx context.Context, body []byte) error {
		var event models.PaymentEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return fmt.Errorf("%w: error parsing payment event: %w", models.ErrValidation, err)
		}
		return h.Notifier.Notify(ctx, event)
	})
}

// RouterHandler consumes bus events.
type RouterHandler struct {
	Router EventRouter
}

func NewRouterHandler(r EventRouter) *RouterHandler {
	return &RouterHandler{Router: r}
}

func (h *RouterHandler) HandleBatch(ctx context.Context, batch []queue.Message) []error {
	return eachMessage(ctx, batch, func(ctx context.Context, body []byte) error {
		event, err := eventbus.Decode(body)
		if err != nil {
			return fmt.Errorf("%w: %w", models.ErrValidation, err)
		}
		return h.Router.Route(ctx, event)
	})
}

// eachMessage runs fn for every message and collects outcomes aligned with batch.
// One failure never affects the rest of the batch.
func eachMessage(ctx context.Context, batch []queue.Message, fn func(context.Context, []byte) error) []error {
	results := make([]error, len(batch))
	for i, msg := range batch {
		if err := fn(ctx, msg.Body); err != nil {
			logrus.WithFields(logrus.Fields{"key": msg.Key, "attempt": msg.Attempt}).Errorf("Error handling message: %s", err.Error())
			results[i] = err
		}
	}
	return results
}
