package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/eventbus"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/logger"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/metrics"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/normalizer"
	"github.com/sirupsen/logrus"
)

// ProcessorService turns queued raw payloads into canonical events.
type ProcessorService struct {
	Repo          PaymentEventRepo
	Bus           EventPublisher
	Notifications Enqueuer
	Now           func() time.Time
}

func NewProcessorService(repo PaymentEventRepo, bus EventPublisher, notifications Enqueuer) *ProcessorService {
	return &ProcessorService{
		Repo:          repo,
		Bus:           bus,
		Notifications: notifications,
		Now:           time.Now,
	}
}

// Process normalizes one queued message, marks the stored record processed,
// publishes a "Payment Processed" event and forwards notification-worthy payments.
// Any error leaves the message for redelivery; every step is safe to repeat.
func (s *ProcessorService) Process(ctx context.Context, msg models.ProcessingMessage) (*models.PaymentEvent, error) {
	if msg.PaymentID == "" || msg.Timestamp == 0 {
		return nil, fmt.Errorf("%w: processing message without key", models.ErrValidation)
	}
	ctx = logger.WithFields(ctx, logrus.Fields{"payment_id": msg.PaymentID, "timestamp_ms": msg.Timestamp})
	log := logger.FromContext(ctx)

	payload, err := models.ParseWebhookPayload(msg.Payload)
	if err != nil {
		metrics.PaymentsProcessedTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("error parsing queued payload: %w", err)
	}

	now := s.Now()
	event := normalizer.Processed(msg, payload, now)

	stored, err := s.Repo.MarkProcessed(ctx, event.Key(), event.Currency, *event.ProcessedAt)
	if err != nil {
		metrics.PaymentsProcessedTotal.WithLabelValues("store_error").Inc()
		return nil, wrapErr(ctx, "updating payment event", err)
	}
	if stored != nil && stored.ProcessedAt != nil {
		event.ProcessedAt = stored.ProcessedAt
	}

	if err := s.Bus.Publish(ctx, eventbus.PaymentProcessed(event, now)); err != nil {
		metrics.PaymentsProcessedTotal.WithLabelValues("bus_error").Inc()
		return nil, wrapErr(ctx, "publishing payment processed event", err)
	}

	if normalizer.ShouldNotify(event.Amount, payload.Status()) {
		body, err := json.Marshal(event)
		if err != nil {
			return nil, wrapErr(ctx, "marshaling notification", err)
		}
		if err := s.Notifications.Send(ctx, event.PaymentID, body); err != nil {
			metrics.PaymentsProcessedTotal.WithLabelValues("notify_error").Inc()
			return nil, wrapErr(ctx, "enqueueing notification", err)
		}
		log.Info("payment forwarded for notification")
	}

	amount, _ := event.Amount.Float64()
	metrics.PaymentAmounts.WithLabelValues(event.Currency).Observe(amount)
	metrics.PaymentsProcessedTotal.WithLabelValues("processed").Inc()
	log.WithFields(logrus.Fields{"provider": event.Provider, "amount": event.Amount.String()}).Info("payment processed")
	return &event, nil
}
