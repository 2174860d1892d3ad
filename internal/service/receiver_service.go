package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/archive"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/logger"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/normalizer"
	"github.com/sirupsen/logrus"
)

// IngestResult is what the receiver reports back to the provider.
type IngestResult struct {
	PaymentID string
	Timestamp int64
	// Duplicate is set when a record with the same key already existed.
	Duplicate bool
}

// ReceiverService records inbound webhooks: archive, store, then enqueue.
type ReceiverService struct {
	Repo    PaymentEventRepo
	Archive Archive
	Queue   Enqueuer
	Now     func() time.Time
	NewID   func() string
}

// NewReceiverService creates a ReceiverService writing to the given store, archive
// and processing queue.
func NewReceiverService(repo PaymentEventRepo, archive Archive, queue Enqueuer) *ReceiverService {
	return &ReceiverService{
		Repo:    repo,
		Archive: archive,
		Queue:   queue,
		Now:     time.Now,
		NewID:   uuid.NewString,
	}
}

// Ingest persists a validated webhook. The raw payload is archived first, then the
// received record is stored and enqueued. Any failure aborts the request so the
// provider retries the delivery, and a record that could not be enqueued is removed
// again so no received row is left without a processing message.
//
// A key collision means the same payment id was ingested twice within one
// millisecond. The existing record wins and the duplicate is acknowledged without
// enqueueing again.
func (s *ReceiverService) Ingest(ctx context.Context, raw []byte, payload models.WebhookPayload) (*IngestResult, error) {
	paymentID := payload.PaymentID()
	if paymentID == "" {
		paymentID = s.NewID()
	}
	timestamp := s.Now().UnixMilli()
	result := &IngestResult{PaymentID: paymentID, Timestamp: timestamp}

	ctx = logger.WithFields(ctx, logrus.Fields{"payment_id": paymentID, "timestamp_ms": timestamp})
	log := logger.FromContext(ctx)

	if err := s.archiveRaw(ctx, timestamp, paymentID, raw); err != nil {
		return nil, wrapErr(ctx, "archiving raw payload", err)
	}

	record := normalizer.Received(paymentID, timestamp, payload, raw)
	if err := s.Repo.Create(ctx, record); err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			log.Warn("duplicate webhook delivery for existing key, skipping side effects")
			result.Duplicate = true
			return result, nil
		}
		return nil, wrapErr(ctx, "storing payment event", err)
	}

	body, err := json.Marshal(models.ProcessingMessage{
		PaymentID: paymentID,
		Timestamp: timestamp,
		Payload:   json.RawMessage(raw),
	})
	if err == nil {
		err = s.Queue.Send(ctx, paymentID, body)
	}
	if err != nil {
		s.discard(ctx, record.Key())
		return nil, wrapErr(ctx, "enqueueing for processing", err)
	}

	log.WithField("provider", record.Provider).Info("webhook received")
	return result, nil
}

// archiveRaw writes the payload under the day key for the payment. When that key
// already holds a different payload from an earlier ingestion the same day, the
// payload goes to its timestamped revision key instead.
func (s *ReceiverService) archiveRaw(ctx context.Context, timestamp int64, paymentID string, raw []byte) error {
	err := s.Archive.PutJSON(ctx, archive.KeyFor(timestamp, paymentID), raw)
	if !errors.Is(err, models.ErrDuplicateKey) {
		return err
	}

	err = s.Archive.PutJSON(ctx, archive.RevisionKey(timestamp, paymentID), raw)
	if errors.Is(err, models.ErrDuplicateKey) {
		// Same payment and millisecond: the store reports the duplicate delivery.
		return nil
	}
	return err
}

// discard removes a received record whose processing message never made it out.
func (s *ReceiverService) discard(ctx context.Context, key models.Key) {
	if err := s.Repo.DeleteReceived(context.WithoutCancel(ctx), key); err != nil {
		logger.FromContext(ctx).WithError(err).Error("failed to remove unenqueued payment event")
	}
}

// ListPayments returns provider-scoped records, newest first.
func (s *ReceiverService) ListPayments(ctx context.Context, provider string, from, to int64, limit int) ([]models.PaymentEvent, error) {
	events, err := s.Repo.ListByProvider(ctx, provider, from, to, limit)
	if err != nil {
		return nil, wrapErr(ctx, "listing payments", err)
	}
	return events, nil
}
