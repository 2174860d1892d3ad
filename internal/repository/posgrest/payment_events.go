package posgrest

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"gorm.io/gorm"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// PaymentEventRepository stores PaymentEvent rows keyed by (payment_id, timestamp).
type PaymentEventRepository struct {
	repo *repository[models.PaymentEvent]
}

func NewPaymentEventRepository(db *gorm.DB) *PaymentEventRepository {
	return &PaymentEventRepository{repo: New[models.PaymentEvent](db)}
}

// Create inserts a received record. An existing row with the same key is left untouched
// and ErrDuplicateKey is returned.
func (r *PaymentEventRepository) Create(ctx context.Context, event *models.PaymentEvent) error {
	created, err := r.repo.CreateIfAbsent(ctx, event)
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("%w: payment %s at %d", models.ErrDuplicateKey, event.PaymentID, event.Timestamp)
	}
	return nil
}

func (r *PaymentEventRepository) GetByKey(ctx context.Context, key models.Key) (*models.PaymentEvent, error) {
	return r.repo.First(ctx, "payment_id = ? AND timestamp_ms = ?", key.PaymentID, key.Timestamp)
}

// MarkProcessed moves an existing record to processed. processed_at keeps its first value
// so replays of the same message leave the row unchanged. A missing row is a
// processing inconsistency; the stored row is returned on success.
func (r *PaymentEventRepository) MarkProcessed(ctx context.Context, key models.Key, currency string, processedAt int64) (*models.PaymentEvent, error) {
	var stored *models.PaymentEvent

	err := r.repo.Transaction(ctx, func(tx *repository[models.PaymentEvent]) error {
		affected, err := tx.UpdateWhere(ctx, map[string]interface{}{
			"status":       models.StatusProcessed,
			"currency":     currency,
			"processed_at": gorm.Expr("COALESCE(processed_at, ?)", processedAt),
		}, "payment_id = ? AND timestamp_ms = ?", key.PaymentID, key.Timestamp)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: no record for payment %s at %d", models.ErrProcessingInconsistency, key.PaymentID, key.Timestamp)
		}

		stored, err = tx.First(ctx, "payment_id = ? AND timestamp_ms = ?", key.PaymentID, key.Timestamp)
		return err
	})
	if err != nil {
		if errors.Is(err, models.ErrProcessingInconsistency) || errors.Is(err, models.ErrTransient) || errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, HandleDBError(err)
	}
	return stored, nil
}

// DeleteReceived removes a record that was never handed to the processor. Rows that
// already moved past received are left alone.
func (r *PaymentEventRepository) DeleteReceived(ctx context.Context, key models.Key) error {
	_, err := r.repo.DeleteWhere(ctx, "payment_id = ? AND timestamp_ms = ? AND status = ?",
		key.PaymentID, key.Timestamp, models.StatusReceived)
	return err
}

// ListByProvider returns the newest records for provider with from <= timestamp <= to.
// A zero bound is open.
func (r *PaymentEventRepository) ListByProvider(ctx context.Context, provider string, from, to int64, limit int) ([]models.PaymentEvent, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if to == 0 {
		to = 1<<63 - 1
	}
	return r.repo.Find(ctx, "timestamp_ms DESC", limit,
		"provider = ? AND timestamp_ms >= ? AND timestamp_ms <= ?", provider, from, to)
}
