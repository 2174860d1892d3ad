// Package archive keeps an immutable copy of every accepted webhook payload,
// addressed by ingestion date and payment id.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/repository/posgrest"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const contentTypeJSON = "application/json"

// Key returns webhooks/<YYYY-MM-DD>/<paymentId>.json for the UTC date of at.
func Key(at time.Time, paymentID string) string {
	return fmt.Sprintf("webhooks/%s/%s.json", at.UTC().Format(time.DateOnly), paymentID)
}

// KeyFor derives the key from an ingestion timestamp in milliseconds.
func KeyFor(timestampMillis int64, paymentID string) string {
	return Key(time.UnixMilli(timestampMillis), paymentID)
}

// RevisionKey returns webhooks/<YYYY-MM-DD>/<paymentId>-<timestampMillis>.json. It
// addresses a later ingestion of a payment whose first payload already holds KeyFor.
func RevisionKey(timestampMillis int64, paymentID string) string {
	return Key(time.UnixMilli(timestampMillis), fmt.Sprintf("%s-%d", paymentID, timestampMillis))
}

// Pretty indents raw JSON with two spaces without re-encoding values.
func Pretty(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("%w: archive payload is not JSON: %s", models.ErrValidation, err.Error())
	}
	return buf.Bytes(), nil
}

// Store is a write-once object store backed by the archive_objects table.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// PutJSON archives raw pretty-printed under key. Writing identical bytes again is a
// no-op; different bytes under an existing key fail with ErrDuplicateKey.
func (s *Store) PutJSON(ctx context.Context, key string, raw []byte) error {
	body, err := Pretty(raw)
	if err != nil {
		return err
	}

	object := models.ArchiveObject{
		Key:         key,
		Body:        body,
		ContentType: contentTypeJSON,
		CreatedAt:   time.Now().UTC(),
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&object)
	if result.Error != nil {
		return posgrest.HandleDBError(result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	existing, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if !bytes.Equal(existing, body) {
		return fmt.Errorf("%w: archive object %s already exists with different content", models.ErrDuplicateKey, key)
	}
	return nil
}

// Get returns the archived bytes for key or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var object models.ArchiveObject
	if err := s.db.WithContext(ctx).Where(&models.ArchiveObject{Key: key}).First(&object).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: archive object %s", models.ErrNotFound, key)
		}
		return nil, posgrest.HandleDBError(err)
	}
	return object.Body, nil
}
