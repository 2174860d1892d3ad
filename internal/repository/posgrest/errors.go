package posgrest

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// HandleDBError maps driver errors onto the sentinel errors in models.
// Everything that is not a not-found or a unique violation is treated as retryable.
func HandleDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", models.ErrTransient, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", models.ErrDuplicateKey, pgErr.ConstraintName)
		case pgSerializationFailure, pgDeadlockDetected:
			return fmt.Errorf("%w: %w", models.ErrTransient, err)
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrDuplicateKey
	}

	return fmt.Errorf("%w: %w", models.ErrTransient, err)
}
