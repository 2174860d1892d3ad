package posgrest

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// repository is a generic GORM-based repository implementation.
// It provides the conditional insert, lookup and update primitives the typed
// repositories in this package are built on.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
// The repository uses the provided GORM database connection for all operations.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// CreateIfAbsent inserts entity unless a row with the same primary key exists.
// It reports whether a row was written.
func (r *repository[T]) CreateIfAbsent(ctx context.Context, entity *T) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(entity)
	if result.Error != nil {
		return false, HandleDBError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// First retrieves the first entity matching query.
func (r *repository[T]) First(ctx context.Context, query interface{}, args ...interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error; err != nil {
		return nil, HandleDBError(err)
	}
	return &entity, nil
}

// Find retrieves entities matching query in the given order, up to limit rows.
func (r *repository[T]) Find(ctx context.Context, order string, limit int, query interface{}, args ...interface{}) ([]T, error) {
	var entities []T
	tx := r.db.WithContext(ctx).Where(query, args...)
	if order != "" {
		tx = tx.Order(order)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&entities).Error; err != nil {
		return nil, HandleDBError(err)
	}
	return entities, nil
}

// UpdateWhere applies updates to the rows matching query and returns the affected row count.
func (r *repository[T]) UpdateWhere(ctx context.Context, updates map[string]interface{}, query interface{}, args ...interface{}) (int64, error) {
	var entity T
	result := r.db.WithContext(ctx).Model(&entity).Where(query, args...).Updates(updates)
	if result.Error != nil {
		return 0, HandleDBError(result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteWhere removes the rows matching query and returns the affected row count.
func (r *repository[T]) DeleteWhere(ctx context.Context, query interface{}, args ...interface{}) (int64, error) {
	var entity T
	result := r.db.WithContext(ctx).Where(query, args...).Delete(&entity)
	if result.Error != nil {
		return 0, HandleDBError(result.Error)
	}
	return result.RowsAffected, nil
}

// Transaction runs fn with a repository bound to a single database transaction.
func (r *repository[T]) Transaction(ctx context.Context, fn func(tx *repository[T]) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New[T](tx))
	})
}
