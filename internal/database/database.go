package database

import (
	"fmt"

	"github.com/jeffleon2/draftea-webhook-pipeline/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Migrate creates or updates the payment_events and archive_objects tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.PaymentEvent{}, &models.ArchiveObject{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// OpenInMemory opens a named shared-cache sqlite database and migrates it.
// A single connection keeps every statement on the same in-memory database.
func OpenInMemory(name string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
