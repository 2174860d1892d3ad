package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func (db *DB) GormConnect() (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	switch db.DRIVER {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			db.HOST, db.USER, db.PASSWORD, db.NAME, db.PORT, db.SSLMODE,
		)
		return gorm.Open(postgres.Open(dsn), gormConfig)
	case "sqlite":
		return gorm.Open(sqlite.Open(db.SQLitePath), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", db.DRIVER)
	}
}
