package gorm

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-api/internal/infra/database/sqlc"
)

// Open wraps an already opened pool, so both clients share the same
// database bootstrap and pool limits.
func Open(sqlDB *sql.DB) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm DB: %w", err)
	}
	return db, nil
}

// OpenStandalone opens the configured database directly through gorm
func OpenStandalone(ctx context.Context) (*gorm.DB, error) {
	sqlDB, err := sqlc.Open(ctx)
	if err != nil {
		return nil, err
	}
	return Open(sqlDB)
}
