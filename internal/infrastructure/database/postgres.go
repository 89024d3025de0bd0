package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sangkips/insights-api/internal/config"
	"github.com/sangkips/insights-api/internal/domain/entity"
	"github.com/sangkips/insights-api/internal/logging"
)

const slowQueryThreshold = 500 * time.Millisecond

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, logger zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logging.NewGormLogger(logger, slowQueryThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)

	logger.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("connected to PostgreSQL")
	return db, nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate runs GORM auto-migration for the registry and transactional tables
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	logger := zerolog.Ctx(ctx)
	logger.Info().Msg("running database migrations")

	err := db.WithContext(ctx).AutoMigrate(
		// Party registry
		&entity.Customer{},
		&entity.Supplier{},

		// Selling
		&entity.SalesOrder{},
		&entity.SalesOrderItem{},
		&entity.DeliveryNote{},
		&entity.DeliveryNoteItem{},
		&entity.SalesInvoice{},
		&entity.SalesInvoiceItem{},

		// Buying
		&entity.PurchaseOrder{},
		&entity.PurchaseOrderItem{},
		&entity.PurchaseReceipt{},
		&entity.PurchaseReceiptItem{},
		&entity.PurchaseInvoice{},
		&entity.PurchaseInvoiceItem{},

		// Payments
		&entity.PaymentRequest{},
		&entity.PaymentEntry{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info().Msg("database migrations completed")
	return nil
}
