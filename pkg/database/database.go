package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"catalog-service/internal/model"
	"catalog-service/pkg/config"
)

var db *gorm.DB

// InitDB opens the PostgreSQL connection, applies the pool settings and
// migrates the catalog tables.
func InitDB(config *config.Config) error {
	// Configure Postgres options
	pgConfig := postgres.Config{
		DSN:                  config.DB.GetDSN(),
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	var err error
	db, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(config.DB.LogLevel),
		// Surface unique-index violations as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Set connection pool settings from config
	sqlDB.SetMaxIdleConns(config.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.DB.ConnMaxLifetime)

	return Migrate(db)
}

// Migrate creates or updates the eight catalog tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Office{},
		&model.Employee{},
		&model.Customer{},
		&model.Order{},
		&model.OrderDetail{},
		&model.Payment{},
		&model.ProductLine{},
		&model.Product{},
	)
	if err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}
