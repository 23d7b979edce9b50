package database

import (
	"fmt"
	"log"

	"github.com/steelwheel/dealership-api/internal/config"
	"github.com/steelwheel/dealership-api/internal/domain/entity"
	"github.com/steelwheel/dealership-api/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
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
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.Invoice{},
		&entity.InvoiceVehicle{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedOperator creates the operator account on first boot. Subsequent boots
// leave the existing account untouched.
func SeedOperator(db *gorm.DB, cfg *config.CompanyConfig) error {
	var existing entity.User
	err := db.Where("email = ?", cfg.OperatorEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to look up operator account: %w", err)
	}

	hashed, err := utils.HashPassword(cfg.OperatorPassword)
	if err != nil {
		return fmt.Errorf("failed to hash operator password: %w", err)
	}

	operator := entity.User{
		Name:     cfg.OperatorName,
		Email:    cfg.OperatorEmail,
		Password: hashed,
	}
	if err := db.Create(&operator).Error; err != nil {
		return fmt.Errorf("failed to seed operator account: %w", err)
	}

	log.Printf("Seeded operator account %s", cfg.OperatorEmail)
	return nil
}
