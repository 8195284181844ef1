package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/drax210310/jugueteria-backend/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError is enabled so
// unique-constraint violations surface as gorm.ErrDuplicatedKey, which the
// repositories map to the domain duplicate error. The unique indexes are
// the authoritative guard against concurrent duplicate registrations.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates or updates all tables the service owns.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBProductLine{},
		&repositories.DBProduct{},
		&repositories.DBMunicipality{},
		&repositories.DBDepartment{},
		&repositories.DBSale{},
		&repositories.DBSaleItem{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
