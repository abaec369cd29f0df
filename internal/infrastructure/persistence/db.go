package persistence

import (
	"fmt"

	"github.com/govseva/govseva/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Open connects to the SQLite file at path, migrates the schema, and seeds
// the services reference table.
func Open(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := SeedServices(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.ChatTurn{},
		&domain.Complaint{},
		&domain.Application{},
		&domain.Service{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedServices inserts the static department reference data. Existing rows
// are left untouched so the seed is safe to run on every start.
func SeedServices(db *gorm.DB) error {
	services := domain.SeedServices()

	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&services).Error
	if err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}
	return nil
}
