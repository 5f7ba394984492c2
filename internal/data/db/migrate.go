package db

import (
	"fmt"

	types "github.com/yungbote/agroregistry-backend/internal/domain"
	"gorm.io/gorm"
)

// AutoMigrateAll creates every registry table with its unique and foreign-key
// constraints.
func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(types.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return EnsureReportIndexes(db)
}

// EnsureReportIndexes adds the composite indexes the dashboard queries group on.
func EnsureReportIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_rural_properties_city_producer ON rural_properties(city_id, producer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cultivations_culture_property ON cultivations(planted_culture_id, rural_property_id)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("ensure report index: %w", err)
		}
	}
	return nil
}
