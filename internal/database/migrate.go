package database

import (
	"fmt"

	"github.com/pageza/calorielens/backend/internal/models"
	"gorm.io/gorm"
)

// activeTargetIndex enforces at most one active target per user. GORM tags
// cannot express a partial index portably so it is created by hand.
const activeTargetIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_daily_targets_one_active
	ON daily_targets (user_id) WHERE active`

// Migrate creates or updates the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.DailyTarget{},
		&models.DailyActivity{},
		&models.FoodItem{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	if err := db.Exec(activeTargetIndex).Error; err != nil {
		return fmt.Errorf("create active target index: %w", err)
	}
	return nil
}
