package db

import (
	"github.com/halleck44/steady/internal/models"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date. All tables are forward-migrated
// with gorm's auto migration; the engine owns no other persisted state.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.User{},
		&models.MealLog{},
		&models.GlucoseReading{},
		&models.ExerciseLog{},
		&models.SleepLog{},
		&models.EnergyLog{},
		&models.Recipe{},
		&models.Insight{},
	)
}
