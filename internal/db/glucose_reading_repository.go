package db

import (
	"time"

	"github.com/halleck44/steady/internal/models"
	"gorm.io/gorm"
)

type GlucoseReadingRepository struct {
	database *gorm.DB
}

func NewGlucoseReadingRepository(database *gorm.DB) *GlucoseReadingRepository {
	return &GlucoseReadingRepository{database: database}
}

func (repo *GlucoseReadingRepository) ListByUserRange(userID uint, start time.Time, end time.Time) ([]models.GlucoseReading, error) {
	readings := make([]models.GlucoseReading, 0)
	if err := repo.database.
		Where("user_id = ? AND taken_at >= ? AND taken_at < ?", userID, start, end).
		Order("taken_at DESC, id DESC").
		Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

func (repo *GlucoseReadingRepository) FindLatestByUser(userID uint) (models.GlucoseReading, bool, error) {
	var reading models.GlucoseReading
	result := repo.database.
		Where("user_id = ?", userID).
		Order("taken_at DESC, id DESC").
		Limit(1).
		Find(&reading)
	if result.Error != nil {
		return models.GlucoseReading{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.GlucoseReading{}, false, nil
	}
	return reading, true, nil
}

func (repo *GlucoseReadingRepository) Create(reading *models.GlucoseReading) error {
	return repo.database.Create(reading).Error
}
