package db

import (
	"time"

	"github.com/halleck44/steady/internal/models"
	"gorm.io/gorm"
)

type MealLogRepository struct {
	database *gorm.DB
}

func NewMealLogRepository(database *gorm.DB) *MealLogRepository {
	return &MealLogRepository{database: database}
}

func (repo *MealLogRepository) ListByUserRange(userID uint, start time.Time, end time.Time) ([]models.MealLog, error) {
	logs := make([]models.MealLog, 0)
	if err := repo.database.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("logged_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *MealLogRepository) Create(entry *models.MealLog) error {
	return repo.database.Create(entry).Error
}
