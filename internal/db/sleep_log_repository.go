package db

import (
	"time"

	"github.com/halleck44/steady/internal/models"
	"gorm.io/gorm"
)

type SleepLogRepository struct {
	database *gorm.DB
}

func NewSleepLogRepository(database *gorm.DB) *SleepLogRepository {
	return &SleepLogRepository{database: database}
}

func (repo *SleepLogRepository) ListByUserRange(userID uint, start time.Time, end time.Time) ([]models.SleepLog, error) {
	logs := make([]models.SleepLog, 0)
	if err := repo.database.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("logged_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *SleepLogRepository) Create(entry *models.SleepLog) error {
	return repo.database.Create(entry).Error
}
