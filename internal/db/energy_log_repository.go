package db

import (
	"time"

	"github.com/halleck44/steady/internal/models"
	"gorm.io/gorm"
)

type EnergyLogRepository struct {
	database *gorm.DB
}

func NewEnergyLogRepository(database *gorm.DB) *EnergyLogRepository {
	return &EnergyLogRepository{database: database}
}

func (repo *EnergyLogRepository) ListByUserRange(userID uint, start time.Time, end time.Time) ([]models.EnergyLog, error) {
	logs := make([]models.EnergyLog, 0)
	if err := repo.database.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("logged_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *EnergyLogRepository) Create(entry *models.EnergyLog) error {
	return repo.database.Create(entry).Error
}
