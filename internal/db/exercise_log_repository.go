package db

import (
	"time"

	"github.com/halleck44/steady/internal/models"
	"gorm.io/gorm"
)

type ExerciseLogRepository struct {
	database *gorm.DB
}

func NewExerciseLogRepository(database *gorm.DB) *ExerciseLogRepository {
	return &ExerciseLogRepository{database: database}
}

func (repo *ExerciseLogRepository) ListByUserRange(userID uint, start time.Time, end time.Time) ([]models.ExerciseLog, error) {
	logs := make([]models.ExerciseLog, 0)
	if err := repo.database.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("logged_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *ExerciseLogRepository) Create(entry *models.ExerciseLog) error {
	return repo.database.Create(entry).Error
}
