package db

import (
	"time"

	"github.com/halleck44/steady/internal/models"
	"gorm.io/gorm"
)

type InsightRepository struct {
	database *gorm.DB
}

func NewInsightRepository(database *gorm.DB) *InsightRepository {
	return &InsightRepository{database: database}
}

// ReplaceActive deactivates the user's current insights and stores a fresh
// batch in one transaction, so readers never observe a mixed generation.
func (repo *InsightRepository) ReplaceActive(userID uint, insights []models.Insight) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Insight{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		if len(insights) == 0 {
			return nil
		}
		return tx.Create(&insights).Error
	})
}

func (repo *InsightRepository) ListActive(userID uint, now time.Time) ([]models.Insight, error) {
	insights := make([]models.Insight, 0)
	if err := repo.database.
		Where("user_id = ? AND is_active = ? AND expires_at > ?", userID, true, now).
		Order("created_at DESC, id DESC").
		Limit(3).
		Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}

func (repo *InsightRepository) ListHistory(userID uint, limit int) ([]models.Insight, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	insights := make([]models.Insight, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}

func (repo *InsightRepository) Dismiss(userID uint, publicID string, now time.Time) (bool, error) {
	result := repo.database.Model(&models.Insight{}).
		Where("user_id = ? AND public_id = ? AND dismissed_at IS NULL", userID, publicID).
		Update("dismissed_at", now)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *InsightRepository) DeleteExpired(userID uint, now time.Time) error {
	return repo.database.
		Where("user_id = ? AND expires_at <= ?", userID, now).
		Delete(&models.Insight{}).Error
}
