package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SeverityInfo = "info"
	SeverityWarn = "warn"
)

// Insight is a persisted derived observation. The engine itself treats
// insights as ephemeral computation results; this table is the calling
// layer's record of what was surfaced to the user.
type Insight struct {
	ID          uint   `gorm:"primaryKey"`
	PublicID    string `gorm:"uniqueIndex;not null"`
	UserID      uint   `gorm:"not null;index:idx_insights_user_active"`
	Type        string `gorm:"not null"`
	Title       string `gorm:"not null"`
	Body        string `gorm:"not null"`
	Severity    string `gorm:"not null"`
	MealLogID   *uint
	ReadingID   *uint
	ExerciseID  *uint
	Priority    int       `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true;index:idx_insights_user_active"`
	Range       string    `gorm:"column:range_key;not null;default:7d"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	DismissedAt *time.Time
}

func (insight *Insight) BeforeCreate(*gorm.DB) error {
	if insight.PublicID == "" {
		insight.PublicID = uuid.NewString()
	}
	return nil
}
