package models

import "time"

const (
	SleepQualityPoor      = "poor"
	SleepQualityFair      = "fair"
	SleepQualityGood      = "good"
	SleepQualityExcellent = "excellent"
)

type SleepLog struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;index:idx_sleep_logs_user_time"`
	DurationHours *float64  `gorm:"type:decimal(4,2)"`
	Quality       string    `gorm:"not null;default:fair"`
	LoggedAt      time.Time `gorm:"not null;index:idx_sleep_logs_user_time"`
	Notes         string
	CreatedAt     time.Time `gorm:"not null"`
}

// IsRestful reports whether the night counts as good sleep for
// correlation purposes.
func (entry *SleepLog) IsRestful() bool {
	return entry.Quality == SleepQualityGood || entry.Quality == SleepQualityExcellent
}
