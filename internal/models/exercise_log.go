package models

import "time"

type ExerciseLog struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;index:idx_exercise_logs_user_time"`
	ExerciseType    string    `gorm:"not null;default:''"`
	DurationMinutes int       `gorm:"not null"`
	LoggedAt        time.Time `gorm:"not null;index:idx_exercise_logs_user_time"`
	Notes           string
	CreatedAt       time.Time `gorm:"not null"`
}
