package models

import "time"

const (
	ReadingTypeFasting  = "fasting"
	ReadingTypePreMeal  = "pre_meal"
	ReadingTypePostMeal = "post_meal"
	ReadingTypeRandom   = "random"
)

const (
	GlucoseSourceManual = "manual"
	GlucoseSourceCGM    = "cgm"
)

const (
	AlertNone       = "none"
	AlertLow        = "low"
	AlertHigh       = "high"
	AlertUrgentLow  = "urgent_low"
	AlertUrgentHigh = "urgent_high"
)

type GlucoseReading struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index:idx_glucose_readings_user_time"`
	Value       float64   `gorm:"type:decimal(5,2);not null"`
	Unit        string    `gorm:"not null;default:mg/dL"`
	ReadingType string    `gorm:"not null;default:random"`
	Source      string    `gorm:"not null;default:manual"`
	AlertType   string    `gorm:"not null;default:none"`
	TakenAt     time.Time `gorm:"not null;index:idx_glucose_readings_user_time"`
	Notes       string
	CreatedAt   time.Time `gorm:"not null"`
}

func (reading *GlucoseReading) IsCGM() bool {
	return reading.Source == GlucoseSourceCGM
}

func (reading *GlucoseReading) HasAlert() bool {
	return reading.AlertType != "" && reading.AlertType != AlertNone
}

func (reading *GlucoseReading) IsUrgentAlert() bool {
	return reading.AlertType == AlertUrgentLow || reading.AlertType == AlertUrgentHigh
}
