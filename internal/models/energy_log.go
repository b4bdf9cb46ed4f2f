package models

import "time"

const (
	EnergyLevelTired     = 1
	EnergyLevelOkay      = 2
	EnergyLevelEnergized = 3
)

type EnergyLog struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_energy_logs_user_time"`
	Level     int       `gorm:"not null"`
	LoggedAt  time.Time `gorm:"not null;index:idx_energy_logs_user_time"`
	Notes     string
	CreatedAt time.Time `gorm:"not null"`
}
