package models

import "time"

const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// DefaultDailyCarbGoal is assumed when a user never set an explicit goal.
const DefaultDailyCarbGoal = 150

type User struct {
	ID            uint      `gorm:"primaryKey"`
	Email         string    `gorm:"uniqueIndex;not null"`
	Plan          string    `gorm:"not null;default:free"`
	DailyCarbGoal int       `gorm:"not null;default:150"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (user *User) CarbGoal() int {
	if user == nil || user.DailyCarbGoal <= 0 {
		return DefaultDailyCarbGoal
	}
	return user.DailyCarbGoal
}

func (user *User) PlanTier() string {
	if user == nil || user.Plan == "" {
		return PlanFree
	}
	return user.Plan
}
