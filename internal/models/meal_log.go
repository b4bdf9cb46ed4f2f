package models

import "time"

// DefaultMealCarbs is assumed for meals logged without a carb estimate.
const DefaultMealCarbs = 45.0

type MealLog struct {
	ID        uint     `gorm:"primaryKey"`
	UserID    uint     `gorm:"not null;index:idx_meal_logs_user_time"`
	RecipeID  *uint    `gorm:"index"`
	Name      string   `gorm:"not null;default:''"`
	Carbs     *float64 `gorm:"type:decimal(5,2)"`
	Calories  *int
	LoggedAt  time.Time `gorm:"not null;index:idx_meal_logs_user_time"`
	Notes     string
	CreatedAt time.Time `gorm:"not null"`
}

// CarbGrams resolves the logged carb amount, falling back to the default
// estimate when the entry carries none.
func (entry *MealLog) CarbGrams() float64 {
	if entry.Carbs == nil {
		return DefaultMealCarbs
	}
	return *entry.Carbs
}

// DisplayName returns the free-text meal name or a neutral placeholder.
func (entry *MealLog) DisplayName() string {
	if entry.Name == "" {
		return "your meal"
	}
	return entry.Name
}
