package models

import "time"

const (
	RecipeCategoryBreakfast = "breakfast"
	RecipeCategoryLunch     = "lunch"
	RecipeCategoryDinner    = "dinner"
	RecipeCategorySnack     = "snack"
)

type Recipe struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	Category    string    `gorm:"not null;default:lunch;index"`
	Carbs       float64   `gorm:"type:decimal(5,2);not null"`
	Fiber       float64   `gorm:"type:decimal(5,2);not null"`
	Calories    int       `gorm:"not null;default:0"`
	ImageURL    string    `gorm:"not null;default:''"`
	CreatedAt   time.Time `gorm:"not null"`
}
