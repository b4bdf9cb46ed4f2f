package services

import (
	"time"

	"github.com/halleck44/steady/internal/models"
)

// DailyStats aggregates one calendar day of logging activity.
type DailyStats struct {
	Date              string  `json:"date"`
	MealsCount        int     `json:"mealsCount"`
	CarbsTotal        float64 `json:"carbsTotal"`
	ReadingsPreCount  int     `json:"readingsPreCount"`
	ReadingsPostCount int     `json:"readingsPostCount"`
	TotalReadings     int     `json:"totalReadings"`
}

// BuildDailyStats aggregates the given logs for one calendar day. Pre
// counts cover fasting and pre-meal readings, post counts post-meal
// readings only.
func BuildDailyStats(meals []models.MealLog, readings []models.GlucoseReading, day time.Time) DailyStats {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats := DailyStats{Date: dayStart.Format("2006-01-02")}

	for _, meal := range meals {
		if meal.LoggedAt.Before(dayStart) || !meal.LoggedAt.Before(dayEnd) {
			continue
		}
		stats.MealsCount++
		stats.CarbsTotal += meal.CarbGrams()
	}

	for _, reading := range readings {
		if reading.TakenAt.Before(dayStart) || !reading.TakenAt.Before(dayEnd) {
			continue
		}
		stats.TotalReadings++
		switch reading.ReadingType {
		case models.ReadingTypeFasting, models.ReadingTypePreMeal:
			stats.ReadingsPreCount++
		case models.ReadingTypePostMeal:
			stats.ReadingsPostCount++
		}
	}

	return stats
}
