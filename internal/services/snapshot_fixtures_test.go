package services

import (
	"time"

	"github.com/halleck44/steady/internal/models"
)

// fixtureNow anchors every analyzer test at a fixed Sunday noon so
// hour-of-day windows stay deterministic.
var fixtureNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func floatPtr(value float64) *float64 {
	return &value
}

func mealAt(id uint, loggedAt time.Time, carbs float64) models.MealLog {
	return models.MealLog{ID: id, UserID: 1, Name: "meal", Carbs: floatPtr(carbs), LoggedAt: loggedAt}
}

func readingAt(id uint, takenAt time.Time, value float64) models.GlucoseReading {
	return models.GlucoseReading{
		ID:          id,
		UserID:      1,
		Value:       value,
		Unit:        "mg/dL",
		ReadingType: models.ReadingTypeRandom,
		Source:      models.GlucoseSourceManual,
		AlertType:   models.AlertNone,
		TakenAt:     takenAt,
	}
}

func cgmReadingAt(id uint, takenAt time.Time, value float64, alertType string) models.GlucoseReading {
	reading := readingAt(id, takenAt, value)
	reading.Source = models.GlucoseSourceCGM
	reading.AlertType = alertType
	return reading
}

func exerciseAt(id uint, loggedAt time.Time, minutes int) models.ExerciseLog {
	return models.ExerciseLog{ID: id, UserID: 1, ExerciseType: "walk", DurationMinutes: minutes, LoggedAt: loggedAt}
}

func sleepAt(id uint, loggedAt time.Time, hours float64, quality string) models.SleepLog {
	return models.SleepLog{ID: id, UserID: 1, DurationHours: floatPtr(hours), Quality: quality, LoggedAt: loggedAt}
}

func energyAt(id uint, loggedAt time.Time, level int) models.EnergyLog {
	return models.EnergyLog{ID: id, UserID: 1, Level: level, LoggedAt: loggedAt}
}
