package services

import (
	"math"
	"time"

	"github.com/halleck44/steady/internal/models"
)

// Snapshot is the immutable view of one user's logs that a pipeline run
// analyzes. Analyzers never reach past it. Log slices are ordered most
// recent first, so first-match scans pick the newest candidate.
type Snapshot struct {
	UserID        uint
	Now           time.Time
	DailyCarbGoal int
	Meals         []models.MealLog
	Readings      []models.GlucoseReading
	Exercises     []models.ExerciseLog
	SleepLogs     []models.SleepLog
	EnergyLogs    []models.EnergyLog
}

func (snapshot Snapshot) carbGoal() float64 {
	if snapshot.DailyCarbGoal <= 0 {
		return float64(models.DefaultDailyCarbGoal)
	}
	return float64(snapshot.DailyCarbGoal)
}

// firstReadingBetween returns the first-listed reading taken within
// [from, to] inclusive. With newest-first slices that is the most
// recent reading in the window.
func firstReadingBetween(readings []models.GlucoseReading, from time.Time, to time.Time) *models.GlucoseReading {
	for index := range readings {
		taken := readings[index].TakenAt
		if !taken.Before(from) && !taken.After(to) {
			return &readings[index]
		}
	}
	return nil
}

func readingsBetween(readings []models.GlucoseReading, from time.Time, to time.Time) []models.GlucoseReading {
	matched := make([]models.GlucoseReading, 0)
	for _, reading := range readings {
		if !reading.TakenAt.Before(from) && !reading.TakenAt.After(to) {
			matched = append(matched, reading)
		}
	}
	return matched
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, value := range values {
		total += value
	}
	return total / float64(len(values))
}

func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	average := mean(values)
	total := 0.0
	for _, value := range values {
		total += (value - average) * (value - average)
	}
	return total / float64(len(values))
}

func roundInt(value float64) int {
	return int(math.Round(value))
}
