package services

import (
	"testing"
	"time"

	"github.com/halleck44/steady/internal/models"
)

// mealRiseSleepSnapshot trips the post-meal rise, exercise consistency,
// and sleep quality analyzers together, with every other analyzer left
// short of data.
func mealRiseSleepSnapshot() Snapshot {
	mealTime := time.Date(2026, 2, 24, 12, 0, 0, 0, time.UTC)

	readings := []models.GlucoseReading{
		readingAt(1, mealTime.Add(-10*time.Minute), 110),
		readingAt(2, mealTime.Add(100*time.Minute), 150),
	}
	// Next-day windows for the sleep correlation: calm after the
	// restful night, volatile after the poor ones.
	id := uint(3)
	for day, values := range map[int][3]float64{
		25: {100, 101, 102},
		26: {80, 140, 200},
		27: {80, 150, 190},
	} {
		for offset, value := range values {
			readings = append(readings, readingAt(id, time.Date(2026, 2, day, 8+offset*4, 0, 0, 0, time.UTC), value))
			id++
		}
	}

	// Late-evening sessions keep clear of every reading pairing window.
	exercises := []models.ExerciseLog{
		exerciseAt(1, time.Date(2026, 2, 21, 22, 0, 0, 0, time.UTC), 20),
		exerciseAt(2, time.Date(2026, 2, 22, 22, 0, 0, 0, time.UTC), 20),
		exerciseAt(3, time.Date(2026, 2, 23, 22, 0, 0, 0, time.UTC), 20),
	}

	sleepLogs := []models.SleepLog{
		sleepAt(1, time.Date(2026, 2, 24, 22, 0, 0, 0, time.UTC), 7, models.SleepQualityGood),
		sleepAt(2, time.Date(2026, 2, 25, 22, 0, 0, 0, time.UTC), 7, models.SleepQualityPoor),
		sleepAt(3, time.Date(2026, 2, 26, 22, 0, 0, 0, time.UTC), 7, models.SleepQualityPoor),
	}

	return Snapshot{
		Now:           fixtureNow,
		DailyCarbGoal: 150,
		Meals:         []models.MealLog{mealAt(1, mealTime, 55)},
		Readings:      readings,
		Exercises:     exercises,
		SleepLogs:     sleepLogs,
	}
}

func TestPipelineOrderSpansNonAdjacentAnalyzers(t *testing.T) {
	t.Parallel()

	insights := RunInsightPipeline(mealRiseSleepSnapshot())
	if len(insights) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(insights))
	}

	expected := []string{InsightPostMealRise, InsightExerciseConsistency, InsightSleepQualityCorrelation}
	for index, insight := range insights {
		if insight.Type != expected[index] {
			t.Fatalf("expected %s at position %d, got %s", expected[index], index, insight.Type)
		}
	}
}
