package services

import (
	"time"

	"github.com/halleck44/steady/internal/models"
)

// Priority scores stored with persisted insights. They are bookkeeping
// only: the surfaced top 3 keeps strict pipeline order and is never
// re-sorted by priority.
const (
	priorityWarn = 90
	priorityInfo = 70
)

// NewInsightRecord converts a generated insight into its persisted form
// for the calling layer's history.
func NewInsightRecord(userID uint, rangeKey InsightRange, generated GeneratedInsight, now time.Time) models.Insight {
	priority := priorityInfo
	if generated.Severity == models.SeverityWarn {
		priority = priorityWarn
	}

	return models.Insight{
		UserID:     userID,
		Type:       generated.Type,
		Title:      generated.Title,
		Body:       generated.Body,
		Severity:   generated.Severity,
		MealLogID:  generated.MealLogID,
		ReadingID:  generated.ReadingID,
		ExerciseID: generated.ExerciseID,
		Priority:   priority,
		IsActive:   true,
		Range:      string(rangeKey),
		ExpiresAt:  now.Add(15 * time.Minute),
		CreatedAt:  now,
	}
}
