package services

import (
	"fmt"
	"time"

	"github.com/halleck44/steady/internal/models"
)

const weeklyExerciseTargetMinutes = 150

// analyzeExerciseConsistency reports on total exercise minutes in the
// snapshot: under half the weekly target earns a nudge, meeting the
// target earns a celebration, anything between stays quiet.
func analyzeExerciseConsistency(snapshot Snapshot) *GeneratedInsight {
	if len(snapshot.Exercises) < 3 {
		return nil
	}

	weeklyMinutes := 0
	for _, session := range snapshot.Exercises {
		weeklyMinutes += session.DurationMinutes
	}
	progressPercent := roundInt(float64(weeklyMinutes) / weeklyExerciseTargetMinutes * 100)

	if weeklyMinutes < 75 {
		return &GeneratedInsight{
			Type:  InsightExerciseConsistency,
			Title: "Boost Your Movement",
			Body: fmt.Sprintf(
				"You've logged %d minutes of exercise this week (%d%% of your goal). Even 10-15 minutes of daily walking can help improve your overall wellness. Consider starting with gentle activities that you enjoy.",
				weeklyMinutes, progressPercent,
			),
			Severity: models.SeverityInfo,
		}
	}
	if weeklyMinutes >= weeklyExerciseTargetMinutes {
		return &GeneratedInsight{
			Type:  InsightExerciseConsistency,
			Title: "Great Exercise Consistency! 🎉",
			Body: fmt.Sprintf(
				"Excellent work! You've achieved %d minutes of exercise this week (%d%% of your goal). Regular movement like this supports your overall wellness and can help with maintaining healthy habits.",
				weeklyMinutes, progressPercent,
			),
			Severity: models.SeverityInfo,
		}
	}

	return nil
}

// analyzeExerciseGlucoseImpact pairs each session with a reading up to
// 2 hours before and one 30 minutes to 4 hours after, then looks at the
// average change across sessions.
func analyzeExerciseGlucoseImpact(snapshot Snapshot) *GeneratedInsight {
	if len(snapshot.Exercises) < 2 || len(snapshot.Readings) < 4 {
		return nil
	}

	pairedSessions := 0
	totalChange := 0.0
	for _, session := range snapshot.Exercises {
		sessionTime := session.LoggedAt

		preReading := firstReadingBetween(snapshot.Readings, sessionTime.Add(-2*time.Hour), sessionTime)
		postReading := firstReadingBetween(snapshot.Readings, sessionTime.Add(30*time.Minute), sessionTime.Add(4*time.Hour))
		if preReading == nil || postReading == nil {
			continue
		}

		totalChange += postReading.Value - preReading.Value
		pairedSessions++
	}

	if pairedSessions < 2 {
		return nil
	}

	averageChange := totalChange / float64(pairedSessions)
	if averageChange <= -20 {
		return &GeneratedInsight{
			Type:  InsightExerciseGlucoseImpact,
			Title: "Exercise Supporting Your Wellness",
			Body: fmt.Sprintf(
				"Great observation! Your recent exercise sessions appear to correlate with improved glucose patterns (average change: %d mg/dL). This suggests your movement routine may be supporting your overall wellness goals.",
				roundInt(averageChange),
			),
			Severity: models.SeverityInfo,
		}
	}
	if averageChange >= 15 {
		return &GeneratedInsight{
			Type:  InsightExerciseGlucoseImpact,
			Title: "Exercise Timing Insight",
			Body: fmt.Sprintf(
				"Consider the timing of your exercise sessions. Your recent workouts show an average glucose change of +%d mg/dL afterward. This might be related to exercise intensity, timing, or individual response patterns.",
				roundInt(averageChange),
			),
			Severity: models.SeverityInfo,
		}
	}

	return nil
}
