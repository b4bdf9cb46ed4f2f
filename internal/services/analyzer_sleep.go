package services

import (
	"fmt"
	"time"

	"github.com/halleck44/steady/internal/models"
)

// analyzeSleepQualityGlucoseCorrelation compares glucose variance on
// days following restful sleep against days following poor sleep, over
// the trailing 7 days. The "next day" window is 06:00-18:00.
func analyzeSleepQualityGlucoseCorrelation(snapshot Snapshot) *GeneratedInsight {
	if len(snapshot.SleepLogs) < 3 || len(snapshot.Readings) < 6 {
		return nil
	}

	sevenDaysAgo := snapshot.Now.AddDate(0, 0, -7)
	recentCount := 0
	goodVarianceTotal := 0.0
	poorVarianceTotal := 0.0
	goodDays := 0
	poorDays := 0

	for _, sleepLog := range snapshot.SleepLogs {
		if sleepLog.LoggedAt.Before(sevenDaysAgo) {
			continue
		}
		recentCount++

		nextDay := sleepLog.LoggedAt.AddDate(0, 0, 1)
		windowStart := time.Date(nextDay.Year(), nextDay.Month(), nextDay.Day(), 6, 0, 0, 0, nextDay.Location())
		windowEnd := time.Date(nextDay.Year(), nextDay.Month(), nextDay.Day(), 18, 0, 0, 0, nextDay.Location())

		nextDayReadings := readingsBetween(snapshot.Readings, windowStart, windowEnd)
		if len(nextDayReadings) < 3 {
			continue
		}

		values := make([]float64, 0, len(nextDayReadings))
		for _, reading := range nextDayReadings {
			values = append(values, reading.Value)
		}
		dayVariance := variance(values)

		if sleepLog.IsRestful() {
			goodVarianceTotal += dayVariance
			goodDays++
		} else {
			poorVarianceTotal += dayVariance
			poorDays++
		}
	}

	if recentCount < 2 || goodDays == 0 || poorDays == 0 {
		return nil
	}

	averageGoodVariance := goodVarianceTotal / float64(goodDays)
	averagePoorVariance := poorVarianceTotal / float64(poorDays)

	if averagePoorVariance > averageGoodVariance*1.3 {
		return &GeneratedInsight{
			Type:     InsightSleepQualityCorrelation,
			Title:    "Sleep Quality & Glucose Patterns",
			Body:     "Interesting pattern: Days following restful sleep show more stable glucose patterns than days after poor sleep. Prioritizing good sleep hygiene may support your overall wellness goals.",
			Severity: models.SeverityInfo,
		}
	}
	if averageGoodVariance < averagePoorVariance*0.8 && goodDays >= 3 {
		return &GeneratedInsight{
			Type:     InsightSleepQualityCorrelation,
			Title:    "Rest Supporting Stability",
			Body:     "Great news! Your glucose patterns tend to be more stable on days following quality sleep. This suggests your sleep routine is supporting your wellness goals beautifully.",
			Severity: models.SeverityInfo,
		}
	}

	return nil
}

// analyzeSleepDurationPatterns looks at trailing-week sleep durations:
// mostly-short nights earn an opportunity note, consistently optimal
// nights earn a celebration.
func analyzeSleepDurationPatterns(snapshot Snapshot) *GeneratedInsight {
	if len(snapshot.SleepLogs) < 4 {
		return nil
	}

	sevenDaysAgo := snapshot.Now.AddDate(0, 0, -7)
	durations := make([]float64, 0, len(snapshot.SleepLogs))
	for _, sleepLog := range snapshot.SleepLogs {
		if sleepLog.DurationHours == nil || sleepLog.LoggedAt.Before(sevenDaysAgo) {
			continue
		}
		durations = append(durations, *sleepLog.DurationHours)
	}
	if len(durations) < 3 {
		return nil
	}

	averageDuration := mean(durations)
	shortNights := 0
	optimalNights := 0
	for _, duration := range durations {
		if duration < 6.5 {
			shortNights++
		}
		if duration >= 7.5 && duration <= 9 {
			optimalNights++
		}
	}
	shortPercentage := float64(shortNights) / float64(len(durations)) * 100
	optimalPercentage := float64(optimalNights) / float64(len(durations)) * 100

	if shortPercentage >= 60 && averageDuration < 6.5 {
		return &GeneratedInsight{
			Type:  InsightSleepDurationPatterns,
			Title: "Sleep Duration Opportunity",
			Body: fmt.Sprintf(
				"You've been averaging %.1f hours of sleep recently. Most adults benefit from 7-9 hours for optimal wellness. Consider gradually adjusting your bedtime to support better rest and recovery.",
				averageDuration,
			),
			Severity: models.SeverityInfo,
		}
	}
	if optimalPercentage >= 70 && averageDuration >= 7.5 {
		return &GeneratedInsight{
			Type:  InsightSleepDurationPatterns,
			Title: "Excellent Sleep Consistency! 🌙",
			Body: fmt.Sprintf(
				"Fantastic! You're averaging %.1f hours of sleep and hitting the optimal 7-9 hour range consistently. This steady sleep routine supports your overall wellness beautifully.",
				averageDuration,
			),
			Severity: models.SeverityInfo,
		}
	}

	return nil
}
