package services

import (
	"strings"
	"testing"
	"time"

	"github.com/halleck44/steady/internal/models"
)

// sleepCorrelationSnapshot builds one restful night followed by stable
// readings and two poor nights followed by the given next-day values.
func sleepCorrelationSnapshot(poorDayValues [3]float64) Snapshot {
	night := func(day int, quality string) models.SleepLog {
		return sleepAt(uint(day), time.Date(2026, 2, day, 22, 0, 0, 0, time.UTC), 7, quality)
	}
	nextDayReading := func(id uint, day int, hour int, value float64) models.GlucoseReading {
		return readingAt(id, time.Date(2026, 2, day, hour, 0, 0, 0, time.UTC), value)
	}

	readings := []models.GlucoseReading{
		// Day after restful sleep on the 24th.
		nextDayReading(1, 25, 8, 100),
		nextDayReading(2, 25, 12, 101),
		nextDayReading(3, 25, 16, 102),
		// Days after poor sleep on the 25th and 26th.
		nextDayReading(4, 26, 8, poorDayValues[0]),
		nextDayReading(5, 26, 12, poorDayValues[1]),
		nextDayReading(6, 26, 16, poorDayValues[2]),
		nextDayReading(7, 27, 8, poorDayValues[0]),
		nextDayReading(8, 27, 12, poorDayValues[1]),
		nextDayReading(9, 27, 16, poorDayValues[2]),
	}

	return Snapshot{
		Now: fixtureNow,
		SleepLogs: []models.SleepLog{
			night(24, models.SleepQualityGood),
			night(25, models.SleepQualityPoor),
			night(26, models.SleepQualityPoor),
		},
		Readings: readings,
	}
}

func TestAnalyzeSleepQualityCorrelationFlagsPoorSleepVolatility(t *testing.T) {
	t.Parallel()

	insight := analyzeSleepQualityGlucoseCorrelation(sleepCorrelationSnapshot([3]float64{80, 140, 200}))
	if insight == nil {
		t.Fatal("expected volatile post-poor-sleep days to fire")
	}
	if insight.Type != InsightSleepQualityCorrelation || insight.Severity != models.SeverityInfo {
		t.Fatalf("unexpected insight: %+v", insight)
	}
	if !strings.Contains(insight.Body, "restful sleep") {
		t.Fatalf("unexpected body %q", insight.Body)
	}
}

func TestAnalyzeSleepQualityCorrelationEqualVarianceStaysQuiet(t *testing.T) {
	t.Parallel()

	if insight := analyzeSleepQualityGlucoseCorrelation(sleepCorrelationSnapshot([3]float64{100, 101, 102})); insight != nil {
		t.Fatalf("expected matching variance to stay quiet, got %+v", insight)
	}
}

// restfulStabilitySnapshot builds three restful nights and one poor
// night, each followed by a three-reading day whose spread sets the
// per-day variance: {100, 100, 100+3x} has variance 2x*x.
func restfulStabilitySnapshot(goodSpread float64, poorSpread float64) Snapshot {
	day := func(id uint, dayOfMonth int, spread float64) []models.GlucoseReading {
		return []models.GlucoseReading{
			readingAt(id, time.Date(2026, 2, dayOfMonth, 16, 0, 0, 0, time.UTC), 100+3*spread),
			readingAt(id+1, time.Date(2026, 2, dayOfMonth, 12, 0, 0, 0, time.UTC), 100),
			readingAt(id+2, time.Date(2026, 2, dayOfMonth, 8, 0, 0, 0, time.UTC), 100),
		}
	}

	readings := day(1, 27, poorSpread)
	readings = append(readings, day(4, 26, goodSpread)...)
	readings = append(readings, day(7, 25, goodSpread)...)
	readings = append(readings, day(10, 24, goodSpread)...)

	return Snapshot{
		Now: fixtureNow,
		SleepLogs: []models.SleepLog{
			sleepAt(1, time.Date(2026, 2, 26, 22, 0, 0, 0, time.UTC), 6, models.SleepQualityPoor),
			sleepAt(2, time.Date(2026, 2, 25, 22, 0, 0, 0, time.UTC), 8, models.SleepQualityGood),
			sleepAt(3, time.Date(2026, 2, 24, 22, 0, 0, 0, time.UTC), 8, models.SleepQualityGood),
			sleepAt(4, time.Date(2026, 2, 23, 22, 0, 0, 0, time.UTC), 8, models.SleepQualityGood),
		},
		Readings: readings,
	}
}

func TestAnalyzeSleepQualityCorrelationCelebratesRestfulStability(t *testing.T) {
	t.Parallel()

	// Good-day variance 128 vs poor-day variance 162: the poor days are
	// not volatile enough for the first branch (162 <= 128*1.3) but the
	// good days clear the stability bar (128 < 162*0.8).
	insight := analyzeSleepQualityGlucoseCorrelation(restfulStabilitySnapshot(8, 9))
	if insight == nil {
		t.Fatal("expected stable post-restful-sleep days to fire")
	}
	if insight.Type != InsightSleepQualityCorrelation || insight.Severity != models.SeverityInfo {
		t.Fatalf("unexpected insight: %+v", insight)
	}
	if !strings.Contains(insight.Title, "Rest Supporting Stability") {
		t.Fatalf("unexpected title %q", insight.Title)
	}
}

func TestAnalyzeSleepQualityCorrelationStabilityNeedsAClearGap(t *testing.T) {
	t.Parallel()

	// Good 162 vs poor 200 misses both bars: 200 <= 162*1.3 and
	// 162 >= 200*0.8.
	if insight := analyzeSleepQualityGlucoseCorrelation(restfulStabilitySnapshot(9, 10)); insight != nil {
		t.Fatalf("expected a narrow variance gap to stay quiet, got %+v", insight)
	}
}

func sleepDurationSnapshot(durations []float64) Snapshot {
	logs := make([]models.SleepLog, 0, len(durations))
	for index, duration := range durations {
		logs = append(logs, sleepAt(uint(index+1), fixtureNow.AddDate(0, 0, -(index+1)), duration, models.SleepQualityFair))
	}
	return Snapshot{Now: fixtureNow, SleepLogs: logs}
}

func TestAnalyzeSleepDurationPatternsFlagsShortNights(t *testing.T) {
	t.Parallel()

	insight := analyzeSleepDurationPatterns(sleepDurationSnapshot([]float64{6, 6, 6, 6.8}))
	if insight == nil {
		t.Fatal("expected mostly-short nights to fire")
	}
	if !strings.Contains(insight.Title, "Opportunity") {
		t.Fatalf("unexpected title %q", insight.Title)
	}
	if !strings.Contains(insight.Body, "6.2 hours") {
		t.Fatalf("expected one-decimal average, got %q", insight.Body)
	}
}

func TestAnalyzeSleepDurationPatternsCelebratesOptimalNights(t *testing.T) {
	t.Parallel()

	insight := analyzeSleepDurationPatterns(sleepDurationSnapshot([]float64{8, 8, 8, 7.6}))
	if insight == nil {
		t.Fatal("expected consistently optimal nights to fire")
	}
	if !strings.Contains(insight.Title, "Excellent Sleep Consistency") {
		t.Fatalf("unexpected title %q", insight.Title)
	}
	if !strings.Contains(insight.Body, "7.9 hours") {
		t.Fatalf("expected one-decimal average, got %q", insight.Body)
	}
}

func TestAnalyzeSleepDurationPatternsQuietCases(t *testing.T) {
	t.Parallel()

	// Seven-hour nights are neither short nor inside the optimal band.
	if insight := analyzeSleepDurationPatterns(sleepDurationSnapshot([]float64{7, 7, 7, 7})); insight != nil {
		t.Fatalf("expected unremarkable durations to stay quiet, got %+v", insight)
	}

	// Entries without a duration never count toward the minimum.
	logs := []models.SleepLog{
		{ID: 1, UserID: 1, Quality: models.SleepQualityFair, LoggedAt: fixtureNow.AddDate(0, 0, -1)},
		{ID: 2, UserID: 1, Quality: models.SleepQualityFair, LoggedAt: fixtureNow.AddDate(0, 0, -2)},
		sleepAt(3, fixtureNow.AddDate(0, 0, -3), 5, models.SleepQualityPoor),
		sleepAt(4, fixtureNow.AddDate(0, 0, -4), 5, models.SleepQualityPoor),
	}
	if insight := analyzeSleepDurationPatterns(Snapshot{Now: fixtureNow, SleepLogs: logs}); insight != nil {
		t.Fatalf("expected fewer than 3 usable durations to stay quiet, got %+v", insight)
	}
}
