package services

import "time"

// Insight kinds, in pipeline declaration order.
const (
	InsightPostMealRise            = "post_meal_rise"
	InsightCarbBudgetTrend         = "carb_budget_trend"
	InsightEveningPattern          = "evening_pattern"
	InsightExerciseConsistency     = "exercise_consistency"
	InsightExerciseGlucoseImpact   = "exercise_glucose_impact"
	InsightCGMTimeInRange          = "cgm_time_in_range"
	InsightCGMTrendPatterns        = "cgm_trend_patterns"
	InsightCGMAlertFrequency       = "cgm_alert_frequency"
	InsightSleepQualityCorrelation = "sleep_quality_glucose_correlation"
	InsightEnergyLevelCorrelation  = "energy_level_glucose_correlation"
	InsightSleepDurationPatterns   = "sleep_duration_patterns"
)

// GeneratedInsight is one derived observation. The body is a finished
// sentence with numbers already rounded and interpolated, never a
// template for the caller to fill.
type GeneratedInsight struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Severity   string `json:"severity"`
	MealLogID  *uint  `json:"mealId,omitempty"`
	ReadingID  *uint  `json:"readingId,omitempty"`
	ExerciseID *uint  `json:"exerciseId,omitempty"`
}

// InsightRange is the caller-supplied outer window for insight
// generation. Several analyzers keep their own tighter inner windows
// regardless of the outer range.
type InsightRange string

const (
	Range7d  InsightRange = "7d"
	Range14d InsightRange = "14d"
	Range30d InsightRange = "30d"
)

// AllInsightRanges lists every valid range, used when invalidating a
// user's cached insights.
func AllInsightRanges() []InsightRange {
	return []InsightRange{Range7d, Range14d, Range30d}
}

func ParseInsightRange(raw string) (InsightRange, bool) {
	switch InsightRange(raw) {
	case Range7d, Range14d, Range30d:
		return InsightRange(raw), true
	default:
		return "", false
	}
}

func (rangeKey InsightRange) Days() int {
	switch rangeKey {
	case Range14d:
		return 14
	case Range30d:
		return 30
	default:
		return 7
	}
}

func (rangeKey InsightRange) Window(now time.Time) (time.Time, time.Time) {
	return now.AddDate(0, 0, -rangeKey.Days()), now
}
