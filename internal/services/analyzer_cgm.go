package services

import (
	"fmt"

	"github.com/halleck44/steady/internal/models"
)

const (
	targetRangeMin = 70.0
	targetRangeMax = 180.0
)

// analyzeCGMTimeInRange reports the percentage of CGM readings inside
// the 70-180 mg/dL band, once at least 20 CGM readings exist.
func analyzeCGMTimeInRange(snapshot Snapshot) *GeneratedInsight {
	cgmReadings := make([]models.GlucoseReading, 0, len(snapshot.Readings))
	for _, reading := range snapshot.Readings {
		if reading.IsCGM() {
			cgmReadings = append(cgmReadings, reading)
		}
	}
	if len(cgmReadings) < 20 {
		return nil
	}

	inRange := 0
	for _, reading := range cgmReadings {
		if reading.Value >= targetRangeMin && reading.Value <= targetRangeMax {
			inRange++
		}
	}
	timeInRange := roundInt(float64(inRange) / float64(len(cgmReadings)) * 100)

	if timeInRange >= 70 {
		return &GeneratedInsight{
			Type:  InsightCGMTimeInRange,
			Title: "Excellent Glucose Stability",
			Body: fmt.Sprintf(
				"Your CGM shows %d%% time in target range (70-180 mg/dL). This suggests consistent wellness patterns. Keep up the great work with your current routine!",
				timeInRange,
			),
			Severity: models.SeverityInfo,
		}
	}
	if timeInRange < 50 {
		return &GeneratedInsight{
			Type:  InsightCGMTimeInRange,
			Title: "Glucose Pattern Opportunity",
			Body: fmt.Sprintf(
				"Your CGM shows %d%% time in target range. Consider reviewing meal timing, portions, and stress management techniques to support more stable patterns.",
				timeInRange,
			),
			Severity: models.SeverityWarn,
		}
	}

	return nil
}

// analyzeCGMTrendPatterns is a permanent no-op: the reading model has no
// trend-direction field yet, so there is nothing to analyze. It stays in
// the pipeline to hold its slot until trend data lands.
func analyzeCGMTrendPatterns(Snapshot) *GeneratedInsight {
	return nil
}

// analyzeCGMAlertFrequency looks at CGM readings carrying an alert: any
// urgent alert warns immediately, more than 10 total alerts earns a
// gentler note.
func analyzeCGMAlertFrequency(snapshot Snapshot) *GeneratedInsight {
	totalAlerts := 0
	urgentAlerts := 0
	for _, reading := range snapshot.Readings {
		if !reading.IsCGM() || !reading.HasAlert() {
			continue
		}
		totalAlerts++
		if reading.IsUrgentAlert() {
			urgentAlerts++
		}
	}
	if totalAlerts == 0 {
		return nil
	}

	if urgentAlerts > 0 {
		return &GeneratedInsight{
			Type:  InsightCGMAlertFrequency,
			Title: "Glucose Alert Patterns",
			Body: fmt.Sprintf(
				"Your CGM recorded %d urgent alert(s) recently. Consider discussing these patterns with your healthcare provider for personalized guidance.",
				urgentAlerts,
			),
			Severity: models.SeverityWarn,
		}
	}
	if totalAlerts > 10 {
		return &GeneratedInsight{
			Type:  InsightCGMAlertFrequency,
			Title: "CGM Alert Awareness",
			Body: fmt.Sprintf(
				"Your CGM shows %d alerts in this period. Focus on consistent meal timing and stress management to reduce alert frequency.",
				totalAlerts,
			),
			Severity: models.SeverityInfo,
		}
	}

	return nil
}
