package services

import (
	"time"

	"github.com/halleck44/steady/internal/models"
)

// analyzeEnergyLevelGlucoseCorrelation compares same-day average glucose
// (08:00-20:00) on energized days against tired days over the trailing
// 7 days.
func analyzeEnergyLevelGlucoseCorrelation(snapshot Snapshot) *GeneratedInsight {
	if len(snapshot.EnergyLogs) < 3 || len(snapshot.Readings) < 6 {
		return nil
	}

	sevenDaysAgo := snapshot.Now.AddDate(0, 0, -7)
	recentCount := 0
	highEnergyTotal := 0.0
	lowEnergyTotal := 0.0
	highEnergyDays := 0
	lowEnergyDays := 0

	for _, energyLog := range snapshot.EnergyLogs {
		if energyLog.LoggedAt.Before(sevenDaysAgo) {
			continue
		}
		recentCount++

		day := energyLog.LoggedAt
		windowStart := time.Date(day.Year(), day.Month(), day.Day(), 8, 0, 0, 0, day.Location())
		windowEnd := time.Date(day.Year(), day.Month(), day.Day(), 20, 0, 0, 0, day.Location())

		dayReadings := readingsBetween(snapshot.Readings, windowStart, windowEnd)
		if len(dayReadings) < 2 {
			continue
		}

		values := make([]float64, 0, len(dayReadings))
		for _, reading := range dayReadings {
			values = append(values, reading.Value)
		}
		dayAverage := mean(values)

		switch {
		case energyLog.Level >= models.EnergyLevelEnergized:
			highEnergyTotal += dayAverage
			highEnergyDays++
		case energyLog.Level <= models.EnergyLevelTired:
			lowEnergyTotal += dayAverage
			lowEnergyDays++
		}
	}

	if recentCount < 3 || highEnergyDays == 0 || lowEnergyDays == 0 {
		return nil
	}

	averageHighEnergy := highEnergyTotal / float64(highEnergyDays)
	averageLowEnergy := lowEnergyTotal / float64(lowEnergyDays)

	if averageHighEnergy < averageLowEnergy-15 {
		return &GeneratedInsight{
			Type:     InsightEnergyLevelCorrelation,
			Title:    "Energy & Glucose Connection",
			Body:     "Your energized mornings tend to align with more balanced glucose patterns throughout the day. This suggests your energy levels and glucose wellness support each other well.",
			Severity: models.SeverityInfo,
		}
	}
	if averageLowEnergy > averageHighEnergy+20 {
		return &GeneratedInsight{
			Type:     InsightEnergyLevelCorrelation,
			Title:    "Morning Energy Insight",
			Body:     "On mornings when you feel tired, your glucose patterns tend to run slightly higher during the day. Gentle morning movement or consistent sleep timing might help support both energy and balance.",
			Severity: models.SeverityInfo,
		}
	}

	return nil
}
