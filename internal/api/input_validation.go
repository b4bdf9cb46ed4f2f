package api

import (
	"errors"
	"time"

	"github.com/halleck44/steady/internal/models"
)

var errInvalidTimestamp = errors.New("invalid timestamp")

// parseLoggedAt accepts an RFC 3339 timestamp and defaults an empty
// value to the current time in the handler's location.
func (handler *Handler) parseLoggedAt(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().In(handler.location), nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errInvalidTimestamp
	}
	return parsed.In(handler.location), nil
}

func validReadingType(readingType string) bool {
	switch readingType {
	case models.ReadingTypeFasting, models.ReadingTypePreMeal, models.ReadingTypePostMeal, models.ReadingTypeRandom:
		return true
	default:
		return false
	}
}

func validGlucoseSource(source string) bool {
	return source == models.GlucoseSourceManual || source == models.GlucoseSourceCGM
}

func validAlertType(alertType string) bool {
	switch alertType {
	case models.AlertNone, models.AlertLow, models.AlertHigh, models.AlertUrgentLow, models.AlertUrgentHigh:
		return true
	default:
		return false
	}
}

func validSleepQuality(quality string) bool {
	switch quality {
	case models.SleepQualityPoor, models.SleepQualityFair, models.SleepQualityGood, models.SleepQualityExcellent:
		return true
	default:
		return false
	}
}

func validEnergyLevel(level int) bool {
	return level >= models.EnergyLevelTired && level <= models.EnergyLevelEnergized
}
