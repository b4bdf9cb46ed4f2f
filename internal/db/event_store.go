package db

import (
	"time"

	"github.com/halleck44/steady/internal/models"
)

// EventStore adapts the per-entity repositories into the single
// read-only view the insight engine consumes.
type EventStore struct {
	repositories *Repositories
}

func NewEventStore(repositories *Repositories) *EventStore {
	return &EventStore{repositories: repositories}
}

func (store *EventStore) MealLogs(userID uint, start time.Time, end time.Time) ([]models.MealLog, error) {
	return store.repositories.MealLogs.ListByUserRange(userID, start, end)
}

func (store *EventStore) GlucoseReadings(userID uint, start time.Time, end time.Time) ([]models.GlucoseReading, error) {
	return store.repositories.GlucoseReadings.ListByUserRange(userID, start, end)
}

func (store *EventStore) ExerciseLogs(userID uint, start time.Time, end time.Time) ([]models.ExerciseLog, error) {
	return store.repositories.ExerciseLogs.ListByUserRange(userID, start, end)
}

func (store *EventStore) SleepLogs(userID uint, start time.Time, end time.Time) ([]models.SleepLog, error) {
	return store.repositories.SleepLogs.ListByUserRange(userID, start, end)
}

func (store *EventStore) EnergyLogs(userID uint, start time.Time, end time.Time) ([]models.EnergyLog, error) {
	return store.repositories.EnergyLogs.ListByUserRange(userID, start, end)
}

// ListRecipes satisfies the suggestion solver's catalog interface.
func (store *EventStore) ListRecipes() ([]models.Recipe, error) {
	return store.repositories.Recipes.ListAll()
}
