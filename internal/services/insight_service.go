package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/halleck44/steady/internal/cache"
	"github.com/halleck44/steady/internal/models"
)

// ErrDataUnavailable reports that the event store could not be read at
// all. It is the only engine error that propagates to callers; anything
// less degrades to "no insight" or a fallback result.
var ErrDataUnavailable = errors.New("event store unavailable")

// EventStore is the engine's read-only view of a user's logs.
type EventStore interface {
	MealLogs(userID uint, start time.Time, end time.Time) ([]models.MealLog, error)
	GlucoseReadings(userID uint, start time.Time, end time.Time) ([]models.GlucoseReading, error)
	ExerciseLogs(userID uint, start time.Time, end time.Time) ([]models.ExerciseLog, error)
	SleepLogs(userID uint, start time.Time, end time.Time) ([]models.SleepLog, error)
	EnergyLogs(userID uint, start time.Time, end time.Time) ([]models.EnergyLog, error)
}

type InsightUserReader interface {
	FindByID(userID uint) (models.User, error)
}

// InsightHistoryStore persists generated insights for the calling
// layer's records. Persistence is best-effort: failures are logged and
// never fail a generation.
type InsightHistoryStore interface {
	ReplaceActive(userID uint, insights []models.Insight) error
	DeleteExpired(userID uint, now time.Time) error
}

type InsightService struct {
	events  EventStore
	users   InsightUserReader
	store   cache.Store
	history InsightHistoryStore
	worker  *RecomputeWorker
	logger  *log.Logger
	now     func() time.Time
}

func NewInsightService(events EventStore, users InsightUserReader, store cache.Store, history InsightHistoryStore, worker *RecomputeWorker, logger *log.Logger) *InsightService {
	if logger == nil {
		logger = log.Default()
	}
	return &InsightService{
		events:  events,
		users:   users,
		store:   store,
		history: history,
		worker:  worker,
		logger:  logger,
		now:     time.Now,
	}
}

// Insights returns the cached top 3 for the range, computing and
// caching synchronously on a miss. forceRefresh bypasses the cache
// check but still overwrites the entry with the fresh result.
func (service *InsightService) Insights(userID uint, rangeKey InsightRange, forceRefresh bool) ([]GeneratedInsight, error) {
	key := cache.InsightKey(userID, string(rangeKey))
	if !forceRefresh {
		if cached, ok := service.store.Get(key); ok {
			if insights, ok := cached.([]GeneratedInsight); ok {
				return insights, nil
			}
		}
	}
	return service.GenerateAndCache(userID, rangeKey)
}

// GenerateAndCache always recomputes the range's insights, stores them
// under a fresh TTL, and records them in the history store.
func (service *InsightService) GenerateAndCache(userID uint, rangeKey InsightRange) ([]GeneratedInsight, error) {
	now := service.now()
	snapshot, err := service.loadSnapshot(userID, rangeKey, now)
	if err != nil {
		return nil, err
	}

	insights := RunInsightPipeline(snapshot)
	service.store.Set(cache.InsightKey(userID, string(rangeKey)), insights, cache.InsightTTL)
	service.persistHistory(userID, rangeKey, insights, now)
	return insights, nil
}

// Snapshot query bounds. Logs come back newest first, so the caps keep
// the most recent entries in wide ranges.
const (
	maxSnapshotMeals     = 150
	maxSnapshotReadings  = 150
	maxSnapshotExercises = 100
)

func (service *InsightService) loadSnapshot(userID uint, rangeKey InsightRange, now time.Time) (Snapshot, error) {
	start, end := rangeKey.Window(now)

	user, err := service.users.FindByID(userID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: load user %d: %v", ErrDataUnavailable, userID, err)
	}

	meals, err := service.events.MealLogs(userID, start, end)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: meal logs: %v", ErrDataUnavailable, err)
	}
	if len(meals) > maxSnapshotMeals {
		meals = meals[:maxSnapshotMeals]
	}
	readings, err := service.events.GlucoseReadings(userID, start, end)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: glucose readings: %v", ErrDataUnavailable, err)
	}
	if len(readings) > maxSnapshotReadings {
		readings = readings[:maxSnapshotReadings]
	}
	exercises, err := service.events.ExerciseLogs(userID, start, end)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: exercise logs: %v", ErrDataUnavailable, err)
	}
	if len(exercises) > maxSnapshotExercises {
		exercises = exercises[:maxSnapshotExercises]
	}
	sleepLogs, err := service.events.SleepLogs(userID, start, end)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: sleep logs: %v", ErrDataUnavailable, err)
	}
	energyLogs, err := service.events.EnergyLogs(userID, start, end)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: energy logs: %v", ErrDataUnavailable, err)
	}

	return Snapshot{
		UserID:        userID,
		Now:           now,
		DailyCarbGoal: user.CarbGoal(),
		Meals:         meals,
		Readings:      readings,
		Exercises:     exercises,
		SleepLogs:     sleepLogs,
		EnergyLogs:    energyLogs,
	}, nil
}

func (service *InsightService) persistHistory(userID uint, rangeKey InsightRange, insights []GeneratedInsight, now time.Time) {
	if service.history == nil {
		return
	}
	if err := service.history.DeleteExpired(userID, now); err != nil {
		service.logger.Printf("clear expired insights for user %d: %v", userID, err)
	}

	records := make([]models.Insight, 0, len(insights))
	for _, insight := range insights {
		records = append(records, NewInsightRecord(userID, rangeKey, insight, now))
	}
	if err := service.history.ReplaceActive(userID, records); err != nil {
		service.logger.Printf("persist insights for user %d: %v", userID, err)
	}
}

// DailyStatsFor returns the cached aggregate for the calendar day,
// computing it from the event store on a miss.
func (service *InsightService) DailyStatsFor(userID uint, day time.Time) (DailyStats, error) {
	key := cache.DailyStatsKey(userID, day)
	if cached, ok := service.store.Get(key); ok {
		if stats, ok := cached.(DailyStats); ok {
			return stats, nil
		}
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	meals, err := service.events.MealLogs(userID, dayStart, dayEnd)
	if err != nil {
		return DailyStats{}, fmt.Errorf("%w: meal logs: %v", ErrDataUnavailable, err)
	}
	readings, err := service.events.GlucoseReadings(userID, dayStart, dayEnd)
	if err != nil {
		return DailyStats{}, fmt.Errorf("%w: glucose readings: %v", ErrDataUnavailable, err)
	}

	stats := BuildDailyStats(meals, readings, day)
	service.store.Set(key, stats, cache.DailyStatsTTL)
	return stats, nil
}

// InvalidateUser drops every insight and daily-stats cache entry
// belonging to the user.
func (service *InsightService) InvalidateUser(userID uint) {
	cache.DeleteByPrefix(service.store, cache.InsightKeyPrefix(userID))
	cache.DeleteByPrefix(service.store, cache.DailyStatsKeyPrefix(userID))
}

// OnLogWrite runs the write-path cache contract: synchronously drop the
// user's three range entries and today's stats entry, then queue a
// fire-and-forget 7d recompute. The recompute never blocks or fails the
// triggering write.
func (service *InsightService) OnLogWrite(userID uint) {
	for _, rangeKey := range AllInsightRanges() {
		service.store.Delete(cache.InsightKey(userID, string(rangeKey)))
	}
	service.store.Delete(cache.DailyStatsKey(userID, service.now()))

	if service.worker == nil {
		return
	}
	service.worker.Submit("insight recompute", func() error {
		_, err := service.GenerateAndCache(userID, Range7d)
		return err
	})
}
