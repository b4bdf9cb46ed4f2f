package api

import (
	"log"
	"time"

	"github.com/halleck44/steady/internal/cache"
	"github.com/halleck44/steady/internal/db"
	"github.com/halleck44/steady/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, store cache.Store, worker *services.RecomputeWorker, location *time.Location, logger *log.Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = log.Default()
	}

	repositories := db.NewRepositories(database)
	events := db.NewEventStore(repositories)

	return &Handler{
		location:     location,
		logger:       logger,
		repositories: repositories,
		insights:     services.NewInsightService(events, repositories.Users, store, repositories.Insights, worker, logger),
		suggestions:  services.NewSuggestionService(events, events),
		recipeCache:  store,
	}
}
