package api

import (
	"log"
	"time"

	"github.com/halleck44/steady/internal/cache"
	"github.com/halleck44/steady/internal/db"
	"github.com/halleck44/steady/internal/services"
)

type Handler struct {
	location     *time.Location
	logger       *log.Logger
	repositories *db.Repositories
	insights     *services.InsightService
	suggestions  *services.SuggestionService
	recipeCache  cache.Store
}
