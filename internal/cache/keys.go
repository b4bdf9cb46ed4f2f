package cache

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"
)

// TTLs for the three cache families.
const (
	InsightTTL    = 15 * time.Minute
	DailyStatsTTL = time.Hour
	RecipeTTL     = 5 * time.Minute
)

// InsightKey scopes a cached insight list to one user and range, e.g.
// "insights:42:7d". Two distinct scopes never produce the same key.
func InsightKey(userID uint, rangeKey string) string {
	return fmt.Sprintf("insights:%d:%s", userID, rangeKey)
}

// InsightKeyPrefix matches every insight entry belonging to a user.
func InsightKeyPrefix(userID uint) string {
	return fmt.Sprintf("insights:%d:", userID)
}

// DailyStatsKey scopes cached daily aggregates to one user and calendar
// date, e.g. "stats:42:2026-08-31".
func DailyStatsKey(userID uint, day time.Time) string {
	return fmt.Sprintf("stats:%d:%s", userID, day.Format("2006-01-02"))
}

// DailyStatsKeyPrefix matches every daily-stats entry belonging to a user.
func DailyStatsKeyPrefix(userID uint) string {
	return fmt.Sprintf("stats:%d:", userID)
}

// RecipeListKey scopes a cached paginated catalog listing to a plan tier
// and a hash of the filter parameters.
func RecipeListKey(planTier string, category string, search string, limit int, offset int) string {
	return fmt.Sprintf("meals:%s:%s", planTier, filterHash(category, search, limit, offset))
}

// RecipeKey scopes a cached single catalog record.
func RecipeKey(recipeID uint) string {
	return fmt.Sprintf("meal:%d", recipeID)
}

func filterHash(category string, search string, limit int, offset int) string {
	canonical := fmt.Sprintf("category=%s&search=%s&limit=%d&offset=%d",
		strings.ToLower(strings.TrimSpace(category)),
		strings.ToLower(strings.TrimSpace(search)),
		limit,
		offset,
	)
	hasher := fnv.New64a()
	hasher.Write([]byte(canonical))
	return fmt.Sprintf("%016x", hasher.Sum64())
}

// DeleteByPrefix drops every entry whose key starts with prefix.
func DeleteByPrefix(store Store, prefix string) {
	for _, key := range store.Keys() {
		if strings.HasPrefix(key, prefix) {
			store.Delete(key)
		}
	}
}
