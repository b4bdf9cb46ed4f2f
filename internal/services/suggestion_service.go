package services

import (
	"sort"
	"strconv"
	"time"

	"github.com/halleck44/steady/internal/models"
)

const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
)

func ParseMealSlot(raw string) (string, bool) {
	switch raw {
	case SlotBreakfast, SlotLunch, SlotDinner:
		return raw, true
	default:
		return "", false
	}
}

// SuggestionCandidate is one recommended recipe for the requested slot.
type SuggestionCandidate struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	CarbsG   float64 `json:"carbsG"`
	FiberG   float64 `json:"fiberG"`
	ImageURL string  `json:"imageUrl"`
}

type SuggestionMealReader interface {
	MealLogs(userID uint, start time.Time, end time.Time) ([]models.MealLog, error)
}

type RecipeCatalog interface {
	ListRecipes() ([]models.Recipe, error)
}

type SuggestionService struct {
	meals   SuggestionMealReader
	catalog RecipeCatalog
	now     func() time.Time
}

func NewSuggestionService(meals SuggestionMealReader, catalog RecipeCatalog) *SuggestionService {
	return &SuggestionService{
		meals:   meals,
		catalog: catalog,
		now:     time.Now,
	}
}

// Suggest returns exactly three recipe suggestions for the slot. Any
// failure reading meals or the catalog degrades to the deterministic
// fallback set; no error ever reaches the caller.
func (service *SuggestionService) Suggest(userID uint, slot string, dailyGoal int) []SuggestionCandidate {
	if dailyGoal <= 0 {
		dailyGoal = models.DefaultDailyCarbGoal
	}

	now := service.now()
	threeDaysAgo := now.AddDate(0, 0, -3)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	recentMeals, mealsErr := service.meals.MealLogs(userID, threeDaysAgo, now)

	carbsUsedToday := 0.0
	recentDinner := false
	for _, meal := range recentMeals {
		if !meal.LoggedAt.Before(dayStart) {
			carbsUsedToday += meal.CarbGrams()
		}
		hour := meal.LoggedAt.Hour()
		if hour >= dinnerHourStart && hour <= dinnerHourEnd {
			recentDinner = true
		}
	}

	carbRemaining := float64(dailyGoal) - carbsUsedToday
	if carbRemaining < 0 {
		carbRemaining = 0
	}
	target := SuggestionCarbTarget(slot, carbRemaining, recentDinner)

	if mealsErr != nil {
		return FallbackSuggestions(target)
	}

	recipes, err := service.catalog.ListRecipes()
	if err != nil {
		return FallbackSuggestions(target)
	}

	return rankSuggestions(recipes, target)
}

// SuggestionCarbTarget computes the carb target for one slot given the
// remaining daily budget. A dinner-window meal in the last 3 days caps
// the target at 25g regardless of slot.
func SuggestionCarbTarget(slot string, carbRemaining float64, recentDinner bool) float64 {
	target := 30.0
	switch slot {
	case SlotBreakfast, SlotLunch:
		target = clamp(carbRemaining/2, 25, 45)
	case SlotDinner:
		target = clamp(carbRemaining, 15, 35)
	}
	if recentDinner && target > 25 {
		target = 25
	}
	return target
}

func rankSuggestions(recipes []models.Recipe, target float64) []SuggestionCandidate {
	suitable := make([]models.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if recipe.Carbs >= target-10 && recipe.Carbs <= target+10 {
			suitable = append(suitable, recipe)
		}
	}

	// Higher fiber first; ties keep catalog order.
	sort.SliceStable(suitable, func(i, j int) bool {
		return suitable[i].Fiber > suitable[j].Fiber
	})

	suggestions := make([]SuggestionCandidate, 0, maxSuggestions)
	used := make(map[uint]bool, maxSuggestions)
	for _, recipe := range suitable {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, candidateFromRecipe(recipe))
		used[recipe.ID] = true
	}

	// Pad with any unused recipe that still brings decent fiber, until
	// three are reached or the catalog runs out.
	for _, recipe := range recipes {
		if len(suggestions) == maxSuggestions {
			break
		}
		if used[recipe.ID] || recipe.Fiber < 5 {
			continue
		}
		suggestions = append(suggestions, candidateFromRecipe(recipe))
		used[recipe.ID] = true
	}

	return suggestions
}

const maxSuggestions = 3

func candidateFromRecipe(recipe models.Recipe) SuggestionCandidate {
	imageURL := recipe.ImageURL
	if imageURL == "" {
		imageURL = defaultMealImage
	}
	return SuggestionCandidate{
		ID:       strconv.FormatUint(uint64(recipe.ID), 10),
		Title:    recipe.Name,
		CarbsG:   recipe.Carbs,
		FiberG:   recipe.Fiber,
		ImageURL: imageURL,
	}
}

const defaultMealImage = "/default-meal.jpg"

// FallbackSuggestions is the deterministic degraded-mode suggestion set:
// fixed titles, carbs scaled from the target, fixed fiber values.
func FallbackSuggestions(target float64) []SuggestionCandidate {
	return []SuggestionCandidate{
		{ID: "fallback-1", Title: "High-fiber choice", CarbsG: float64(roundInt(target)), FiberG: 12, ImageURL: defaultMealImage},
		{ID: "fallback-2", Title: "Balanced option", CarbsG: float64(roundInt(target * 0.8)), FiberG: 9, ImageURL: defaultMealImage},
		{ID: "fallback-3", Title: "Light pick", CarbsG: float64(roundInt(target * 0.6)), FiberG: 8, ImageURL: defaultMealImage},
	}
}

func clamp(value float64, low float64, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
