package services

import (
	"errors"
	"testing"
	"time"

	"github.com/halleck44/steady/internal/models"
)

type stubMealReader struct {
	meals []models.MealLog
	err   error
}

func (stub stubMealReader) MealLogs(userID uint, start time.Time, end time.Time) ([]models.MealLog, error) {
	return stub.meals, stub.err
}

type stubCatalog struct {
	recipes []models.Recipe
	err     error
}

func (stub stubCatalog) ListRecipes() ([]models.Recipe, error) {
	return stub.recipes, stub.err
}

func newSuggestionServiceForTest(meals stubMealReader, catalog stubCatalog) *SuggestionService {
	service := NewSuggestionService(meals, catalog)
	service.now = func() time.Time { return fixtureNow }
	return service
}

func TestSuggestionCarbTargetBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		slot          string
		carbRemaining float64
		recentDinner  bool
		want          float64
	}{
		{"breakfast clamps high", SlotBreakfast, 200, false, 45},
		{"breakfast clamps low", SlotBreakfast, 30, false, 25},
		{"lunch midpoint", SlotLunch, 60, false, 30},
		{"dinner clamps high", SlotDinner, 100, false, 35},
		{"dinner clamps low", SlotDinner, 5, false, 15},
		{"dinner bias caps breakfast", SlotBreakfast, 200, true, 25},
		{"dinner bias leaves low targets alone", SlotDinner, 20, true, 20},
	}
	for _, testCase := range cases {
		if got := SuggestionCarbTarget(testCase.slot, testCase.carbRemaining, testCase.recentDinner); got != testCase.want {
			t.Fatalf("%s: expected target %.0f, got %.0f", testCase.name, testCase.want, got)
		}
	}
}

func TestSuggestRanksByFiberWithinTargetBand(t *testing.T) {
	t.Parallel()

	catalog := stubCatalog{recipes: []models.Recipe{
		{ID: 1, Name: "Moderate Fiber", Carbs: 40, Fiber: 5},
		{ID: 2, Name: "High Fiber", Carbs: 50, Fiber: 10},
		{ID: 3, Name: "High Fiber Tie", Carbs: 45, Fiber: 10},
		{ID: 4, Name: "Low Fiber", Carbs: 36, Fiber: 2},
		{ID: 5, Name: "Out Of Band", Carbs: 80, Fiber: 20},
	}}
	// No meals: a 100g goal halves to 50 and clamps to the 45 ceiling,
	// so the band is 35-55g.
	service := newSuggestionServiceForTest(stubMealReader{}, catalog)

	suggestions := service.Suggest(1, SlotBreakfast, 100)
	if len(suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Title != "High Fiber" || suggestions[1].Title != "High Fiber Tie" {
		t.Fatalf("expected fiber ties to keep catalog order, got %q then %q", suggestions[0].Title, suggestions[1].Title)
	}
	if suggestions[2].Title != "Moderate Fiber" {
		t.Fatalf("expected third pick by fiber, got %q", suggestions[2].Title)
	}
	if suggestions[0].ImageURL != "/default-meal.jpg" {
		t.Fatalf("expected missing images to fall back, got %q", suggestions[0].ImageURL)
	}
}

func TestSuggestPadsWithHighFiberOutliers(t *testing.T) {
	t.Parallel()

	catalog := stubCatalog{recipes: []models.Recipe{
		{ID: 1, Name: "In Band", Carbs: 40, Fiber: 6},
		{ID: 2, Name: "Fiber Outlier", Carbs: 90, Fiber: 8},
		{ID: 3, Name: "Low Fiber Outlier", Carbs: 95, Fiber: 3},
	}}
	service := newSuggestionServiceForTest(stubMealReader{}, catalog)

	suggestions := service.Suggest(1, SlotBreakfast, 100)
	if len(suggestions) != 2 {
		t.Fatalf("expected a partial list of 2 when the catalog runs out, got %d", len(suggestions))
	}
	if suggestions[0].Title != "In Band" || suggestions[1].Title != "Fiber Outlier" {
		t.Fatalf("expected in-band then high-fiber padding, got %q then %q", suggestions[0].Title, suggestions[1].Title)
	}
}

func TestSuggestDinnerWindowMealCapsTarget(t *testing.T) {
	t.Parallel()

	// A 19:00 meal yesterday triggers the dinner bias. The catalog
	// error forces the fallback set, whose carbs expose the target.
	yesterdayDinner := time.Date(2026, 2, 28, 19, 0, 0, 0, time.UTC)
	meals := stubMealReader{meals: []models.MealLog{mealAt(1, yesterdayDinner, 60)}}
	service := newSuggestionServiceForTest(meals, stubCatalog{err: errors.New("catalog down")})

	suggestions := service.Suggest(1, SlotBreakfast, 150)
	if len(suggestions) != 3 {
		t.Fatalf("expected 3 fallback suggestions, got %d", len(suggestions))
	}
	// Without the bias the target would be 45; the cap pins it at 25.
	if suggestions[0].CarbsG != 25 {
		t.Fatalf("expected capped target 25, got %.0f", suggestions[0].CarbsG)
	}
}

func TestSuggestCountsOnlyTodaysCarbsAgainstBudget(t *testing.T) {
	t.Parallel()

	todayMeal := mealAt(1, fixtureNow.Add(-3*time.Hour), 100)
	yesterdayMeal := mealAt(2, time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC), 100)
	meals := stubMealReader{meals: []models.MealLog{todayMeal, yesterdayMeal}}
	service := newSuggestionServiceForTest(meals, stubCatalog{err: errors.New("catalog down")})

	suggestions := service.Suggest(1, SlotBreakfast, 150)
	// Remaining budget is 150-100=50, halved and clamped to 25.
	if suggestions[0].CarbsG != 25 {
		t.Fatalf("expected target 25 from today's budget only, got %.0f", suggestions[0].CarbsG)
	}
}

func TestFallbackSuggestionsAreDeterministic(t *testing.T) {
	t.Parallel()

	suggestions := FallbackSuggestions(30)
	if len(suggestions) != 3 {
		t.Fatalf("expected 3 fallbacks, got %d", len(suggestions))
	}

	expected := []SuggestionCandidate{
		{ID: "fallback-1", Title: "High-fiber choice", CarbsG: 30, FiberG: 12, ImageURL: "/default-meal.jpg"},
		{ID: "fallback-2", Title: "Balanced option", CarbsG: 24, FiberG: 9, ImageURL: "/default-meal.jpg"},
		{ID: "fallback-3", Title: "Light pick", CarbsG: 18, FiberG: 8, ImageURL: "/default-meal.jpg"},
	}
	for index, want := range expected {
		if suggestions[index] != want {
			t.Fatalf("fallback %d mismatch: got %+v want %+v", index, suggestions[index], want)
		}
	}
}

func TestSuggestDegradesWhenMealsUnavailable(t *testing.T) {
	t.Parallel()

	service := newSuggestionServiceForTest(
		stubMealReader{err: errors.New("store down")},
		stubCatalog{recipes: []models.Recipe{{ID: 1, Name: "Unused", Carbs: 40, Fiber: 9}}},
	)

	suggestions := service.Suggest(1, SlotBreakfast, 150)
	if len(suggestions) != 3 {
		t.Fatalf("expected 3 fallback suggestions, got %d", len(suggestions))
	}
	if suggestions[0].ID != "fallback-1" {
		t.Fatalf("expected the fallback set, got %+v", suggestions[0])
	}
}
