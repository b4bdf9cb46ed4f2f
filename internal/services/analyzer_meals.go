package services

import (
	"fmt"
	"time"

	"github.com/halleck44/steady/internal/models"
)

const (
	postMealRiseThreshold = 40.0
	preMealLookback       = 30 * time.Minute
	postMealWindowStart   = 90 * time.Minute
	postMealWindowEnd     = 120 * time.Minute
)

// analyzePostMealRise fires when any meal shows a glucose rise of at
// least 40 mg/dL between a pre-meal reading (within 30 minutes before)
// and a post-meal reading (90-120 minutes after).
func analyzePostMealRise(snapshot Snapshot) *GeneratedInsight {
	if len(snapshot.Meals) < 1 || len(snapshot.Readings) < 2 {
		return nil
	}

	for index := range snapshot.Meals {
		meal := &snapshot.Meals[index]
		mealTime := meal.LoggedAt

		preReading := firstReadingBetween(snapshot.Readings, mealTime.Add(-preMealLookback), mealTime)
		postReading := firstReadingBetween(snapshot.Readings, mealTime.Add(postMealWindowStart), mealTime.Add(postMealWindowEnd))
		if preReading == nil || postReading == nil {
			continue
		}

		delta := postReading.Value - preReading.Value
		if delta < postMealRiseThreshold {
			continue
		}

		mealID := meal.ID
		readingID := postReading.ID
		return &GeneratedInsight{
			Type:  InsightPostMealRise,
			Title: "Post-meal rise noticed",
			Body: fmt.Sprintf(
				"Your glucose rose +%d mg/dL after %s. Meals around %dg carbs tend to lead to bigger rises. Consider smaller portions or adding fiber.",
				roundInt(delta), meal.DisplayName(), roundInt(meal.CarbGrams()),
			),
			Severity:  models.SeverityWarn,
			MealLogID: &mealID,
			ReadingID: &readingID,
		}
	}

	return nil
}

// analyzeCarbBudgetTrend fires when the rolling 3-day carb average runs
// more than 25% over the daily goal.
func analyzeCarbBudgetTrend(snapshot Snapshot) *GeneratedInsight {
	if len(snapshot.Meals) < 5 {
		return nil
	}

	threeDaysAgo := snapshot.Now.AddDate(0, 0, -3)
	carbValues := make([]float64, 0, len(snapshot.Meals))
	for _, meal := range snapshot.Meals {
		if meal.LoggedAt.Before(threeDaysAgo) {
			continue
		}
		carbValues = append(carbValues, meal.CarbGrams())
	}
	if len(carbValues) < 3 {
		return nil
	}

	averageCarbs := mean(carbValues)
	dailyGoal := snapshot.carbGoal()
	if averageCarbs <= dailyGoal*1.25 {
		return nil
	}

	return &GeneratedInsight{
		Type:  InsightCarbBudgetTrend,
		Title: "Carb budget trend",
		Body: fmt.Sprintf(
			"You averaged %dg vs a goal of %dg over 3 days. Want to try lower-carb swaps or higher-fiber picks?",
			roundInt(averageCarbs), roundInt(dailyGoal),
		),
		Severity: models.SeverityWarn,
	}
}

const (
	dinnerHourStart = 17
	dinnerHourEnd   = 21
)

// analyzeEveningPattern compares post-meal rises after dinner against
// rises after other meals over the trailing 7 days. The post-meal
// pairing window here is 1-2 hours, wider than analyzePostMealRise's.
func analyzeEveningPattern(snapshot Snapshot) *GeneratedInsight {
	if len(snapshot.Meals) < 7 || len(snapshot.Readings) < 7 {
		return nil
	}

	sevenDaysAgo := snapshot.Now.AddDate(0, 0, -7)
	recentReadings := readingsBetween(snapshot.Readings, sevenDaysAgo, snapshot.Now)

	dinnerRises := make([]float64, 0)
	otherRises := make([]float64, 0)
	for _, meal := range snapshot.Meals {
		if meal.LoggedAt.Before(sevenDaysAgo) {
			continue
		}
		mealTime := meal.LoggedAt

		preReading := firstReadingBetween(recentReadings, mealTime.Add(-preMealLookback), mealTime)
		postReading := firstReadingBetween(recentReadings, mealTime.Add(time.Hour), mealTime.Add(2*time.Hour))
		if preReading == nil || postReading == nil {
			continue
		}

		rise := postReading.Value - preReading.Value
		hour := mealTime.Hour()
		if hour >= dinnerHourStart && hour <= dinnerHourEnd {
			dinnerRises = append(dinnerRises, rise)
		} else {
			otherRises = append(otherRises, rise)
		}
	}

	if len(dinnerRises) < 2 || len(otherRises) < 2 {
		return nil
	}
	if mean(dinnerRises) <= mean(otherRises)+10 {
		return nil
	}

	return &GeneratedInsight{
		Type:     InsightEveningPattern,
		Title:    "Evening pattern",
		Body:     "Your largest rises often follow dinner. A short post-dinner walk or a higher-fiber side may help.",
		Severity: models.SeverityInfo,
	}
}
