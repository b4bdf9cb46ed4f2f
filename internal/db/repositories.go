package db

import "gorm.io/gorm"

type Repositories struct {
	Users           *UserRepository
	MealLogs        *MealLogRepository
	GlucoseReadings *GlucoseReadingRepository
	ExerciseLogs    *ExerciseLogRepository
	SleepLogs       *SleepLogRepository
	EnergyLogs      *EnergyLogRepository
	Recipes         *RecipeRepository
	Insights        *InsightRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(database),
		MealLogs:        NewMealLogRepository(database),
		GlucoseReadings: NewGlucoseReadingRepository(database),
		ExerciseLogs:    NewExerciseLogRepository(database),
		SleepLogs:       NewSleepLogRepository(database),
		EnergyLogs:      NewEnergyLogRepository(database),
		Recipes:         NewRecipeRepository(database),
		Insights:        NewInsightRepository(database),
	}
}
