package api

type mealLogInput struct {
	Name     string   `json:"name"`
	Carbs    *float64 `json:"carbs"`
	Calories *int     `json:"calories"`
	RecipeID *uint    `json:"recipeId"`
	LoggedAt string   `json:"loggedAt"`
	Notes    string   `json:"notes"`
}

type glucoseReadingInput struct {
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	ReadingType string  `json:"readingType"`
	Source      string  `json:"source"`
	AlertType   string  `json:"alertType"`
	TakenAt     string  `json:"takenAt"`
	Notes       string  `json:"notes"`
}

type exerciseLogInput struct {
	ExerciseType    string `json:"exerciseType"`
	DurationMinutes int    `json:"durationMinutes"`
	LoggedAt        string `json:"loggedAt"`
	Notes           string `json:"notes"`
}

type sleepLogInput struct {
	DurationHours *float64 `json:"durationHours"`
	Quality       string   `json:"quality"`
	LoggedAt      string   `json:"loggedAt"`
	Notes         string   `json:"notes"`
}

type energyLogInput struct {
	Level    int    `json:"level"`
	LoggedAt string `json:"loggedAt"`
	Notes    string `json:"notes"`
}
