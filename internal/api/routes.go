package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.RequireUser)

	insights := api.Group("/insights")
	insights.Get("", handler.GetInsights)
	insights.Post("/generate", handler.GenerateInsights)
	insights.Get("/history", handler.GetInsightHistory)
	insights.Post("/:publicId/dismiss", handler.DismissInsight)

	api.Get("/suggestions", handler.GetSuggestions)

	logs := api.Group("/logs")
	logs.Post("/meals", handler.CreateMealLog)
	logs.Post("/glucose", handler.CreateGlucoseReading)
	logs.Post("/exercise", handler.CreateExerciseLog)
	logs.Post("/sleep", handler.CreateSleepLog)
	logs.Post("/energy", handler.CreateEnergyLog)

	recipes := api.Group("/recipes")
	recipes.Get("", handler.GetRecipes)
	recipes.Get("/:id", handler.GetRecipe)

	stats := api.Group("/stats")
	stats.Get("/daily", handler.GetDailyStats)
}
