package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/halleck44/steady/internal/models"
)

func (handler *Handler) CreateMealLog(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input mealLogInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if input.Carbs != nil && (*input.Carbs < 0 || *input.Carbs > 500) {
		return apiError(c, fiber.StatusBadRequest, "invalid carbs value")
	}
	loggedAt, err := handler.parseLoggedAt(input.LoggedAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid loggedAt")
	}

	entry := models.MealLog{
		UserID:   userID,
		RecipeID: input.RecipeID,
		Name:     input.Name,
		Carbs:    input.Carbs,
		Calories: input.Calories,
		LoggedAt: loggedAt,
		Notes:    input.Notes,
	}
	if err := handler.repositories.MealLogs.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save meal")
	}

	handler.insights.OnLogWrite(userID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": entry.ID})
}

func (handler *Handler) CreateGlucoseReading(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input glucoseReadingInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if input.Value <= 0 || input.Value > 1000 {
		return apiError(c, fiber.StatusBadRequest, "invalid glucose value")
	}
	if input.ReadingType == "" {
		input.ReadingType = models.ReadingTypeRandom
	}
	if !validReadingType(input.ReadingType) {
		return apiError(c, fiber.StatusBadRequest, "invalid reading type")
	}
	if input.Source == "" {
		input.Source = models.GlucoseSourceManual
	}
	if !validGlucoseSource(input.Source) {
		return apiError(c, fiber.StatusBadRequest, "invalid source")
	}
	if input.AlertType == "" {
		input.AlertType = models.AlertNone
	}
	if !validAlertType(input.AlertType) {
		return apiError(c, fiber.StatusBadRequest, "invalid alert type")
	}
	if input.Unit == "" {
		input.Unit = "mg/dL"
	}
	takenAt, err := handler.parseLoggedAt(input.TakenAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid takenAt")
	}

	reading := models.GlucoseReading{
		UserID:      userID,
		Value:       input.Value,
		Unit:        input.Unit,
		ReadingType: input.ReadingType,
		Source:      input.Source,
		AlertType:   input.AlertType,
		TakenAt:     takenAt,
		Notes:       input.Notes,
	}
	if err := handler.repositories.GlucoseReadings.Create(&reading); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save reading")
	}

	handler.insights.OnLogWrite(userID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": reading.ID})
}

func (handler *Handler) CreateExerciseLog(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input exerciseLogInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if input.DurationMinutes <= 0 || input.DurationMinutes > 24*60 {
		return apiError(c, fiber.StatusBadRequest, "invalid duration")
	}
	loggedAt, err := handler.parseLoggedAt(input.LoggedAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid loggedAt")
	}

	entry := models.ExerciseLog{
		UserID:          userID,
		ExerciseType:    input.ExerciseType,
		DurationMinutes: input.DurationMinutes,
		LoggedAt:        loggedAt,
		Notes:           input.Notes,
	}
	if err := handler.repositories.ExerciseLogs.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save exercise")
	}

	// Exercise entries feed analysis windows but never a same-day stats
	// aggregate, so cached entries stay valid until their TTL.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": entry.ID})
}

func (handler *Handler) CreateSleepLog(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input sleepLogInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if input.DurationHours != nil && (*input.DurationHours <= 0 || *input.DurationHours > 24) {
		return apiError(c, fiber.StatusBadRequest, "invalid duration")
	}
	if input.Quality == "" {
		input.Quality = models.SleepQualityFair
	}
	if !validSleepQuality(input.Quality) {
		return apiError(c, fiber.StatusBadRequest, "invalid quality")
	}
	loggedAt, err := handler.parseLoggedAt(input.LoggedAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid loggedAt")
	}

	entry := models.SleepLog{
		UserID:        userID,
		DurationHours: input.DurationHours,
		Quality:       input.Quality,
		LoggedAt:      loggedAt,
		Notes:         input.Notes,
	}
	if err := handler.repositories.SleepLogs.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save sleep log")
	}

	handler.insights.OnLogWrite(userID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": entry.ID})
}

func (handler *Handler) CreateEnergyLog(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input energyLogInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !validEnergyLevel(input.Level) {
		return apiError(c, fiber.StatusBadRequest, "invalid energy level")
	}
	loggedAt, err := handler.parseLoggedAt(input.LoggedAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid loggedAt")
	}

	entry := models.EnergyLog{
		UserID:   userID,
		Level:    input.Level,
		LoggedAt: loggedAt,
		Notes:    input.Notes,
	}
	if err := handler.repositories.EnergyLogs.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save energy log")
	}

	handler.insights.OnLogWrite(userID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": entry.ID})
}
