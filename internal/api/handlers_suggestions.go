package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/halleck44/steady/internal/services"
)

func (handler *Handler) GetSuggestions(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	slot, valid := services.ParseMealSlot(c.Query("timeOfDay"))
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid timeOfDay")
	}

	dailyGoal := 0
	if user, err := handler.repositories.Users.FindByID(userID); err == nil {
		dailyGoal = user.CarbGoal()
	}

	suggestions := handler.suggestions.Suggest(userID, slot, dailyGoal)
	return c.JSON(fiber.Map{
		"timeOfDay":   slot,
		"suggestions": suggestions,
	})
}
