package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/halleck44/steady/internal/services"
)

func (handler *Handler) GetDailyStats(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day := time.Now().In(handler.location)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		day = parsed
	}

	stats, err := handler.insights.DailyStatsFor(userID, day)
	if err != nil {
		if errors.Is(err, services.ErrDataUnavailable) {
			return apiError(c, fiber.StatusServiceUnavailable, "stats temporarily unavailable")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load stats")
	}
	return c.JSON(stats)
}
