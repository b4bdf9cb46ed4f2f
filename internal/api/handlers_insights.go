package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/halleck44/steady/internal/services"
)

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rangeKey := services.Range7d
	if raw := c.Query("range"); raw != "" {
		parsed, valid := services.ParseInsightRange(raw)
		if !valid {
			return apiError(c, fiber.StatusBadRequest, "invalid range")
		}
		rangeKey = parsed
	}

	insights, err := handler.insights.Insights(userID, rangeKey, queryBool(c, "refresh"))
	if err != nil {
		handler.logger.Printf("load insights for user %d: %v", userID, err)
		if errors.Is(err, services.ErrDataUnavailable) {
			return apiError(c, fiber.StatusServiceUnavailable, "insights temporarily unavailable")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load insights")
	}

	return c.JSON(fiber.Map{
		"range":    string(rangeKey),
		"insights": insights,
	})
}

func (handler *Handler) GenerateInsights(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rangeKey := services.Range7d
	if raw := c.Query("range"); raw != "" {
		parsed, valid := services.ParseInsightRange(raw)
		if !valid {
			return apiError(c, fiber.StatusBadRequest, "invalid range")
		}
		rangeKey = parsed
	}

	insights, err := handler.insights.GenerateAndCache(userID, rangeKey)
	if err != nil {
		handler.logger.Printf("generate insights for user %d: %v", userID, err)
		if errors.Is(err, services.ErrDataUnavailable) {
			return apiError(c, fiber.StatusServiceUnavailable, "insights temporarily unavailable")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to generate insights")
	}

	return c.JSON(fiber.Map{
		"range":    string(rangeKey),
		"insights": insights,
	})
}

type insightHistoryEntry struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Severity    string     `json:"severity"`
	Priority    int        `json:"priority"`
	Range       string     `json:"range"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	DismissedAt *time.Time `json:"dismissedAt,omitempty"`
}

func (handler *Handler) GetInsightHistory(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	records, err := handler.repositories.Insights.ListHistory(userID, queryInt(c, "limit", 50))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load insight history")
	}

	entries := make([]insightHistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, insightHistoryEntry{
			ID:          record.PublicID,
			Type:        record.Type,
			Title:       record.Title,
			Body:        record.Body,
			Severity:    record.Severity,
			Priority:    record.Priority,
			Range:       record.Range,
			IsActive:    record.IsActive,
			CreatedAt:   record.CreatedAt,
			ExpiresAt:   record.ExpiresAt,
			DismissedAt: record.DismissedAt,
		})
	}
	return c.JSON(fiber.Map{"insights": entries})
}

func (handler *Handler) DismissInsight(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	publicID := c.Params("publicId")
	if publicID == "" {
		return apiError(c, fiber.StatusBadRequest, "missing insight id")
	}

	dismissed, err := handler.repositories.Insights.Dismiss(userID, publicID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to dismiss insight")
	}
	if !dismissed {
		return apiError(c, fiber.StatusNotFound, "insight not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
