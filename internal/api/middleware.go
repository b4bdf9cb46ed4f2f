package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const userIDLocalsKey = "steady_user_id"

// RequireUser resolves the acting user from the X-User-ID header set by
// the upstream auth layer. Authentication itself happens outside this
// service; requests without a resolvable user are rejected.
func (handler *Handler) RequireUser(c *fiber.Ctx) error {
	raw := c.Get("X-User-ID")
	if raw == "" {
		return apiError(c, fiber.StatusUnauthorized, "missing user")
	}
	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || userID == 0 {
		return apiError(c, fiber.StatusUnauthorized, "invalid user")
	}
	c.Locals(userIDLocalsKey, uint(userID))
	return c.Next()
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(userIDLocalsKey).(uint)
	return userID, ok
}
