package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserIDHeader carries the signed-in user id set by the upstream session proxy.
const UserIDHeader = "X-User-ID"

const userIDLocal = "user_id"

// Identify stores the caller's id when the header is present and valid. A malformed
// header is rejected even on routes where identity is optional.
func Identify() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(UserIDHeader))
		if raw == "" {
			return c.Next()
		}

		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid " + UserIDHeader + " header",
			})
		}

		c.Locals(userIDLocal, id)
		return c.Next()
	}
}

// RequireUser rejects requests that Identify could not attribute to a user.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := userID(c); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}
		return c.Next()
	}
}

func userID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userIDLocal).(uuid.UUID)
	return id, ok
}

func mustUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := userID(c)
	return id
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
