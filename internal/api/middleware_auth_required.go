package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	}
	c.Locals(contextUserKey, user)
	return c.Next()
}

func (handler *Handler) AdminRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if !user.IsAdmin() {
		return apiError(c, fiber.StatusForbidden, "admin role required")
	}
	return c.Next()
}

// OwnershipRequired rejects requests whose path or body carries a user
// reference that differs from the resolved identity. Admins are exempt.
// Requests without any user reference pass through; the handlers scope
// their queries by the caller's id regardless.
func (handler *Handler) OwnershipRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if user.IsAdmin() {
		return c.Next()
	}

	referenced := referencedUserID(c)
	if referenced != 0 && referenced != user.ID {
		return apiError(c, fiber.StatusForbidden, "insufficient permissions")
	}
	return c.Next()
}

func referencedUserID(c *fiber.Ctx) uint {
	if raw := c.Params("user_id"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil {
			return uint(parsed)
		}
	}

	var body struct {
		UserID uint `json:"user_id"`
	}
	if err := c.BodyParser(&body); err == nil {
		return body.UserID
	}
	return 0
}
