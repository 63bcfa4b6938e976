package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// apiError writes the error body shape shared by every handler:
// {"message": "..."} with an optional "error" detail.
func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func apiErrorDetail(c *fiber.Ctx, status int, message string, detail error) error {
	if detail == nil {
		return apiError(c, status, message)
	}
	return c.Status(status).JSON(fiber.Map{"message": message, "error": detail.Error()})
}

func pathID(c *fiber.Ctx, name string) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || parsed == 0 {
		return 0, false
	}
	return uint(parsed), true
}

func queryID(c *fiber.Ctx, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(parsed)
}
