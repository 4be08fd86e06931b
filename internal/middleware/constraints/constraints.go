package constraints

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// RequireInt ensures a path parameter is a positive integer. Anything else
// is answered with 404 so the route behaves as if it did not match.
func RequireInt(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := c.Params(param)
		if value == "" {
			return c.Next()
		}
		if n, err := strconv.Atoi(value); err != nil || n < 1 {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Next()
	}
}
