package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jessndots/express-jobly/internal/apperrors"
	"github.com/jessndots/express-jobly/internal/types"
)

type Config struct {
	UserCtxName string
	// Optional override to check custom permission instead of IsAdmin
	HasAccess func(c *fiber.Ctx, u types.UserContext) bool
}

// New requires an authenticated admin.
func New(config Config) fiber.Handler {
	userKey := config.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}
	hasAccess := config.HasAccess
	if hasAccess == nil {
		hasAccess = func(_ *fiber.Ctx, u types.UserContext) bool { return u.IsAdmin }
	}

	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(userKey).(types.UserContext)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(apperrors.ErrorResponse{
				Code:    apperrors.CodeUnauthorized,
				Message: "missing user context",
			})
		}
		if !hasAccess(c, user) {
			return c.Status(fiber.StatusForbidden).JSON(apperrors.ErrorResponse{
				Code:    apperrors.CodeForbidden,
				Message: "admin access required",
			})
		}
		return c.Next()
	}
}

// SelfOrAdmin allows admins and the user named by the param path segment.
func SelfOrAdmin(param string) fiber.Handler {
	return New(Config{
		HasAccess: func(c *fiber.Ctx, u types.UserContext) bool {
			return u.CanActFor(c.Params(param))
		},
	})
}
