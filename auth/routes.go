package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jessndots/express-jobly/auth/handlers"
	"github.com/jessndots/express-jobly/internal/middleware/ratelimit"
	platformconfig "github.com/jessndots/express-jobly/internal/platform/config"
)

// AuthHandlers holds all the handlers this router needs.
type AuthHandlers struct {
	AuthHandler *handlers.AuthHandler
}

// RegisterRoutes sets up the public token endpoints. Each is rate limited
// per client IP.
func RegisterRoutes(app *fiber.App, h *AuthHandlers, cfg *platformconfig.Config) {
	group := app.Group("/auth")

	group.Post("/token", ratelimit.New(ratelimit.Config{
		Name:  "login",
		Limit: cfg.RateLimits.Token,
	}), h.AuthHandler.Token)

	group.Post("/register", ratelimit.New(ratelimit.Config{
		Name:  "registration",
		Limit: cfg.RateLimits.Register,
	}), h.AuthHandler.Register)
}
