// Package ratelimit provides rate limiting middleware for authentication endpoints
package ratelimit

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jessndots/express-jobly/internal/pkg/log"
	"github.com/jessndots/express-jobly/internal/platform/config"
)

// Config holds the configuration for rate limiting middleware
type Config struct {
	// Name identifies the endpoint in logs and responses
	Name string

	// Limit is the max requests per window
	Limit config.RateLimitConfig

	// Next defines a function to skip this middleware when returned true
	Next func(c *fiber.Ctx) bool

	// Custom key generator (optional, defaults to IP + path)
	KeyGenerator func(c *fiber.Ctx) string
}

// New creates a new rate limiting middleware handler. A disabled limit
// passes every request through.
func New(cfg Config) fiber.Handler {
	if !cfg.Limit.Enabled {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	if cfg.KeyGenerator == nil {
		cfg.KeyGenerator = func(c *fiber.Ctx) string {
			return c.IP() + ":" + c.Path()
		}
	}

	return limiter.New(limiter.Config{
		Max:          cfg.Limit.Max,
		Expiration:   cfg.Limit.Duration,
		KeyGenerator: cfg.KeyGenerator,
		Next:         cfg.Next,
		LimitReached: func(c *fiber.Ctx) error {
			log.WarnWithContext(c.UserContext(), "[RateLimit] Rate limit exceeded for %s from IP: %s", cfg.Name, c.IP())

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":       "RATE_LIMIT_EXCEEDED",
				"message":    fmt.Sprintf("Too many %s attempts. Please try again later.", cfg.Name),
				"retryAfter": int(cfg.Limit.Duration.Seconds()),
			})
		},
	})
}
