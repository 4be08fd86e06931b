package jobs

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jessndots/express-jobly/internal/middleware/admin"
	"github.com/jessndots/express-jobly/internal/middleware/authjwt"
	"github.com/jessndots/express-jobly/internal/middleware/constraints"
	platformconfig "github.com/jessndots/express-jobly/internal/platform/config"
	"github.com/jessndots/express-jobly/jobs/handlers"
)

// JobsHandlers holds all the handlers this router needs.
type JobsHandlers struct {
	JobHandler *handlers.JobHandler
}

// RegisterRoutes is the single entry point for setting up job routes.
func RegisterRoutes(app *fiber.App, h *JobsHandlers, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})
	adminMiddleware := admin.New(admin.Config{})
	requireID := constraints.RequireInt("id")

	group := app.Group("/jobs")

	group.Get("/", h.JobHandler.FindJobs)
	group.Get("/:id", requireID, h.JobHandler.GetJob)

	group.Post("/", jwtMiddleware, adminMiddleware, h.JobHandler.CreateJob)
	group.Patch("/:id", requireID, jwtMiddleware, adminMiddleware, h.JobHandler.UpdateJob)
	group.Delete("/:id", requireID, jwtMiddleware, adminMiddleware, h.JobHandler.RemoveJob)
}
