package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jessndots/express-jobly/internal/middleware/admin"
	"github.com/jessndots/express-jobly/internal/middleware/authjwt"
	"github.com/jessndots/express-jobly/internal/middleware/constraints"
	platformconfig "github.com/jessndots/express-jobly/internal/platform/config"
	"github.com/jessndots/express-jobly/users/handlers"
)

// UsersHandlers holds all the handlers this router needs.
type UsersHandlers struct {
	UserHandler *handlers.UserHandler
}

// RegisterRoutes sets up user routes. Listing and creating users is for
// admins; a single user's routes are open to that user and to admins.
func RegisterRoutes(app *fiber.App, h *UsersHandlers, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})
	adminMiddleware := admin.New(admin.Config{})
	selfOrAdmin := admin.SelfOrAdmin("username")

	group := app.Group("/users", jwtMiddleware)

	group.Post("/", adminMiddleware, h.UserHandler.CreateUser)
	group.Get("/", adminMiddleware, h.UserHandler.FindUsers)

	group.Get("/:username", selfOrAdmin, h.UserHandler.GetUser)
	group.Patch("/:username", selfOrAdmin, h.UserHandler.UpdateUser)
	group.Delete("/:username", selfOrAdmin, h.UserHandler.RemoveUser)
	group.Post("/:username/jobs/:id", constraints.RequireInt("id"), selfOrAdmin, h.UserHandler.ApplyToJob)
}
