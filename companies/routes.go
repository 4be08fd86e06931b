package companies

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jessndots/express-jobly/companies/handlers"
	"github.com/jessndots/express-jobly/internal/middleware/admin"
	"github.com/jessndots/express-jobly/internal/middleware/authjwt"
	platformconfig "github.com/jessndots/express-jobly/internal/platform/config"
)

// CompaniesHandlers holds all the handlers this router needs.
type CompaniesHandlers struct {
	CompanyHandler *handlers.CompanyHandler
}

// RegisterRoutes is the single entry point for setting up company routes.
// Reads are public; writes require an admin token.
func RegisterRoutes(app *fiber.App, h *CompaniesHandlers, cfg *platformconfig.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey})
	adminMiddleware := admin.New(admin.Config{})

	group := app.Group("/companies")

	group.Get("/", h.CompanyHandler.FindCompanies)
	group.Get("/:handle", h.CompanyHandler.GetCompany)

	group.Post("/", jwtMiddleware, adminMiddleware, h.CompanyHandler.CreateCompany)
	group.Patch("/:handle", jwtMiddleware, adminMiddleware, h.CompanyHandler.UpdateCompany)
	group.Delete("/:handle", jwtMiddleware, adminMiddleware, h.CompanyHandler.RemoveCompany)
}
