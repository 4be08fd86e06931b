package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jessndots/express-jobly/companies/models"
	"github.com/jessndots/express-jobly/companies/services"
	"github.com/jessndots/express-jobly/companies/validation"
	"github.com/jessndots/express-jobly/internal/apperrors"
	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/pkg/parser"
)

// CompanyHandler handles all company-related HTTP requests
type CompanyHandler struct {
	companyService services.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler with injected dependencies
func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CreateCompany handles POST /companies
func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var req models.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateCompanyRequest(&req); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	company, err := h.companyService.CreateCompany(c.UserContext(), &req)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"company": company})
}

// FindCompanies handles GET /companies with optional name, minEmployees
// and maxEmployees filters
func (h *CompanyHandler) FindCompanies(c *fiber.Ctx) error {
	var query models.CompanyQuery
	if err := parser.DecodeQuery(c, &query); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	if err := validation.ValidateCompanyQuery(&query); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	companies, err := h.companyService.FindCompanies(c.UserContext(), &query)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.JSON(fiber.Map{"companies": companies})
}

// GetCompany handles GET /companies/:handle
func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	company, err := h.companyService.GetCompany(c.UserContext(), c.Params("handle"))
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"company": company})
}

// UpdateCompany handles PATCH /companies/:handle. Only the fields present in
// the body are written.
func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	payload := clause.NewPayload()
	if err := json.Unmarshal(c.Body(), payload); err != nil {
		return apperrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateUpdateCompanyPayload(payload); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	company, err := h.companyService.UpdateCompany(c.UserContext(), c.Params("handle"), payload)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.JSON(fiber.Map{"company": company})
}

// RemoveCompany handles DELETE /companies/:handle
func (h *CompanyHandler) RemoveCompany(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if err := h.companyService.RemoveCompany(c.UserContext(), handle); err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": handle})
}
