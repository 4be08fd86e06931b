package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jessndots/express-jobly/internal/apperrors"
	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/pkg/parser"
	"github.com/jessndots/express-jobly/jobs/models"
	"github.com/jessndots/express-jobly/jobs/services"
	"github.com/jessndots/express-jobly/jobs/validation"
)

// JobHandler handles all job-related HTTP requests
type JobHandler struct {
	jobService services.JobService
}

func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateJobRequest(&req); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	job, err := h.jobService.CreateJob(c.UserContext(), &req)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"job": job})
}

// FindJobs handles GET /jobs with optional title, minSalary and hasEquity filters
func (h *JobHandler) FindJobs(c *fiber.Ctx) error {
	var query models.JobQuery
	if err := parser.DecodeQuery(c, &query); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	if err := validation.ValidateJobQuery(&query); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	jobs, err := h.jobService.FindJobs(c.UserContext(), &query)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.JSON(fiber.Map{"jobs": jobs})
}

// GetJob handles GET /jobs/:id
// Note: integer validation is handled by constraints.RequireInt middleware
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	job, err := h.jobService.GetJob(c.UserContext(), id)
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"job": job})
}

func (h *JobHandler) UpdateJob(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	payload := clause.NewPayload()
	if err := json.Unmarshal(c.Body(), payload); err != nil {
		return apperrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateUpdateJobPayload(payload); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	job, err := h.jobService.UpdateJob(c.UserContext(), id, payload)
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"job": job})
}

func (h *JobHandler) RemoveJob(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := h.jobService.RemoveJob(c.UserContext(), id); err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": id})
}

func jobID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}
