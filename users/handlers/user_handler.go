package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jessndots/express-jobly/internal/apperrors"
	"github.com/jessndots/express-jobly/internal/auth/tokens"
	"github.com/jessndots/express-jobly/internal/database/clause"
	"github.com/jessndots/express-jobly/internal/middleware/authjwt"
	"github.com/jessndots/express-jobly/users/models"
	"github.com/jessndots/express-jobly/users/services"
	"github.com/jessndots/express-jobly/users/validation"
)

// UserHandler handles all user-related HTTP requests
type UserHandler struct {
	userService services.UserService
	tokens      tokens.Creator
}

func NewUserHandler(userService services.UserService, tokenCreator tokens.Creator) *UserHandler {
	return &UserHandler{userService: userService, tokens: tokenCreator}
}

// CreateUser handles POST /users. Admins may create other admins and the
// response carries a token for the new user.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateRegisterRequest(&req.RegisterRequest); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	user, err := h.userService.Register(c.UserContext(), &req)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	token, err := h.tokens.CreateToken(user.Context())
	if err != nil {
		return apperrors.HandleError(c, apperrors.Internal("failed to sign token", err))
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

func (h *UserHandler) FindUsers(c *fiber.Ctx) error {
	users, err := h.userService.FindUsers(c.UserContext())
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(c.UserContext(), c.Params("username"))
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	payload := clause.NewPayload()
	if err := json.Unmarshal(c.Body(), payload); err != nil {
		return apperrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	caller, _ := authjwt.UserFrom(c)
	if err := validation.ValidateUpdateUserPayload(payload, caller.IsAdmin); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	user, err := h.userService.UpdateUser(c.UserContext(), c.Params("username"), payload)
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *UserHandler) RemoveUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.userService.RemoveUser(c.UserContext(), username); err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": username})
}

// ApplyToJob handles POST /users/:username/jobs/:id
func (h *UserHandler) ApplyToJob(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := h.userService.ApplyToJob(c.UserContext(), c.Params("username"), id); err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"applied": id})
}
