package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jessndots/express-jobly/internal/apperrors"
	"github.com/jessndots/express-jobly/internal/auth/tokens"
	"github.com/jessndots/express-jobly/internal/pkg/log"
	"github.com/jessndots/express-jobly/users/models"
	"github.com/jessndots/express-jobly/users/services"
	"github.com/jessndots/express-jobly/users/validation"
)

// AuthHandler issues tokens for existing users and for self-registered ones.
type AuthHandler struct {
	userService services.UserService
	tokens      tokens.Creator
}

func NewAuthHandler(userService services.UserService, tokenCreator tokens.Creator) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokenCreator}
}

// Token handles POST /auth/token. Both JSON and form bodies are accepted.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateLoginRequest(&req); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	user, err := h.userService.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		log.WarnWithContext(c.UserContext(), "[Auth] failed login for %s from %s", req.Username, c.IP())
		return apperrors.HandleError(c, err)
	}

	return h.respondWithToken(c, http.StatusOK, user)
}

// Register handles POST /auth/register. Self-registered users are never admins.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateRegisterRequest(&req); err != nil {
		return apperrors.HandleValidationError(c, err.Error())
	}

	user, err := h.userService.Register(c.UserContext(), &models.CreateUserRequest{RegisterRequest: req})
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	return h.respondWithToken(c, http.StatusCreated, user)
}

func (h *AuthHandler) respondWithToken(c *fiber.Ctx, status int, user *models.User) error {
	token, err := h.tokens.CreateToken(user.Context())
	if err != nil {
		return apperrors.HandleError(c, apperrors.Internal("failed to sign token", err))
	}
	return c.Status(status).JSON(fiber.Map{"token": token})
}
