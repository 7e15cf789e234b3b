package handlers

import (
	"errors"

	"remat/internal/services/auth"
	"remat/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler exposes registration, login, and token refresh.
type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(s auth.Service) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request")
	}
	if input.Email == "" || input.Password == "" {
		return response.BadRequest(c, "email and password are required")
	}

	user, tokens, err := h.service.Register(c.Context(), input.Email, input.Password, input.Name)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken), errors.Is(err, auth.ErrWeakPassword):
			return response.BadRequest(c, err.Error())
		default:
			return response.ServerError(c, "registration failed")
		}
	}
	return response.Success(c, "registered", fiber.Map{
		"uid":    user.UID,
		"tokens": tokens,
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	user, tokens, err := h.service.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return response.Unauthorized(c, "invalid credentials")
		}
		return response.ServerError(c, "login failed")
	}
	return response.Success(c, "logged in", fiber.Map{
		"uid":    user.UID,
		"name":   user.Name,
		"tokens": tokens,
	})
}

// UpdateProfile handles PUT /api/profile.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	claims, err := callerClaims(c)
	if err != nil {
		return response.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	user, err := h.service.UpdateProfile(c.Context(), claims.UID, input.Name)
	if err != nil {
		if errors.Is(err, auth.ErrNameRequired) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "profile update failed")
	}
	return response.Success(c, "profile updated", fiber.Map{
		"uid":  user.UID,
		"name": user.Name,
	})
}

// Refresh handles POST /api/refresh.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	tokens, err := h.service.Refresh(input.RefreshToken)
	if err != nil {
		return response.Unauthorized(c, "invalid refresh token")
	}
	return response.Success(c, "token refreshed", tokens)
}
