package handlers

import (
	"github.com/gofiber/fiber/v2"

	"flux/internal/services/auth"
	"flux/internal/utils/response"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	service auth.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s auth.Service) *AuthHandler { return &AuthHandler{service: s} }

// Login handles POST /login requests.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	token, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return domainError(c, err)
	}
	return response.Success(c, "login successful", fiber.Map{"token": token})
}
