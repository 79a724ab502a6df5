package handlers

import (
	"github.com/gofiber/fiber/v2"

	"flux/internal/services/user"
	"flux/internal/utils/response"
)

// UserHandler exposes registration endpoints.
type UserHandler struct {
	service user.Service
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(s user.Service) *UserHandler { return &UserHandler{service: s} }

// Register handles POST /users requests.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req struct {
		FullName string `json:"full_name"`
		Document string `json:"document"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Type     string `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	created, err := h.service.Register(c.Context(), user.RegisterInput{
		FullName: req.FullName,
		Document: req.Document,
		Email:    req.Email,
		Password: req.Password,
		Type:     req.Type,
	})
	if err != nil {
		return domainError(c, err)
	}
	return response.Created(c, "user registered", created)
}
