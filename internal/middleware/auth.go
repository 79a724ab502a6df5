// Package middleware provides fiber middleware for the HTTP surface.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"flux/internal/utils"
	"flux/internal/utils/response"
)

// AuthMiddleware validates bearer JWTs and stores the claims in locals.
type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// Handler rejects requests without a valid bearer token.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Unauthorized(c)
	}

	claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "), m.secret)
	if err != nil {
		return response.Unauthorized(c)
	}

	c.Locals("claims", claims)
	return c.Next()
}
