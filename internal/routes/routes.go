// Package routes wires the HTTP surface to the handlers.
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"flux/internal/handlers"
	"flux/internal/middleware"
)

// Handlers bundles everything route registration needs.
type Handlers struct {
	User        *handlers.UserHandler
	Auth        *handlers.AuthHandler
	Wallet      *handlers.WalletHandler
	Transaction *handlers.TransactionHandler
	AuthGuard   *middleware.AuthMiddleware
}

// Setup registers all routes on the app.
func Setup(app *fiber.App, h Handlers) {
	app.Get("/health", handlers.Health)

	api := app.Group("/api/v1")

	rateLimited := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})

	api.Post("/users", rateLimited, h.User.Register)
	api.Post("/login", rateLimited, h.Auth.Login)

	authed := api.Group("", h.AuthGuard.Handler)
	authed.Get("/wallets/balance", h.Wallet.GetBalance)
	authed.Post("/transaction", h.Transaction.Execute)
	authed.Get("/transactions", h.Transaction.History)
}
