package handlers

import (
	"github.com/gofiber/fiber/v2"

	"flux/internal/models"
	"flux/internal/services/wallet"
	"flux/internal/utils/response"
)

// WalletHandler exposes wallet balance endpoints.
type WalletHandler struct {
	service wallet.Service
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(s wallet.Service) *WalletHandler { return &WalletHandler{service: s} }

// GetBalance handles GET /wallets/balance requests for the caller's wallet.
func (h *WalletHandler) GetBalance(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	balance, err := h.service.GetBalance(c.Context(), claims.UserID)
	if err != nil {
		return domainError(c, err)
	}
	return response.Success(c, "balance retrieved", fiber.Map{"balance": balance})
}
