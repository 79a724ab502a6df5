package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"flux/internal/models"
	"flux/internal/services/transaction"
	"flux/internal/utils/response"
)

// TransactionHandler exposes the transfer and history endpoints.
type TransactionHandler struct {
	service transaction.Service
	ceiling decimal.Decimal
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(s transaction.Service, ceiling decimal.Decimal) *TransactionHandler {
	return &TransactionHandler{service: s, ceiling: ceiling}
}

// Execute handles POST /transaction requests. The authenticated caller is
// always the payer.
func (h *TransactionHandler) Execute(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		PayeeID uint            `json:"payee"`
		Amount  decimal.Decimal `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	transfer := transaction.TransferRequest{
		PayerID: claims.UserID,
		PayeeID: req.PayeeID,
		Amount:  req.Amount,
	}
	if err := transfer.Validate(h.ceiling); err != nil {
		return domainError(c, err)
	}

	tx, err := h.service.ExecuteTransfer(c.Context(), transfer)
	if err != nil {
		return domainError(c, err)
	}
	return response.Created(c, "transfer completed", tx)
}

// History handles GET /transactions requests.
func (h *TransactionHandler) History(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	txs, err := h.service.GetUserHistory(c.Context(), claims.UserID, limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return response.Success(c, "transaction history", txs)
}
