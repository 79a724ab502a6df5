package repositories

import (
	"context"
	"errors"

	"flux/internal/models"
)

// ErrTransactionNotFound is returned when a ledger lookup finds no row.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines the ledger persistence operations.
type TransactionRepository interface {
	// Save upserts by id, assigning the id on first insert.
	Save(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	// GetByParticipant returns transactions where the user is payer or
	// payee, most recent first.
	GetByParticipant(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error)
}
