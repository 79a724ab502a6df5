package repositories

import (
	"context"

	"flux/internal/models"
)

// WalletRepository defines the wallet lookup and persistence operations.
type WalletRepository interface {
	Create(ctx context.Context, wallet *models.Wallet) error
	GetByUserID(ctx context.Context, userID uint) (*models.Wallet, error)
	// GetByUserIDForUpdate takes a row-level lock on the wallet. It is only
	// meaningful inside an active unit-of-work; the lock is held until that
	// unit-of-work commits or rolls back.
	GetByUserIDForUpdate(ctx context.Context, userID uint) (*models.Wallet, error)
	Save(ctx context.Context, wallet *models.Wallet) error
}
