package wallet

import (
	"context"

	"github.com/shopspring/decimal"

	"flux/internal/models"
)

// Cache is the read cache for wallet lookups.
type Cache interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, userID uint) error
}

// Service exposes wallet lookups and management.
type Service interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	GetBalance(ctx context.Context, userID uint) (decimal.Decimal, error)
}
