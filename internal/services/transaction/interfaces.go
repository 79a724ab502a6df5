package transaction

import (
	"context"

	"github.com/shopspring/decimal"

	"flux/internal/models"
)

// Authorizer is the external decision service consulted before a transfer
// commits. A transport error is distinct from an explicit false decision;
// the engine treats both as non-authorization.
type Authorizer interface {
	Authorize(ctx context.Context, payerID, payeeID uint, amount decimal.Decimal) (bool, error)
}

// Notifier delivers transfer notifications best-effort. Errors are logged
// by the engine and never change the outcome of a transfer.
type Notifier interface {
	NotifyTransfer(ctx context.Context, payerID, payeeID uint, amount decimal.Decimal) error
}

// CacheInvalidator drops stale wallet cache entries after a committed
// balance mutation.
type CacheInvalidator interface {
	InvalidateWallet(ctx context.Context, userID uint) error
}

// Service executes transfers between user wallets.
type Service interface {
	ExecuteTransfer(ctx context.Context, req TransferRequest) (*models.Transaction, error)
	GetUserHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error)
}
