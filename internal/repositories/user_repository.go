package repositories

import (
	"context"

	"flux/internal/models"
)

// UserRepository defines the user lookup and persistence operations the
// services consume. Implementations must be usable both standalone and
// bound to an active unit-of-work.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByDocument(ctx context.Context, document string) (*models.User, error)
}
