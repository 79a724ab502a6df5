package user

import (
	"context"

	"flux/internal/models"
)

// RegisterInput carries the already-parsed registration fields.
type RegisterInput struct {
	FullName string
	Document string
	Email    string
	Password string
	Type     string
}

// Service registers and looks up users.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}
