package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flux/internal/errors"
	"flux/internal/models"
	"flux/internal/utils"
)

type stubUserRepo struct {
	user *models.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (r *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return nil, errors.ErrUserNotFound
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, errors.ErrUserNotFound
}

func (r *stubUserRepo) GetByDocument(ctx context.Context, document string) (*models.User, error) {
	return nil, errors.ErrUserNotFound
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("Sup3rSecret")
	require.NoError(t, err)

	repo := &stubUserRepo{user: &models.User{
		ID:       1,
		Email:    "alice@example.com",
		Password: hash,
		Type:     models.UserTypeCommon,
	}}
	service := NewService(repo, "test-secret", time.Hour)

	t.Run("valid credentials", func(t *testing.T) {
		token, err := service.Login(context.Background(), "alice@example.com", "Sup3rSecret")
		require.NoError(t, err)

		claims, err := utils.ParseToken(token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
		assert.Equal(t, models.UserTypeCommon, claims.UserType)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), "alice@example.com", "wrong")
		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(context.Background(), "nobody@example.com", "Sup3rSecret")
		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})
}
