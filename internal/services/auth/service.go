// Package auth issues JWTs for registered users.
package auth

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/sirupsen/logrus"

	"flux/internal/errors"
	"flux/internal/repositories"
	"flux/internal/utils"
)

// Service authenticates users and issues tokens.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type service struct {
	users  repositories.UserRepository
	secret string
	ttl    time.Duration
	log    *logrus.Entry
}

// NewService creates the auth service.
func NewService(users repositories.UserRepository, secret string, ttl time.Duration) Service {
	if users == nil {
		panic("auth service: repository is required")
	}
	return &service{
		users:  users,
		secret: secret,
		ttl:    ttl,
		log:    logrus.WithField("component", "auth"),
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return "", errors.ErrInvalidCredentials
		}
		return "", err
	}

	if !utils.CheckPassword(user.Password, password) {
		s.log.WithField("user", user.ID).Warn("failed login attempt")
		return "", errors.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Type, s.secret, s.ttl)
	if err != nil {
		return "", err
	}
	return token, nil
}
