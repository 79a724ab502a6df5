// Package user implements registration. A new user and their wallet, with
// the configured starting balance, are created inside one unit-of-work so
// no user ever exists without a wallet.
package user

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"flux/internal/errors"
	"flux/internal/models"
	"flux/internal/repositories"
	"flux/internal/utils"
	"flux/internal/validation"
)

type service struct {
	users           repositories.UserRepository
	uow             repositories.UnitOfWork
	startingBalance decimal.Decimal
	log             *logrus.Entry
}

// NewService creates the registration service.
func NewService(users repositories.UserRepository, uow repositories.UnitOfWork, startingBalance decimal.Decimal) Service {
	if users == nil || uow == nil {
		panic("user service: repository and unit-of-work are required")
	}
	return &service{
		users:           users,
		uow:             uow,
		startingBalance: startingBalance,
		log:             logrus.WithField("component", "user"),
	}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	document, err := validation.NormalizeDocument(input.Document)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	userType, err := validation.ValidateUserType(input.Type)
	if err != nil {
		return nil, err
	}
	if input.FullName == "" {
		return nil, validation.ErrInvalidFullName
	}

	if err := s.checkUniqueness(ctx, input.Email, document); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		FullName: input.FullName,
		Document: document,
		Email:    input.Email,
		Password: hashed,
		Type:     userType,
	}

	err = s.uow.RunAtomically(ctx, func(stores repositories.Stores) error {
		if err := stores.Users.Create(ctx, newUser); err != nil {
			return err
		}
		wallet := &models.Wallet{
			UserID:  newUser.ID,
			Balance: s.startingBalance,
		}
		return stores.Wallets.Create(ctx, wallet)
	})
	if err != nil {
		s.log.WithField("error", err).Error("user registration failed")
		return nil, errors.ErrPersistenceFailure
	}

	s.log.WithFields(logrus.Fields{
		"user": newUser.ID,
		"type": newUser.Type,
	}).Info("user registered")
	return newUser, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *service) checkUniqueness(ctx context.Context, email, document string) error {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return errors.ErrEmailTaken
	} else if !stderrors.Is(err, errors.ErrUserNotFound) {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	if _, err := s.users.GetByDocument(ctx, document); err == nil {
		return errors.ErrDocumentTaken
	} else if !stderrors.Is(err, errors.ErrUserNotFound) {
		return fmt.Errorf("failed to check document uniqueness: %w", err)
	}
	return nil
}
