// Package wallet provides read access to user wallets with a redis-backed
// cache in front of the store. Balance mutation belongs to the transaction
// engine and never happens here.
package wallet

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"flux/internal/models"
	"flux/internal/repositories"
)

type service struct {
	repo  repositories.WalletRepository
	cache Cache
	log   *logrus.Entry
}

// NewService creates a wallet service. The cache is optional.
func NewService(repo repositories.WalletRepository, cache Cache) Service {
	if repo == nil {
		panic("wallet service: repository is required")
	}
	return &service{
		repo:  repo,
		cache: cache,
		log:   logrus.WithField("component", "wallet"),
	}
}

func (s *service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	if s.cache != nil {
		if wallet, err := s.cache.GetWallet(ctx, userID); err == nil {
			return wallet, nil
		}
	}

	wallet, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetWallet(ctx, wallet); err != nil {
			s.log.WithFields(logrus.Fields{
				"user":  userID,
				"error": err,
			}).Warn("failed to cache wallet")
		}
	}
	return wallet, nil
}

func (s *service) GetBalance(ctx context.Context, userID uint) (decimal.Decimal, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}
