package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"flux/internal/models"
)

// ErrCacheMiss is returned when a key is absent.
var ErrCacheMiss = redis.Nil

// Service is a thin JSON cache over redis. Wallet entries are written on
// read and invalidated after every balance mutation.
type Service struct {
	client *redis.Client
	ttl    time.Duration
}

// NewService creates a cache service with the given entry TTL.
func NewService(client *redis.Client, ttl time.Duration) *Service {
	return &Service{client: client, ttl: ttl}
}

func walletKey(userID uint) string {
	return fmt.Sprintf("wallet:user:%d", userID)
}

// GetWallet returns the cached wallet for a user, or ErrCacheMiss.
func (s *Service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	data, err := s.client.Get(ctx, walletKey(userID)).Bytes()
	if err != nil {
		return nil, err
	}
	var wallet models.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, fmt.Errorf("failed to decode cached wallet: %w", err)
	}
	return &wallet, nil
}

// SetWallet caches a wallet keyed by its owning user.
func (s *Service) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("failed to encode wallet: %w", err)
	}
	return s.client.Set(ctx, walletKey(wallet.UserID), data, s.ttl).Err()
}

// InvalidateWallet drops the cached wallet for a user.
func (s *Service) InvalidateWallet(ctx context.Context, userID uint) error {
	return s.client.Del(ctx, walletKey(userID)).Err()
}

// Close releases the underlying redis connection.
func (s *Service) Close() error {
	return s.client.Close()
}
