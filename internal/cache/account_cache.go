// Package cache holds the Redis read-through cache for the account list.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"school-erp/internal/config"
	"school-erp/internal/models"

	"github.com/redis/go-redis/v9"
)

const accountListKey = "accounts:list"

// AccountCache stores the serialized account list in Redis
type AccountCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewAccountCache connects to the configured Redis instance
func NewAccountCache(cfg *config.CacheConfig) *AccountCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewAccountCacheWithClient(client, cfg.AccountTTL)
}

// NewAccountCacheWithClient wraps an existing client
func NewAccountCacheWithClient(client redis.UniversalClient, ttl time.Duration) *AccountCache {
	return &AccountCache{client: client, ttl: ttl}
}

// GetAccounts returns the cached list. ok is false on a miss or any Redis error.
func (c *AccountCache) GetAccounts(ctx context.Context) ([]models.Account, bool, error) {
	val, err := c.client.Get(ctx, accountListKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read account cache: %w", err)
	}

	var accounts []models.Account
	if err := json.Unmarshal([]byte(val), &accounts); err != nil {
		return nil, false, fmt.Errorf("failed to decode account cache: %w", err)
	}
	return accounts, true, nil
}

// SetAccounts replaces the cached list
func (c *AccountCache) SetAccounts(ctx context.Context, accounts []models.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode account cache: %w", err)
	}

	if err := c.client.Set(ctx, accountListKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write account cache: %w", err)
	}
	return nil
}

// InvalidateAccounts drops the cached list
func (c *AccountCache) InvalidateAccounts(ctx context.Context) error {
	if err := c.client.Del(ctx, accountListKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate account cache: %w", err)
	}
	return nil
}

// Close releases the Redis connection pool
func (c *AccountCache) Close() error {
	return c.client.Close()
}

// NoopAccountCache is used when no Redis address is configured; every read is a miss
type NoopAccountCache struct{}

func (NoopAccountCache) GetAccounts(context.Context) ([]models.Account, bool, error) {
	return nil, false, nil
}

func (NoopAccountCache) SetAccounts(context.Context, []models.Account) error { return nil }

func (NoopAccountCache) InvalidateAccounts(context.Context) error { return nil }

func (NoopAccountCache) Close() error { return nil }
