package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"remat/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent from the cache.
var ErrCacheMiss = errors.New("cache miss")

// CacheService wraps a Redis client with JSON marshaling and the
// account-specific key conventions used by the read path.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{client: client, ttl: defaultTTL}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache value: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func accountKey(uid string) string {
	return fmt.Sprintf("account:uid:%s", uid)
}

// CacheAccount stores an account snapshot under its UID key.
func (s *CacheService) CacheAccount(ctx context.Context, account *models.Account) error {
	if account == nil {
		return errors.New("cannot cache nil account")
	}
	return s.Set(ctx, accountKey(account.UID), account)
}

// GetAccount fetches a cached account, ErrCacheMiss when absent.
func (s *CacheService) GetAccount(ctx context.Context, uid string) (*models.Account, error) {
	var account models.Account
	if err := s.Get(ctx, accountKey(uid), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// InvalidateAccount drops the cached snapshot after a balance mutation.
func (s *CacheService) InvalidateAccount(ctx context.Context, uid string) error {
	return s.Delete(ctx, accountKey(uid))
}

// FlushAll flushes all keys from the cache.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the Redis client connection.
func (s *CacheService) Close() error {
	return s.client.Close()
}
