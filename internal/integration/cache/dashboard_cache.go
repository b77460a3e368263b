// Package cache provides a redis-backed cache for dashboard responses.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a cached dashboard response stays valid. Dashboard
// figures only move when the user writes entries, and writes invalidate the
// whole user prefix, so the TTL is a backstop rather than the primary
// freshness mechanism.
const DefaultTTL = 5 * time.Minute

// ErrMiss is returned when the requested key is not cached.
var ErrMiss = errors.New("cache miss")

// DashboardCache stores serialized dashboard responses per user and window.
type DashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache creates a new DashboardCache instance.
func NewDashboardCache(client *redis.Client, ttl time.Duration) *DashboardCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &DashboardCache{
		client: client,
		ttl:    ttl,
	}
}

// Key builds the cache key for a user, endpoint and time window.
func (c *DashboardCache) Key(userID uuid.UUID, endpoint string, window string) string {
	return fmt.Sprintf("dashboard:%s:%s:%s", userID, endpoint, window)
}

// Get unmarshals the cached value for key into dest. Returns ErrMiss when
// the key is absent or expired.
func (c *DashboardCache) Get(ctx context.Context, key string, dest any) error {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return fmt.Errorf("failed to read cache: %w", err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("failed to decode cached value: %w", err)
	}
	return nil
}

// Set stores value under key with the configured TTL.
func (c *DashboardCache) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// InvalidateUser drops every cached dashboard response for the user. Called
// after entry writes so the next dashboard read recomputes.
func (c *DashboardCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("dashboard:%s:*", userID)

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cache keys: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
