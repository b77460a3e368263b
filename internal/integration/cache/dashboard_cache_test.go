// Package cache provides a redis-backed cache for dashboard responses.
package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*DashboardCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewDashboardCache(client, time.Minute), server
}

type cachedBalance struct {
	Current  string `json:"current"`
	Previous string `json:"previous"`
}

func TestDashboardCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	key := cache.Key(uuid.New(), "monthly-balance", "2024-05")

	want := cachedBalance{Current: "1200.50", Previous: "900"}
	if err := cache.Set(ctx, key, want); err != nil {
		t.Fatalf("unexpected error on set: %v", err)
	}

	var got cachedBalance
	if err := cache.Get(ctx, key, &got); err != nil {
		t.Fatalf("unexpected error on get: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestDashboardCache_MissOnAbsentKey(t *testing.T) {
	cache, _ := newTestCache(t)

	var got cachedBalance
	err := cache.Get(context.Background(), "dashboard:none", &got)
	if !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss, got %v", err)
	}
}

func TestDashboardCache_MissAfterExpiry(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()
	key := cache.Key(uuid.New(), "total-balance", "all")

	if err := cache.Set(ctx, key, cachedBalance{Current: "10"}); err != nil {
		t.Fatalf("unexpected error on set: %v", err)
	}

	server.FastForward(2 * time.Minute)

	var got cachedBalance
	if err := cache.Get(ctx, key, &got); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss after expiry, got %v", err)
	}
}

func TestDashboardCache_InvalidateUserDropsOnlyThatUser(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	userA, userB := uuid.New(), uuid.New()
	keyA := cache.Key(userA, "yearly-balance", "2024")
	keyB := cache.Key(userB, "yearly-balance", "2024")

	if err := cache.Set(ctx, keyA, cachedBalance{Current: "1"}); err != nil {
		t.Fatalf("unexpected error on set: %v", err)
	}
	if err := cache.Set(ctx, keyB, cachedBalance{Current: "2"}); err != nil {
		t.Fatalf("unexpected error on set: %v", err)
	}

	if err := cache.InvalidateUser(ctx, userA); err != nil {
		t.Fatalf("unexpected error on invalidate: %v", err)
	}

	var got cachedBalance
	if err := cache.Get(ctx, keyA, &got); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss for invalidated user, got %v", err)
	}
	if err := cache.Get(ctx, keyB, &got); err != nil {
		t.Fatalf("expected other user's cache to survive, got %v", err)
	}
}
