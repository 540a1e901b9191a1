package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Akachukwuu/earnquiza/internal/domain/entity"
	cacheport "github.com/Akachukwuu/earnquiza/internal/domain/port/cache"
	"github.com/redis/go-redis/v9"
)

// RedisLeaderboard caches leaderboard snapshots in Redis
type RedisLeaderboard struct {
	client *redis.Client
}

// NewRedisLeaderboard creates a Redis-backed leaderboard cache
func NewRedisLeaderboard(client *redis.Client) cacheport.LeaderboardCache {
	return &RedisLeaderboard{client: client}
}

func leaderboardKey(limit int) string {
	return fmt.Sprintf("leaderboard:top:%d", limit)
}

// Get returns the cached snapshot for the given size, if present
func (c *RedisLeaderboard) Get(ctx context.Context, limit int) ([]entity.LeaderboardEntry, bool, error) {
	payload, err := c.client.Get(ctx, leaderboardKey(limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read leaderboard cache: %w", err)
	}

	var entries []entity.LeaderboardEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, false, fmt.Errorf("failed to decode leaderboard cache: %w", err)
	}
	return entries, true, nil
}

// Set stores a snapshot with the given TTL
func (c *RedisLeaderboard) Set(ctx context.Context, limit int, entries []entity.LeaderboardEntry, ttl time.Duration) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode leaderboard cache: %w", err)
	}
	if err := c.client.Set(ctx, leaderboardKey(limit), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write leaderboard cache: %w", err)
	}
	return nil
}
