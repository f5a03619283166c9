package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/clicker/internal/logger"
	"github.com/sbilibin2017/clicker/internal/models"
)

// ErrCacheMiss is returned when no cached leaderboard exists for a limit.
var ErrCacheMiss = errors.New("leaderboard not found in cache")

const leaderboardKeyPattern = "leaderboard:*"

// LeaderboardCacheRepository caches leaderboard pages in Redis
type LeaderboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached pages
}

// NewLeaderboardCacheRepository creates a new repository instance with the given TTL
func NewLeaderboardCacheRepository(client *redis.Client, expiration time.Duration) *LeaderboardCacheRepository {
	return &LeaderboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func leaderboardKey(limit int) string {
	if limit <= 0 {
		return "leaderboard:all"
	}
	return fmt.Sprintf("leaderboard:%d", limit)
}

// Get fetches a cached leaderboard page
func (r *LeaderboardCacheRepository) Get(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	key := leaderboardKey(limit)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("cache",
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(val, &entries); err != nil {
		logger.Log.Infow("cache",
			"key", key,
			"value", string(val),
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache",
		"key", key,
		"result", len(entries),
		"error", nil,
	)

	return entries, nil
}

// Set caches a leaderboard page with expiration
func (r *LeaderboardCacheRepository) Set(ctx context.Context, limit int, entries []models.LeaderboardEntry) error {
	key := leaderboardKey(limit)

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache",
		"key", key,
		"result", len(entries),
		"error", err,
	)

	return err
}

// Invalidate drops every cached leaderboard page
func (r *LeaderboardCacheRepository) Invalidate(ctx context.Context) error {
	var keys []string
	iter := r.client.Scan(ctx, 0, leaderboardKeyPattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Log.Infow("cache", "key", leaderboardKeyPattern, "result", nil, "error", err)
		return err
	}

	var err error
	if len(keys) > 0 {
		err = r.client.Del(ctx, keys...).Err()
	}

	logger.Log.Infow("cache",
		"key", leaderboardKeyPattern,
		"result", len(keys),
		"error", err,
	)

	return err
}
