package services

import (
	"context"

	"github.com/sbilibin2017/clicker/internal/logger"
	"github.com/sbilibin2017/clicker/internal/models"
	"github.com/sbilibin2017/clicker/internal/repositories"
)

//go:generate mockgen -source=leaderboard.go -destination=leaderboard_mock.go -package=services

// Leaderboard page sizes used by the front-ends.
const (
	IndexLeaderboardSize = 10
	FullLeaderboard      = 0
)

// LeaderboardReader reads ranked scores from storage.
type LeaderboardReader interface {
	Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// LeaderboardCache caches leaderboard pages.
type LeaderboardCache interface {
	Get(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	Set(ctx context.Context, limit int, entries []models.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

// LeaderboardService serves the leaderboard, reading through an optional cache.
type LeaderboardService struct {
	reader LeaderboardReader
	cache  LeaderboardCache
}

// NewLeaderboardService creates a new LeaderboardService. cache may be nil.
func NewLeaderboardService(reader LeaderboardReader, cache LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{
		reader: reader,
		cache:  cache,
	}
}

// Top returns at most limit entries ordered by score descending.
// A limit of zero or less returns every user.
func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if s.cache != nil {
		entries, err := s.cache.Get(ctx, limit)
		if err == nil {
			return entries, nil
		}
	}

	entries, err := s.reader.Top(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to get leaderboard", "limit", limit, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, limit, entries); err != nil {
			logger.Log.Errorw("failed to cache leaderboard", "limit", limit, "error", err)
		}
	}

	return entries, nil
}

// Invalidate drops every cached page once the surrounding transaction commits.
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	repositories.AfterCommit(ctx, func() {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate leaderboard cache", "error", err)
		}
	})
}
