package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/sbilibin2017/clicker/internal/logger"
	"github.com/sbilibin2017/clicker/internal/models"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=services

// ErrInvalidAdminKey is returned when the score editor key does not match.
var ErrInvalidAdminKey = errors.New("invalid admin key")

// UserDirectory lists users for the admin views.
type UserDirectory interface {
	List(ctx context.Context) ([]models.UserSummary, error)
	ListScores(ctx context.Context) ([]models.UserScore, error)
}

// UserRemover deletes users.
type UserRemover interface {
	Delete(ctx context.Context, userID int64) (bool, error)
}

// ScoreSetter overwrites scores.
type ScoreSetter interface {
	SetScore(ctx context.Context, userID, score int64) error
}

// LeaderboardInvalidator drops cached leaderboard pages.
type LeaderboardInvalidator interface {
	Invalidate(ctx context.Context)
}

// AdminService implements user administration and score editing.
type AdminService struct {
	users       UserDirectory
	remover     UserRemover
	scores      ScoreSetter
	leaderboard LeaderboardInvalidator
	events      *EventPublisher
	editKey     string
}

// NewAdminService creates a new AdminService. editKey guards SetScore.
func NewAdminService(
	users UserDirectory,
	remover UserRemover,
	scores ScoreSetter,
	leaderboard LeaderboardInvalidator,
	events *EventPublisher,
	editKey string,
) *AdminService {
	return &AdminService{
		users:       users,
		remover:     remover,
		scores:      scores,
		leaderboard: leaderboard,
		events:      events,
		editKey:     editKey,
	}
}

// ListUsers returns every user ordered by id.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// ListScores returns (id, username, score) for every user.
func (s *AdminService) ListScores(ctx context.Context) ([]models.UserScore, error) {
	scores, err := s.users.ListScores(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list user scores", "error", err)
		return nil, err
	}
	return scores, nil
}

// DeleteUser removes the user with its save and upgrades.
// It returns ErrUserDoesNotExist when no row was removed.
func (s *AdminService) DeleteUser(ctx context.Context, userID int64) error {
	deleted, err := s.remover.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "userID", userID, "error", err)
		return err
	}
	if !deleted {
		return ErrUserDoesNotExist
	}

	s.leaderboard.Invalidate(ctx)
	s.events.Publish(ctx, newEvent(models.OperationDeleteUser, userID, 0, 0))
	logger.Log.Infow("user deleted", "userID", userID)

	return nil
}

// CheckEditKey compares key with the configured edit key in constant time.
func (s *AdminService) CheckEditKey(key string) error {
	if s.editKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.editKey)) != 1 {
		return ErrInvalidAdminKey
	}
	return nil
}

// SetScore overwrites the user's score after checking the edit key.
func (s *AdminService) SetScore(ctx context.Context, key string, userID, score int64) error {
	if err := s.CheckEditKey(key); err != nil {
		logger.Log.Infow("score edit rejected", "userID", userID)
		return err
	}
	if score < 0 {
		return fmt.Errorf("%w: score must not be negative", ErrInvalidInput)
	}

	if err := s.scores.SetScore(ctx, userID, score); err != nil {
		return notFoundAs(err, ErrUserDoesNotExist, "failed to set score", "userID", userID, "score", score)
	}

	s.leaderboard.Invalidate(ctx)
	s.events.Publish(ctx, newEvent(models.OperationSetScore, userID, score, 0))
	logger.Log.Infow("score updated", "userID", userID, "score", score)

	return nil
}
