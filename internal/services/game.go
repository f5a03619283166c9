package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/clicker/internal/logger"
	"github.com/sbilibin2017/clicker/internal/models"
	"github.com/sbilibin2017/clicker/internal/repositories"
	"github.com/sbilibin2017/clicker/internal/scoring"
)

//go:generate mockgen -source=game.go -destination=game_mock.go -package=services

var (
	// ErrInsufficientScore is returned when an upgrade costs more than the current score.
	ErrInsufficientScore = scoring.ErrInsufficientScore
	// ErrUpgradeNotFound is returned for an unknown upgrade id.
	ErrUpgradeNotFound = errors.New("upgrade not found")
)

// SaveReader reads game saves.
type SaveReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.GameSaveDB, error)
}

// SaveWriter mutates game saves.
type SaveWriter interface {
	Update(ctx context.Context, userID, score, clicks int64) error
	AddClick(ctx context.Context, userID, points int64) (*models.GameSaveDB, error)
}

// UpgradeReader reads the catalog and ownership.
type UpgradeReader interface {
	List(ctx context.Context) ([]models.UpgradeDB, error)
	GetByID(ctx context.Context, upgradeID int64) (*models.UpgradeDB, error)
	ListOwned(ctx context.Context, userID int64) ([]models.OwnedUpgrade, error)
}

// UpgradeWriter grants upgrades.
type UpgradeWriter interface {
	Grant(ctx context.Context, userID, upgradeID int64) (int64, error)
}

// TxRunner runs fn inside a database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// GameService implements clicks, purchases and saves.
type GameService struct {
	saveReader    SaveReader
	saveWriter    SaveWriter
	upgradeReader UpgradeReader
	upgradeWriter UpgradeWriter
	tx            TxRunner
	events        *EventPublisher
	recorder      GameRecorder
}

// NewGameService creates a new GameService.
func NewGameService(
	saveReader SaveReader,
	saveWriter SaveWriter,
	upgradeReader UpgradeReader,
	upgradeWriter UpgradeWriter,
	tx TxRunner,
	events *EventPublisher,
	recorder GameRecorder,
) *GameService {
	return &GameService{
		saveReader:    saveReader,
		saveWriter:    saveWriter,
		upgradeReader: upgradeReader,
		upgradeWriter: upgradeWriter,
		tx:            tx,
		events:        events,
		recorder:      recorderOrNop(recorder),
	}
}

// State returns the user's save together with owned upgrades.
func (s *GameService) State(ctx context.Context, userID int64) (*models.GameState, error) {
	save, err := s.saveReader.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserDoesNotExist, "failed to get save", "userID", userID)
	}

	owned, err := s.upgradeReader.ListOwned(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list owned upgrades", "userID", userID, "error", err)
		return nil, err
	}

	return &models.GameState{Save: *save, Owned: owned}, nil
}

// Upgrades returns the catalog in catalog order.
func (s *GameService) Upgrades(ctx context.Context) ([]models.UpgradeDB, error) {
	upgrades, err := s.upgradeReader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list upgrades", "error", err)
		return nil, err
	}
	return upgrades, nil
}

// Click records one click for the user and returns the updated save.
func (s *GameService) Click(ctx context.Context, userID int64) (*models.GameSaveDB, error) {
	owned, err := s.upgradeReader.ListOwned(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list owned upgrades", "userID", userID, "error", err)
		return nil, err
	}

	points := scoring.ClickPoints(owned)
	save, err := s.saveWriter.AddClick(ctx, userID, points)
	if err != nil {
		return nil, notFoundAs(err, ErrUserDoesNotExist, "failed to add click", "userID", userID, "points", points)
	}

	s.recorder.Clicked(points)
	s.events.Publish(ctx, newEvent(models.OperationClick, userID, save.Score, points))

	return save, nil
}

// Purchase buys one unit of the upgrade. The score deduction and the grant
// are committed together; on failure nothing is written.
func (s *GameService) Purchase(ctx context.Context, userID, upgradeID int64) (*models.GameState, error) {
	var (
		upgrade *models.UpgradeDB
		save    *models.GameSaveDB
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		upgrade, err = s.upgradeReader.GetByID(ctx, upgradeID)
		if err != nil {
			return notFoundAs(err, ErrUpgradeNotFound, "failed to get upgrade", "upgradeID", upgradeID)
		}

		save, err = s.saveReader.GetByUserID(ctx, userID)
		if err != nil {
			return notFoundAs(err, ErrUserDoesNotExist, "failed to get save", "userID", userID)
		}

		if err := scoring.ApplyPurchase(save, *upgrade); err != nil {
			logger.Log.Infow("insufficient score for upgrade", "userID", userID, "upgrade", upgrade.Name, "score", save.Score, "cost", upgrade.Cost)
			return err
		}

		if err := s.saveWriter.Update(ctx, userID, save.Score, save.Clicks); err != nil {
			logger.Log.Errorw("failed to update save", "userID", userID, "error", err)
			return err
		}

		if _, err := s.upgradeWriter.Grant(ctx, userID, upgradeID); err != nil {
			logger.Log.Errorw("failed to grant upgrade", "userID", userID, "upgradeID", upgradeID, "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Purchased(upgrade.Name)
	event := newEvent(models.OperationPurchase, userID, save.Score, -upgrade.Cost)
	event.UpgradeID = upgradeID
	s.events.Publish(ctx, event)

	return s.State(ctx, userID)
}

// Save overwrites the user's score and clicks. Last write wins.
func (s *GameService) Save(ctx context.Context, userID, score, clicks int64) error {
	if score < 0 || clicks < 0 {
		return fmt.Errorf("%w: score and clicks must not be negative", ErrInvalidInput)
	}

	if err := s.saveWriter.Update(ctx, userID, score, clicks); err != nil {
		return notFoundAs(err, ErrUserDoesNotExist, "failed to save game", "userID", userID)
	}
	return nil
}

// notFoundAs maps repositories.ErrNotFound to target and logs anything else.
func notFoundAs(err, target error, msg string, keysAndValues ...any) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return target
	}
	logger.Log.Errorw(msg, append(keysAndValues, "error", err)...)
	return err
}
