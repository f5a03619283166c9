package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/clicker/internal/models"
)

// SaveReadRepository handles game save read operations
type SaveReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSaveReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SaveReadRepository {
	return &SaveReadRepository{db: db, txGetter: txGetter}
}

// GetByUserID returns the save owned by the user or ErrNotFound.
func (r *SaveReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.GameSaveDB, error) {
	const query = `
		SELECT id, user_id, score, clicks, last_updated
		FROM game_saves
		WHERE user_id = ?
	`
	ex := executor(ctx, r.db, r.txGetter)

	var save models.GameSaveDB
	err := sqlx.GetContext(ctx, ex, &save, ex.Rebind(query), userID)

	logQuery(query, []any{userID}, save, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &save, nil
}

// SaveWriteRepository handles game save write operations
type SaveWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSaveWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SaveWriteRepository {
	return &SaveWriteRepository{db: db, txGetter: txGetter}
}

// Update overwrites score, clicks and last_updated. Last writer wins.
func (r *SaveWriteRepository) Update(ctx context.Context, userID, score, clicks int64) error {
	const query = `
		UPDATE game_saves
		SET score = ?, clicks = ?, last_updated = ?
		WHERE user_id = ?
	`
	return r.exec(ctx, query, score, clicks, time.Now().UTC(), userID)
}

// SetScore overwrites the score only, leaving clicks untouched.
func (r *SaveWriteRepository) SetScore(ctx context.Context, userID, score int64) error {
	const query = `
		UPDATE game_saves
		SET score = ?, last_updated = ?
		WHERE user_id = ?
	`
	return r.exec(ctx, query, score, time.Now().UTC(), userID)
}

// AddClick adds points to the score and one click in a single statement and
// returns the updated save.
func (r *SaveWriteRepository) AddClick(ctx context.Context, userID, points int64) (*models.GameSaveDB, error) {
	const query = `
		UPDATE game_saves
		SET score = score + ?, clicks = clicks + 1, last_updated = ?
		WHERE user_id = ?
	`
	const selectQuery = `
		SELECT id, user_id, score, clicks, last_updated
		FROM game_saves
		WHERE user_id = ?
	`
	if err := r.exec(ctx, query, points, time.Now().UTC(), userID); err != nil {
		return nil, err
	}

	ex := executor(ctx, r.db, r.txGetter)

	var save models.GameSaveDB
	err := sqlx.GetContext(ctx, ex, &save, ex.Rebind(selectQuery), userID)

	logQuery(selectQuery, []any{userID}, save, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &save, nil
}

func (r *SaveWriteRepository) exec(ctx context.Context, query string, args ...any) error {
	ex := executor(ctx, r.db, r.txGetter)
	res, err := ex.ExecContext(ctx, ex.Rebind(query), args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
