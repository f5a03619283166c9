package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/clicker/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the user with the given username or ErrNotFound.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, is_admin, created_at
		FROM users
		WHERE username = ?
	`
	return r.getOne(ctx, query, username)
}

// GetByID returns the user with the given id or ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, is_admin, created_at
		FROM users
		WHERE id = ?
	`
	return r.getOne(ctx, query, userID)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	ex := executor(ctx, r.db, r.txGetter)

	var user models.UserDB
	err := sqlx.GetContext(ctx, ex, &user, ex.Rebind(query), arg)

	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every user in id order.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserSummary, error) {
	const query = `
		SELECT id, username, is_admin, created_at
		FROM users
		ORDER BY id
	`
	ex := executor(ctx, r.db, r.txGetter)

	var users []models.UserSummary
	err := sqlx.SelectContext(ctx, ex, &users, query)

	logQuery(query, nil, len(users), err)

	return users, err
}

// ListScores returns every user joined with its current score.
func (r *UserReadRepository) ListScores(ctx context.Context) ([]models.UserScore, error) {
	const query = `
		SELECT u.id, u.username, gs.score
		FROM users u
		JOIN game_saves gs ON u.id = gs.user_id
		ORDER BY u.id
	`
	ex := executor(ctx, r.db, r.txGetter)

	var scores []models.UserScore
	err := sqlx.SelectContext(ctx, ex, &scores, query)

	logQuery(query, nil, len(scores), err)

	return scores, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user and its zero-valued save in one transaction and
// returns the new user id. A taken username yields ErrUserAlreadyExists and
// leaves no rows behind.
func (r *UserWriteRepository) Create(ctx context.Context, username, passwordHash string, isAdmin bool) (int64, error) {
	const insertUser = `
		INSERT INTO users (username, password_hash, is_admin, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`
	const insertSave = `
		INSERT INTO game_saves (user_id, score, clicks, last_updated)
		VALUES (?, 0, 0, ?)
	`

	var userID int64
	err := inTx(ctx, r.db, r.txGetter, func(ex sqlx.ExtContext) error {
		now := time.Now().UTC()

		err := sqlx.GetContext(ctx, ex, &userID, ex.Rebind(insertUser), username, passwordHash, isAdmin, now)
		logQuery(insertUser, []any{username, isAdmin}, userID, err)
		if err != nil {
			return err
		}

		_, err = ex.ExecContext(ctx, ex.Rebind(insertSave), userID, now)
		logQuery(insertSave, []any{userID}, nil, err)
		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrUserAlreadyExists
		}
		return 0, err
	}
	return userID, nil
}

// Delete removes a user; its save and owned upgrades go with it through the
// cascading foreign keys. It reports whether a row was removed.
func (r *UserWriteRepository) Delete(ctx context.Context, userID int64) (bool, error) {
	const query = `DELETE FROM users WHERE id = ?`

	ex := executor(ctx, r.db, r.txGetter)
	res, err := ex.ExecContext(ctx, ex.Rebind(query), userID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{userID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
