package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/clicker/internal/models"
)

// LeaderboardReadRepository reads the ranking of users by score
type LeaderboardReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLeaderboardReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LeaderboardReadRepository {
	return &LeaderboardReadRepository{db: db, txGetter: txGetter}
}

// Top returns users ordered by score descending. A limit <= 0 returns every row.
func (r *LeaderboardReadRepository) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT u.username, gs.score, gs.clicks
		FROM game_saves gs
		JOIN users u ON gs.user_id = u.id
		ORDER BY gs.score DESC, u.id
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	ex := executor(ctx, r.db, r.txGetter)

	var entries []models.LeaderboardEntry
	err := sqlx.SelectContext(ctx, ex, &entries, ex.Rebind(query), args...)

	logQuery(query, args, len(entries), err)

	return entries, err
}
