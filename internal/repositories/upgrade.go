package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/clicker/internal/models"
)

// UpgradeReadRepository handles catalog and ownership reads
type UpgradeReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUpgradeReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UpgradeReadRepository {
	return &UpgradeReadRepository{db: db, txGetter: txGetter}
}

// List returns the catalog in insertion order.
func (r *UpgradeReadRepository) List(ctx context.Context) ([]models.UpgradeDB, error) {
	const query = `
		SELECT id, name, cost, increment, description
		FROM upgrades
		ORDER BY id
	`
	ex := executor(ctx, r.db, r.txGetter)

	var upgrades []models.UpgradeDB
	err := sqlx.SelectContext(ctx, ex, &upgrades, query)

	logQuery(query, nil, len(upgrades), err)

	return upgrades, err
}

// GetByID returns a catalog entry or ErrNotFound.
func (r *UpgradeReadRepository) GetByID(ctx context.Context, upgradeID int64) (*models.UpgradeDB, error) {
	const query = `
		SELECT id, name, cost, increment, description
		FROM upgrades
		WHERE id = ?
	`
	ex := executor(ctx, r.db, r.txGetter)

	var upgrade models.UpgradeDB
	err := sqlx.GetContext(ctx, ex, &upgrade, ex.Rebind(query), upgradeID)

	logQuery(query, []any{upgradeID}, upgrade.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &upgrade, nil
}

// ListOwned returns the upgrades a user holds with their quantities.
func (r *UpgradeReadRepository) ListOwned(ctx context.Context, userID int64) ([]models.OwnedUpgrade, error) {
	const query = `
		SELECT u.id, u.name, u.cost, u.increment, u.description, uu.quantity, uu.purchased_at
		FROM upgrades u
		JOIN user_upgrades uu ON u.id = uu.upgrade_id
		WHERE uu.user_id = ?
		ORDER BY u.id
	`
	ex := executor(ctx, r.db, r.txGetter)

	var owned []models.OwnedUpgrade
	err := sqlx.SelectContext(ctx, ex, &owned, ex.Rebind(query), userID)

	logQuery(query, []any{userID}, len(owned), err)

	return owned, err
}

// UpgradeWriteRepository handles ownership writes
type UpgradeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUpgradeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UpgradeWriteRepository {
	return &UpgradeWriteRepository{db: db, txGetter: txGetter}
}

// Grant performs an UPSERT: creates the ownership row with quantity 1,
// otherwise increments its quantity. Returns the resulting quantity.
func (r *UpgradeWriteRepository) Grant(ctx context.Context, userID, upgradeID int64) (int64, error) {
	const query = `
		INSERT INTO user_upgrades (user_id, upgrade_id, quantity, purchased_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (user_id, upgrade_id)
		DO UPDATE SET quantity = user_upgrades.quantity + 1
		RETURNING quantity
	`
	ex := executor(ctx, r.db, r.txGetter)

	var quantity int64
	err := sqlx.GetContext(ctx, ex, &quantity, ex.Rebind(query), userID, upgradeID, time.Now().UTC())

	logQuery(query, []any{userID, upgradeID}, quantity, err)

	return quantity, err
}
