package repositories_test

import (
	"context"
	"testing"

	"github.com/sbilibin2017/clicker/internal/repositories"
	"github.com/sbilibin2017/clicker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgradeReadRepository_ListSeededCatalog(t *testing.T) {
	db := testutil.NewSQLiteDB(t)

	repo := repositories.NewUpgradeReadRepository(db, repositories.TxFromContext)

	upgrades, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, upgrades, 3)

	names := []string{upgrades[0].Name, upgrades[1].Name, upgrades[2].Name}
	assert.Equal(t, []string{"Auto-Clicker", "Double Points", "Mega Clicker"}, names)
	assert.Equal(t, int64(10), upgrades[0].Cost)
	assert.Equal(t, int64(1), upgrades[0].Increment)
	assert.Equal(t, int64(100), upgrades[2].Cost)
	assert.Equal(t, int64(5), upgrades[2].Increment)
}

func TestUpgradeReadRepository_GetByID(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	repo := repositories.NewUpgradeReadRepository(db, repositories.TxFromContext)

	upgrade, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Double Points", upgrade.Name)

	upgrade, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, upgrade)
}

func TestUpgradeWriteRepository_GrantTwiceIncrementsQuantity(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	userID, err := repositories.NewUserWriteRepository(db, repositories.TxFromContext).Create(ctx, "alice", "hash", false)
	require.NoError(t, err)

	writeRepo := repositories.NewUpgradeWriteRepository(db, repositories.TxFromContext)
	readRepo := repositories.NewUpgradeReadRepository(db, repositories.TxFromContext)

	quantity, err := writeRepo.Grant(ctx, userID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), quantity)

	quantity, err = writeRepo.Grant(ctx, userID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), quantity)

	assert.Equal(t, 1, testutil.CountRows(t, db, "user_upgrades"))

	owned, err := readRepo.ListOwned(ctx, userID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "Auto-Clicker", owned[0].Name)
	assert.Equal(t, int64(2), owned[0].Quantity)
	assert.False(t, owned[0].PurchasedAt.IsZero())
}

func TestUpgradeWriteRepository_GrantUnknownUpgrade(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	userID, err := repositories.NewUserWriteRepository(db, repositories.TxFromContext).Create(ctx, "bob", "hash", false)
	require.NoError(t, err)

	_, err = repositories.NewUpgradeWriteRepository(db, repositories.TxFromContext).Grant(ctx, userID, 404)
	assert.Error(t, err)
	assert.Equal(t, 0, testutil.CountRows(t, db, "user_upgrades"))
}

func TestUpgradeReadRepository_ListOwnedEmpty(t *testing.T) {
	db := testutil.NewSQLiteDB(t)

	owned, err := repositories.NewUpgradeReadRepository(db, repositories.TxFromContext).ListOwned(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, owned)
}
