package repositories_test

import (
	"context"
	"testing"

	"github.com/sbilibin2017/clicker/internal/repositories"
	"github.com/sbilibin2017/clicker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWriteRepository_UpdateIsIdempotent(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	userID, err := repositories.NewUserWriteRepository(db, repositories.TxFromContext).Create(ctx, "alice", "hash", false)
	require.NoError(t, err)

	writeRepo := repositories.NewSaveWriteRepository(db, repositories.TxFromContext)
	readRepo := repositories.NewSaveReadRepository(db, repositories.TxFromContext)

	require.NoError(t, writeRepo.Update(ctx, userID, 120, 45))
	first, err := readRepo.GetByUserID(ctx, userID)
	require.NoError(t, err)

	require.NoError(t, writeRepo.Update(ctx, userID, 120, 45))
	second, err := readRepo.GetByUserID(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, int64(120), second.Score)
	assert.Equal(t, int64(45), second.Clicks)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Clicks, second.Clicks)
	assert.Equal(t, 1, testutil.CountRows(t, db, "game_saves"))
}

func TestSaveWriteRepository_SetScoreKeepsClicks(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	userID, err := repositories.NewUserWriteRepository(db, repositories.TxFromContext).Create(ctx, "bob", "hash", false)
	require.NoError(t, err)

	writeRepo := repositories.NewSaveWriteRepository(db, repositories.TxFromContext)
	readRepo := repositories.NewSaveReadRepository(db, repositories.TxFromContext)

	require.NoError(t, writeRepo.Update(ctx, userID, 5, 9))
	require.NoError(t, writeRepo.SetScore(ctx, userID, 1000))

	save, err := readRepo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), save.Score)
	assert.Equal(t, int64(9), save.Clicks)
}

func TestSaveWriteRepository_AddClick(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	userID, err := repositories.NewUserWriteRepository(db, repositories.TxFromContext).Create(ctx, "carol", "hash", false)
	require.NoError(t, err)

	repo := repositories.NewSaveWriteRepository(db, repositories.TxFromContext)

	save, err := repo.AddClick(ctx, userID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), save.Score)
	assert.Equal(t, int64(1), save.Clicks)

	save, err = repo.AddClick(ctx, userID, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(7), save.Score)
	assert.Equal(t, int64(2), save.Clicks)
}

func TestSaveRepositories_MissingUser(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	writeRepo := repositories.NewSaveWriteRepository(db, repositories.TxFromContext)
	readRepo := repositories.NewSaveReadRepository(db, repositories.TxFromContext)

	assert.ErrorIs(t, writeRepo.Update(ctx, 77, 1, 1), repositories.ErrNotFound)
	assert.ErrorIs(t, writeRepo.SetScore(ctx, 77, 1), repositories.ErrNotFound)

	_, err := writeRepo.AddClick(ctx, 77, 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	save, err := readRepo.GetByUserID(ctx, 77)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, save)
}
