package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/clicker/internal/models"
	"github.com/sbilibin2017/clicker/internal/repositories"
	"github.com/sbilibin2017/clicker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEditKey = "edit-key-0123456789"

type adminMocks struct {
	users       *services.MockUserDirectory
	remover     *services.MockUserRemover
	scores      *services.MockScoreSetter
	leaderboard *services.MockLeaderboardInvalidator
}

func newAdminService(t *testing.T) (*services.AdminService, adminMocks) {
	ctrl := gomock.NewController(t)
	m := adminMocks{
		users:       services.NewMockUserDirectory(ctrl),
		remover:     services.NewMockUserRemover(ctrl),
		scores:      services.NewMockScoreSetter(ctrl),
		leaderboard: services.NewMockLeaderboardInvalidator(ctrl),
	}
	svc := services.NewAdminService(m.users, m.remover, m.scores, m.leaderboard, nil, testEditKey)
	return svc, m
}

func TestAdminService_ListUsers(t *testing.T) {
	ctx := context.Background()
	svc, m := newAdminService(t)

	users := []models.UserSummary{{UserID: 1, Username: "admin", IsAdmin: true}, {UserID: 2, Username: "alice"}}
	m.users.EXPECT().List(ctx).Return(users, nil)

	got, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestAdminService_ListScores(t *testing.T) {
	ctx := context.Background()
	svc, m := newAdminService(t)

	m.users.EXPECT().ListScores(ctx).Return(nil, errors.New("db error"))

	_, err := svc.ListScores(ctx)
	assert.EqualError(t, err, "db error")
}

func TestAdminService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		deleted    bool
		repoErr    error
		invalidate bool
		wantErr    error
	}{
		{name: "deleted", deleted: true, invalidate: true},
		{name: "missing user", deleted: false, wantErr: services.ErrUserDoesNotExist},
		{name: "storage error", repoErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAdminService(t)
			m.remover.EXPECT().Delete(ctx, int64(2)).Return(tt.deleted, tt.repoErr)
			if tt.invalidate {
				m.leaderboard.EXPECT().Invalidate(ctx)
			}

			err := svc.DeleteUser(ctx, 2)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdminService_SetScore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		key      string
		score    int64
		callRepo bool
		repoErr  error
		wantErr  error
	}{
		{name: "updated", key: testEditKey, score: 500, callRepo: true},
		{name: "wrong key", key: "wrong", score: 500, wantErr: services.ErrInvalidAdminKey},
		{name: "empty key", key: "", score: 500, wantErr: services.ErrInvalidAdminKey},
		{name: "negative score", key: testEditKey, score: -5, wantErr: services.ErrInvalidInput},
		{name: "missing user", key: testEditKey, score: 1, callRepo: true, repoErr: repositories.ErrNotFound, wantErr: services.ErrUserDoesNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAdminService(t)
			if tt.callRepo {
				m.scores.EXPECT().SetScore(ctx, int64(3), tt.score).Return(tt.repoErr)
				if tt.repoErr == nil {
					m.leaderboard.EXPECT().Invalidate(ctx)
				}
			}

			err := svc.SetScore(ctx, tt.key, 3, tt.score)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAdminService_CheckEditKey_Unconfigured(t *testing.T) {
	svc := services.NewAdminService(nil, nil, nil, nil, nil, "")
	assert.ErrorIs(t, svc.CheckEditKey(""), services.ErrInvalidAdminKey)
}
