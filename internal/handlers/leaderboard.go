package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/clicker/internal/logger"
	"github.com/sbilibin2017/clicker/internal/models"
)

//go:generate mockgen -source=leaderboard.go -destination=leaderboard_mock.go -package=handlers

// DefaultLeaderboardLimit is used when the limit query parameter is absent.
const DefaultLeaderboardLimit = 10

// LeaderboardGetter returns ranked players.
type LeaderboardGetter interface {
	Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// NewLeaderboardHandler returns the leaderboard.
// @Summary Leaderboard
// @Description Players ordered by score descending. limit=0 returns every player.
// @Tags game
// @Produce json
// @Param limit query int false "Maximum number of entries" default(10)
// @Success 200 {array} models.LeaderboardEntry "Ranked players"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /leaderboard [get]
func NewLeaderboardHandler(svc LeaderboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultLeaderboardLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "Invalid limit")
				return
			}
			limit = n
		}

		entries, err := svc.Top(r.Context(), limit)
		if err != nil {
			logger.Log.Errorw("failed to get leaderboard", "limit", limit, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if entries == nil {
			entries = []models.LeaderboardEntry{}
		}

		writeJSON(w, http.StatusOK, entries)
	}
}
