package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/clicker/internal/logger"
	"github.com/sbilibin2017/clicker/internal/models"
	"github.com/sbilibin2017/clicker/internal/scoring"
	"github.com/sbilibin2017/clicker/internal/services"
)

//go:generate mockgen -source=game.go -destination=game_mock.go -package=handlers

// StateGetter returns a player's save with owned upgrades.
type StateGetter interface {
	State(ctx context.Context, userID int64) (*models.GameState, error)
}

// Clicker records a click.
type Clicker interface {
	Click(ctx context.Context, userID int64) (*models.GameSaveDB, error)
}

// UpgradeLister returns the upgrade catalog.
type UpgradeLister interface {
	Upgrades(ctx context.Context) ([]models.UpgradeDB, error)
}

// Purchaser buys upgrades.
type Purchaser interface {
	Purchase(ctx context.Context, userID, upgradeID int64) (*models.GameState, error)
}

// StateResponse represents a player's game state
// swagger:model StateResponse
type StateResponse struct {
	// Player name
	// default: johndoe
	Username string `json:"username"`

	// Current score
	// default: 42
	Score int64 `json:"score"`

	// Total clicks
	// default: 40
	Clicks int64 `json:"clicks"`

	// Points the next click is worth
	// default: 2
	ClickValue int64 `json:"click_value"`

	// Owned upgrades with quantities
	Upgrades []models.OwnedUpgrade `json:"upgrades"`
}

// ClickResponse represents the save after a click
// swagger:model ClickResponse
type ClickResponse struct {
	// Score after the click
	// default: 43
	Score int64 `json:"score"`

	// Total clicks after the click
	// default: 41
	Clicks int64 `json:"clicks"`
}

func newStateResponse(username string, state *models.GameState) StateResponse {
	owned := state.Owned
	if owned == nil {
		owned = []models.OwnedUpgrade{}
	}
	return StateResponse{
		Username:   username,
		Score:      state.Save.Score,
		Clicks:     state.Save.Clicks,
		ClickValue: scoring.ClickPoints(state.Owned),
		Upgrades:   owned,
	}
}

// NewMeHandler returns the caller's game state.
// @Summary Get own game state
// @Description Returns score, clicks, click value and owned upgrades of the authenticated player
// @Tags game
// @Produce json
// @Success 200 {object} handlers.StateResponse "Game state"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /me [get]
// @Security BearerAuth
func NewMeHandler(svc StateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		state, err := svc.State(r.Context(), claims.UserID)
		if err != nil {
			writeGameError(w, err, claims.UserID)
			return
		}

		writeJSON(w, http.StatusOK, newStateResponse(claims.Username, state))
	}
}

// NewClickHandler records a click for the caller.
// @Summary Click
// @Description Adds one click and 1 + sum(increment x quantity) points to the authenticated player
// @Tags game
// @Produce json
// @Success 200 {object} handlers.ClickResponse "Save after the click"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /click [post]
// @Security BearerAuth
func NewClickHandler(svc Clicker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		save, err := svc.Click(r.Context(), claims.UserID)
		if err != nil {
			writeGameError(w, err, claims.UserID)
			return
		}

		writeJSON(w, http.StatusOK, ClickResponse{Score: save.Score, Clicks: save.Clicks})
	}
}

// NewUpgradesHandler lists the upgrade catalog.
// @Summary List upgrades
// @Description Returns every upgrade in catalog order
// @Tags game
// @Produce json
// @Success 200 {array} models.UpgradeDB "Upgrade catalog"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /upgrades [get]
// @Security BearerAuth
func NewUpgradesHandler(svc UpgradeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		upgrades, err := svc.Upgrades(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list upgrades", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if upgrades == nil {
			upgrades = []models.UpgradeDB{}
		}

		writeJSON(w, http.StatusOK, upgrades)
	}
}

// NewPurchaseHandler buys one unit of an upgrade for the caller.
// @Summary Purchase upgrade
// @Description Deducts the upgrade cost from the score and grants one unit. Fails without changes when the score is too low.
// @Tags game
// @Produce json
// @Param id path int true "Upgrade id"
// @Success 200 {object} handlers.StateResponse "Game state after the purchase"
// @Failure 400 {object} handlers.ErrorResponse "Invalid upgrade id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Upgrade not found"
// @Failure 422 {object} handlers.ErrorResponse "Not enough points"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /upgrades/{id}/purchase [post]
// @Security BearerAuth
func NewPurchaseHandler(svc Purchaser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		upgradeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || upgradeID <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid upgrade id")
			return
		}

		state, err := svc.Purchase(r.Context(), claims.UserID, upgradeID)
		if err != nil {
			writeGameError(w, err, claims.UserID)
			return
		}

		writeJSON(w, http.StatusOK, newStateResponse(claims.Username, state))
	}
}

func writeGameError(w http.ResponseWriter, err error, userID int64) {
	switch {
	case errors.Is(err, services.ErrInsufficientScore):
		writeError(w, http.StatusUnprocessableEntity, "Not enough points")
	case errors.Is(err, services.ErrUpgradeNotFound):
		writeError(w, http.StatusNotFound, "Upgrade not found")
	case errors.Is(err, services.ErrUserDoesNotExist):
		writeError(w, http.StatusNotFound, "User not found")
	default:
		logger.Log.Errorw("internal server error", "userID", userID, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
