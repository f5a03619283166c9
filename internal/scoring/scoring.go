// Package scoring holds the click and purchase rules shared by every client.
package scoring

import (
	"errors"

	"github.com/sbilibin2017/clicker/internal/models"
)

// BaseClickPoints is what a click is worth with no upgrades owned.
const BaseClickPoints int64 = 1

// ErrInsufficientScore is returned when a purchase costs more than the score.
var ErrInsufficientScore = errors.New("insufficient score")

// ClickPoints returns the points a single click earns: the base point plus
// the increment of every owned upgrade multiplied by its quantity.
func ClickPoints(owned []models.OwnedUpgrade) int64 {
	points := BaseClickPoints
	for _, u := range owned {
		points += u.Increment * u.Quantity
	}
	return points
}

// CanAfford reports whether score covers the upgrade cost.
func CanAfford(score int64, upgrade models.UpgradeDB) bool {
	return score >= upgrade.Cost
}

// ApplyClick records one click on save and returns the points earned.
func ApplyClick(save *models.GameSaveDB, owned []models.OwnedUpgrade) int64 {
	points := ClickPoints(owned)
	save.Clicks++
	save.Score += points
	return points
}

// ApplyPurchase deducts the upgrade cost from save. The save is left
// untouched when the score does not cover the cost.
func ApplyPurchase(save *models.GameSaveDB, upgrade models.UpgradeDB) error {
	if !CanAfford(save.Score, upgrade) {
		return ErrInsufficientScore
	}
	save.Score -= upgrade.Cost
	return nil
}
