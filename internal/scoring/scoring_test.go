package scoring

import (
	"testing"

	"github.com/sbilibin2017/clicker/internal/models"
	"github.com/stretchr/testify/assert"
)

func owned(increment, quantity int64) models.OwnedUpgrade {
	return models.OwnedUpgrade{
		UpgradeDB: models.UpgradeDB{Increment: increment},
		Quantity:  quantity,
	}
}

func TestClickPoints(t *testing.T) {
	tests := []struct {
		name  string
		owned []models.OwnedUpgrade
		want  int64
	}{
		{name: "no upgrades", owned: nil, want: 1},
		{name: "single upgrade", owned: []models.OwnedUpgrade{owned(1, 1)}, want: 2},
		{name: "quantity multiplies bonus", owned: []models.OwnedUpgrade{owned(2, 3)}, want: 7},
		{name: "several upgrades", owned: []models.OwnedUpgrade{owned(1, 2), owned(2, 1), owned(5, 1)}, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClickPoints(tt.owned))
		})
	}
}

func TestApplyClick(t *testing.T) {
	save := models.GameSaveDB{Score: 10, Clicks: 4}

	points := ApplyClick(&save, []models.OwnedUpgrade{owned(5, 1)})

	assert.Equal(t, int64(6), points)
	assert.Equal(t, int64(16), save.Score)
	assert.Equal(t, int64(5), save.Clicks)
}

func TestApplyPurchase(t *testing.T) {
	upgrade := models.UpgradeDB{Name: "Double Points", Cost: 50}

	tests := []struct {
		name      string
		score     int64
		wantScore int64
		wantErr   error
	}{
		{name: "exact score", score: 50, wantScore: 0},
		{name: "more than cost", score: 75, wantScore: 25},
		{name: "insufficient", score: 49, wantScore: 49, wantErr: ErrInsufficientScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			save := models.GameSaveDB{Score: tt.score, Clicks: 3}

			err := ApplyPurchase(&save, upgrade)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantScore, save.Score)
			assert.Equal(t, int64(3), save.Clicks)
		})
	}
}
