package models

import "time"

// GameSaveDB represents the per-user score/click counters
type GameSaveDB struct {
	SaveID      int64     `json:"id" db:"id"`                     // Primary key
	UserID      int64     `json:"user_id" db:"user_id"`           // Owner of the save
	Score       int64     `json:"score" db:"score"`               // Cumulative score
	Clicks      int64     `json:"clicks" db:"clicks"`             // Cumulative clicks
	LastUpdated time.Time `json:"last_updated" db:"last_updated"` // Timestamp of the last write
}

// GameState is a save together with the upgrades its owner holds.
type GameState struct {
	Save  GameSaveDB     `json:"save"`
	Owned []OwnedUpgrade `json:"owned"`
}
