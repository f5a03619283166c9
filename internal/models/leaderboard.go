package models

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	Username string `json:"username" db:"username"`
	Score    int64  `json:"score" db:"score"`
	Clicks   int64  `json:"clicks" db:"clicks"`
}

// UserScore is the projection used by the score editor
type UserScore struct {
	UserID   int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Score    int64  `json:"score" db:"score"`
}
