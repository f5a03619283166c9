package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`     // Administrative privileges flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UserSummary is the admin listing projection of a user row
type UserSummary struct {
	UserID    int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	IsAdmin   bool      `json:"is_admin" db:"is_admin"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
