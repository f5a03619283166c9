package models

import "time"

// UpgradeDB represents a catalog upgrade row
type UpgradeDB struct {
	UpgradeID   int64  `json:"id" db:"id"`                   // Primary key, also catalog order
	Name        string `json:"name" db:"name"`               // Display name
	Cost        int64  `json:"cost" db:"cost"`               // Price in score points
	Increment   int64  `json:"increment" db:"increment"`     // Per-click bonus per owned unit
	Description string `json:"description" db:"description"` // Free-form text
}

// OwnedUpgrade is an upgrade joined with the quantity a user holds
type OwnedUpgrade struct {
	UpgradeDB
	Quantity    int64     `json:"quantity" db:"quantity"`
	PurchasedAt time.Time `json:"purchased_at" db:"purchased_at"`
}
