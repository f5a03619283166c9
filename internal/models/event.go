package models

// Game event operations
const (
	OperationRegister   = "register"
	OperationClick      = "click"
	OperationPurchase   = "purchase"
	OperationSetScore   = "set_score"
	OperationDeleteUser = "delete_user"
)

// GameEvent describes a state change published to the event stream
type GameEvent struct {
	EventID   string `json:"event_id"`             // Unique event identifier
	Timestamp int64  `json:"timestamp"`            // Unix seconds
	UserID    int64  `json:"user_id"`              // Subject user
	Operation string `json:"operation"`            // One of the Operation* constants
	Score     int64  `json:"score"`                // Score after the change
	Delta     int64  `json:"delta"`                // Points gained or spent
	UpgradeID int64  `json:"upgrade_id,omitempty"` // Purchased upgrade, if any
}
