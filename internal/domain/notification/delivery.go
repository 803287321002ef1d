package notification

import (
	"database/sql"
	"time"
)

// Delivery records one notification attempt.
// Corresponds to the 'notification_deliveries' table.
type Delivery struct {
	ID        int64
	ChatID    string
	CycleID   string // Poll cycle that produced the message, empty outside a cycle
	Message   string
	Status    DeliveryStatus
	Error     sql.NullString // Transport error text for FAILED deliveries
	CreatedAt time.Time
}
