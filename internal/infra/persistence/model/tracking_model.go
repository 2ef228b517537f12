package model

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEventModel is the GORM-specific struct for the 'order_tracking_events' table.
// Rows are append-only: the repository exposes no update or delete on them.
type TrackingEventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index:idx_tracking_order_occurred,priority:1"`
	Status     string    `gorm:"type:varchar(32);not null"`
	OccurredAt time.Time `gorm:"not null;index:idx_tracking_order_occurred,priority:2"`
	Location   string    `gorm:"type:varchar(255)"`
	Carrier    string    `gorm:"type:varchar(255)"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (TrackingEventModel) TableName() string {
	return "order_tracking_events"
}
