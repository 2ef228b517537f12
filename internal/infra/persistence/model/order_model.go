package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Status is only ever written by the tracking engine through a conditional
// update; nothing else touches the column.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerName    string    `gorm:"type:varchar(255);not null"`
	CustomerEmail   string    `gorm:"type:varchar(255);not null;index"`
	CustomerPhone   string    `gorm:"type:varchar(64)"`
	ShippingAddress string    `gorm:"type:text;not null"`
	TotalAmount     float64   `gorm:"type:decimal(12,2);not null"`
	Status          string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice float64   `gorm:"type:decimal(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
