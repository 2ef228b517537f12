// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is the aggregate root of a purchase. Its Status field is only ever
// changed by the tracking engine; nothing else may mutate it.
type Order struct {
	ID              uuid.UUID   `json:"id"`               // The Global Unique Identifier (GUID) for the order.
	CustomerName    string      `json:"customer_name"`    // Name of the customer who placed the order.
	CustomerEmail   string      `json:"customer_email"`   // Contact email, also the messenger recipient key.
	CustomerPhone   string      `json:"customer_phone"`   // Optional contact phone number.
	ShippingAddress string      `json:"shipping_address"` // Free-form shipping address.
	Items           []OrderItem `json:"items"`            // Line items priced at order time.
	TotalAmount     float64     `json:"total_amount"`     // Sum of all line-item subtotals.
	Status          OrderStatus `json:"status"`           // Current lifecycle status.
	CreatedAt       time.Time   `json:"created_at"`       // Timestamp of when the order was placed.
	UpdatedAt       time.Time   `json:"updated_at"`       // Timestamp of the last modification.
}

// OrderItem is a single line of an order. UnitPrice is the product price at
// the moment of checkout and never changes afterwards.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"` // Product name snapshot at order time.
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

// Subtotal returns quantity times unit price for this line.
func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// ComputeTotal recalculates the order total from its line items.
func (o *Order) ComputeTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Subtotal()
	}

	return total
}
