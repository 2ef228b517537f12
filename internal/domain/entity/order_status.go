// Package entity contains the core business objects of the project.
package entity

import "slices"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// StatusPlaced is the initial status of every new order.
	StatusPlaced OrderStatus = "PLACED"
	// StatusConfirmed indicates the order has been accepted for fulfillment.
	StatusConfirmed OrderStatus = "CONFIRMED"
	// StatusProcessing indicates the order is being prepared.
	StatusProcessing OrderStatus = "PROCESSING"
	// StatusShipped indicates the order has been handed to a carrier.
	StatusShipped OrderStatus = "SHIPPED"
	// StatusDelivered is a terminal status: the order reached the customer.
	StatusDelivered OrderStatus = "DELIVERED"
	// StatusCancelled is a terminal status: the order was cancelled before shipping.
	StatusCancelled OrderStatus = "CANCELLED"
)

// orderStatusSuccessors is the legal-successor table for order transitions.
// Any transition not listed here is rejected.
//
//nolint:gochecknoglobals
var orderStatusSuccessors = map[OrderStatus][]OrderStatus{
	StatusPlaced:     {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusSuccessors[s]

	return ok
}

// IsTerminal reports whether no further transition is legal from this status.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Successors returns the statuses this status may legally transition to.
func (s OrderStatus) Successors() []OrderStatus {
	return slices.Clone(orderStatusSuccessors[s])
}

// CanTransitionTo reports whether next is a legal successor of this status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderStatusSuccessors[s], next)
}

// Cancellable reports whether an order in this status may still be cancelled.
// Once shipped, cancellation must be handled as a return, never through
// the cancel flow.
func (s OrderStatus) Cancellable() bool {
	return !s.IsTerminal() && s != StatusShipped
}
