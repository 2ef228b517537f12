package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	all := []OrderStatus{
		StatusPlaced, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled,
	}

	legal := map[OrderStatus][]OrderStatus{
		StatusPlaced:     {StatusConfirmed, StatusCancelled},
		StatusConfirmed:  {StatusProcessing, StatusCancelled},
		StatusProcessing: {StatusShipped, StatusCancelled},
		StatusShipped:    {StatusDelivered},
		StatusDelivered:  {},
		StatusCancelled:  {},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, s := range legal[from] {
				if s == to {
					want = true
				}
			}

			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())

	for _, s := range []OrderStatus{StatusPlaced, StatusConfirmed, StatusProcessing, StatusShipped} {
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}
}

func TestOrderStatus_TerminalHasNoSuccessors(t *testing.T) {
	assert.Empty(t, StatusDelivered.Successors())
	assert.Empty(t, StatusCancelled.Successors())
}

func TestOrderStatus_Cancellable(t *testing.T) {
	assert.True(t, StatusPlaced.Cancellable())
	assert.True(t, StatusConfirmed.Cancellable())
	assert.True(t, StatusProcessing.Cancellable())

	assert.False(t, StatusShipped.Cancellable())
	assert.False(t, StatusDelivered.Cancellable())
	assert.False(t, StatusCancelled.Cancellable())
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPlaced, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, s.IsValid())
	}

	assert.False(t, OrderStatus("RETURNED").IsValid())
	assert.False(t, OrderStatus("").IsValid())
	assert.False(t, OrderStatus("placed").IsValid(), "status values are case sensitive")
}

func TestOrder_ComputeTotal(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Quantity: 2, UnitPrice: 350},
			{Quantity: 1, UnitPrice: 500},
		},
	}

	assert.InDelta(t, 1200.0, order.ComputeTotal(), 0.001)
	assert.InDelta(t, 700.0, order.Items[0].Subtotal(), 0.001)
}
