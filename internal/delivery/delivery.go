// Package delivery defines the contract every transport frontend fulfills.
package delivery

import "context"

// Delivery is a serving surface of the application (API server, worker).
type Delivery interface {
	// Serve blocks until the surface stops or fails to start.
	Serve(ctx context.Context) error
}
