// Package delivery defines the contract every inbound adapter (HTTP
// server, background worker) implements so cmd wiring can start them
// uniformly.
package delivery

import "context"

// Delivery is a long-running inbound adapter.
type Delivery interface {
	// Serve blocks until the adapter stops or fails.
	Serve(ctx context.Context) error
}
