// Package delivery defines the transport-agnostic server contract.
package delivery

import "context"

// Delivery is a serving surface of the application. Each implementation blocks
// in Serve until the server stops; shutdown is driven by fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
