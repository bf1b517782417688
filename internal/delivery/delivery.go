// Package delivery defines the contract every transport (HTTP, worker)
// implements so the top-level orchestration can start them uniformly.
package delivery

import "context"

// Delivery is a servable transport endpoint.
type Delivery interface {
	// Serve blocks, serving until the process shuts the transport down.
	Serve(ctx context.Context) error
}
