// Package service defines the interfaces for external collaborators the core
// consumes. Each is a black box with its own latency and failure
// characteristics; unavailability surfaces as an error on the call.
package service

import (
	"context"

	"tourguide/internal/domain/entity"

	"github.com/google/uuid"
)

// PositionProvider reports a user's current geographic position.
// A failed call abandons the affected tracking cycle; the next scheduled tick
// retries naturally.
type PositionProvider interface {
	// GetUserLocation returns the user's current position, stamped with the
	// capture time.
	GetUserLocation(ctx context.Context, userID uuid.UUID) (entity.VisitedLocation, error)
}
