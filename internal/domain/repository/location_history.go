package repository

import (
	"context"

	"tourguide/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationHistory stores each user's visited locations in insertion order.
// The history is append-only; entries are never updated or removed during a
// run. Reads must be safe to call concurrently with Append.
type LocationHistory interface {
	// Append adds a visited location to the user's history.
	Append(ctx context.Context, visited entity.VisitedLocation) error

	// Last returns the most recently appended visited location for the user.
	// The second return is false when the user has no history yet.
	Last(ctx context.Context, userID uuid.UUID) (entity.VisitedLocation, bool)

	// List returns a snapshot of the user's history in visit order. The
	// snapshot is a copy: appends that happen after List returns are not
	// observed through it.
	List(ctx context.Context, userID uuid.UUID) ([]entity.VisitedLocation, error)
}
