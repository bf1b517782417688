// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a geographic position in decimal degrees.
// Latitude is expected in [-90, 90] and longitude in [-180, 180]; values
// outside those ranges are accepted as-is and fed to the distance formula
// unclamped.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// VisitedLocation records where a user was at a given moment.
// Immutable once created; the most recently appended VisitedLocation is the
// user's current location.
type VisitedLocation struct {
	UserID      uuid.UUID `json:"userId"`      // The user this fix belongs to.
	Location    Location  `json:"location"`    // The position reported by the position provider.
	TimeVisited time.Time `json:"timeVisited"` // When the position was captured.
}
