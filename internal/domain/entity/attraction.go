// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// Attraction is a named point of interest with a fixed geographic position.
// Attractions are sourced from the external catalog collaborator and treated
// as an immutable snapshot for the duration of one ranking or reward pass.
type Attraction struct {
	ID       uuid.UUID `json:"attractionId"` // The Global Unique Identifier (GUID) for the attraction.
	Name     string    `json:"name"`         // The attraction's display name.
	City     string    `json:"city"`         // The city the attraction is located in.
	State    string    `json:"state"`        // The state or region the attraction is located in.
	Location Location  `json:"location"`     // The attraction's fixed position.
}
