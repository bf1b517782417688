// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique tracked
// traveler. It carries identity and preferences only; the visited-location
// history and reward grants live in their own per-user stores so that
// concurrent tracking cycles never share mutable state through the entity.
type User struct {
	ID          uuid.UUID       // The Global Unique Identifier (GUID) for the user.
	Name        string          // The unique display name, used as the lookup key.
	Phone       string          // The user's contact phone number.
	Email       string          // The user's contact email.
	Preferences UserPreferences // Trip preferences, consumed only by the pricing collaborator.
	CreatedAt   time.Time       // Timestamp of when this user account was created.
}

// UserPreferences holds the trip parameters the pricing collaborator quotes
// against. The tracking and rewards core never interprets these.
type UserPreferences struct {
	TripDuration     int `json:"tripDuration"`
	TicketQuantity   int `json:"ticketQuantity"`
	NumberOfAdults   int `json:"numberOfAdults"`
	NumberOfChildren int `json:"numberOfChildren"`
}

// DefaultUserPreferences mirrors the defaults a freshly registered user gets.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		TripDuration:     1,
		TicketQuantity:   1,
		NumberOfAdults:   1,
		NumberOfChildren: 0,
	}
}

// Provider is a trip quote produced by the pricing collaborator for a user's
// preferences and cumulative reward points.
type Provider struct {
	Name   string    `json:"name"`
	Price  float64   `json:"price"`
	TripID uuid.UUID `json:"tripId"`
}
