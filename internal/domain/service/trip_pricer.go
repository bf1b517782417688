package service

import (
	"context"

	"tourguide/internal/domain/entity"

	"github.com/google/uuid"
)

// TripPricer quotes trip deals for a user. The core's only obligation toward
// it is passing the user's preferences and accurate cumulative reward points.
type TripPricer interface {
	GetPrice(ctx context.Context, apiKey string, userID uuid.UUID, adults, children, nights, rewardPoints int) ([]entity.Provider, error)
}
