package service

import (
	"context"

	"github.com/google/uuid"
)

// RewardPointsLookup resolves the point value of a (attraction, user) pair.
// Queried once per newly-granted reward and once per nearby-attraction
// display entry; a failed lookup skips the affected pair only.
type RewardPointsLookup interface {
	GetRewardPoints(ctx context.Context, attractionID, userID uuid.UUID) (int, error)
}
