package repository

import (
	"context"

	"tourguide/internal/domain/entity"

	"github.com/google/uuid"
)

// RewardLedger is the per-user append-only collection of reward grants.
// The check-and-insert in AddReward is atomic per (user, attraction) key:
// concurrent reward passes for the same user must not both succeed in
// granting the same attraction.
type RewardLedger interface {
	// AddReward appends a reward grant for the user. If a reward for that
	// attraction already exists the call is a silent no-op and granted is
	// false; this is the idempotence guarantee the rewards engine relies on.
	AddReward(ctx context.Context, userID uuid.UUID, reward entity.UserReward) (granted bool, err error)

	// HasReward reports whether the user already holds a reward for the
	// attraction.
	HasReward(ctx context.Context, userID, attractionID uuid.UUID) bool

	// ListRewards returns a snapshot of the user's rewards in grant order.
	ListRewards(ctx context.Context, userID uuid.UUID) ([]entity.UserReward, error)

	// TotalPoints returns the sum of the user's reward points, as consumed by
	// the pricing collaborator.
	TotalPoints(ctx context.Context, userID uuid.UUID) (int, error)
}
