// Package usecase defines the application-layer interfaces the delivery and
// worker layers are written against.
package usecase

import (
	"context"

	"tourguide/internal/domain/entity"
)

// RewardsUsecase is the rewards-computation engine plus the proximity policy
// it decides with. The two distance thresholds are independent, mutable,
// process-wide configuration: changing one affects subsequent calls only,
// with no retroactive re-grant or revocation.
type RewardsUsecase interface {
	// CalculateRewards runs one reward pass over the user's full visited
	// history against the current catalog snapshot. Safe to call repeatedly
	// and concurrently for the same user; the ledger guarantees at most one
	// grant per attraction.
	CalculateRewards(ctx context.Context, user *entity.User) error

	// IsWithinAttractionProximity reports whether the attraction counts as
	// "near" the location for display purposes. Never affects rewards.
	IsWithinAttractionProximity(attraction entity.Attraction, location entity.Location) bool

	// SetAttractionProximityRange overrides the display threshold, in miles.
	SetAttractionProximityRange(miles float64)

	// SetRewardEligibilityRange overrides the reward threshold, in miles.
	SetRewardEligibilityRange(miles float64)
}
