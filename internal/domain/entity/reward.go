// Package entity contains the core business objects of the project.
package entity

// UserReward associates a point value with the visit that earned it.
// At most one UserReward exists per (user, attraction) pair; the first
// qualifying visit wins and later qualifying visits are no-ops.
type UserReward struct {
	VisitedLocation VisitedLocation `json:"visitedLocation"` // The visit that qualified for the reward.
	Attraction      Attraction      `json:"attraction"`      // The attraction the reward was granted for.
	RewardPoints    int             `json:"rewardPoints"`    // Point value fetched from the reward-points lookup.
}
