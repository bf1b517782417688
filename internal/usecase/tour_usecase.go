package usecase

import (
	"context"

	"tourguide/internal/domain/entity"
)

// AddUserInput represents the input for registering a new user
type AddUserInput struct {
	Name        string                   `json:"name"`
	Phone       string                   `json:"phone"`
	Email       string                   `json:"email"`
	Preferences *entity.UserPreferences `json:"preferences,omitempty"`
}

// NearbyAttraction is one ranked entry of the nearest-five display list:
// the attraction paired with its distance from the user, plus the reward
// points the attraction is worth to this user.
type NearbyAttraction struct {
	AttractionName     string          `json:"attractionName"`
	AttractionLocation entity.Location `json:"attractionLocation"`
	UserLocation       entity.Location `json:"userLocation"`
	DistanceMiles      float64         `json:"distanceMiles"`
	RewardPoints       int             `json:"rewardPoints"`
}

// TourUsecase is the core surface exposed to the request-handling layer and
// the tracking scheduler.
type TourUsecase interface {
	// AddUser registers a user; duplicate names are a no-op.
	AddUser(ctx context.Context, input *AddUserInput) (*entity.User, error)

	// GetUser looks a user up by display name.
	GetUser(ctx context.Context, name string) (*entity.User, error)

	// GetAllUsers lists all registered users in registration order.
	GetAllUsers(ctx context.Context) ([]*entity.User, error)

	// TrackUser runs one tracking cycle for the user: fetch the current
	// position, append it to the history, and run the reward pass before
	// returning. Invoked by the scheduler and available on demand.
	TrackUser(ctx context.Context, user *entity.User) (entity.VisitedLocation, error)

	// GetUserLocation returns the user's current (most recent) visited
	// location, tracking first if the history is empty.
	GetUserLocation(ctx context.Context, user *entity.User) (entity.VisitedLocation, error)

	// GetUserRewards returns the user's rewards in grant order.
	GetUserRewards(ctx context.Context, user *entity.User) ([]entity.UserReward, error)

	// GetCumulativeRewardPoints sums the user's reward points.
	GetCumulativeRewardPoints(ctx context.Context, user *entity.User) (int, error)

	// NearbyAttractions returns the five closest attractions to the user's
	// current location, closest first, regardless of proximity range.
	NearbyAttractions(ctx context.Context, user *entity.User) ([]NearbyAttraction, error)

	// GetTripDeals quotes trip deals from the pricing collaborator using the
	// user's preferences and cumulative reward points.
	GetTripDeals(ctx context.Context, user *entity.User) ([]entity.Provider, error)
}

// TrackingLifecycle controls the background tracking scheduler.
type TrackingLifecycle interface {
	// StartTracking begins the periodic tracking loop.
	StartTracking() error

	// StopTracking stops new task submissions immediately and waits for
	// in-flight tracking cycles up to the configured grace period.
	StopTracking(ctx context.Context) error

	// Running reports whether the scheduler loop is active.
	Running() bool
}
