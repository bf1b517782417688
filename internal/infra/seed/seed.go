// Package seed pre-populates the registry with internal users for load
// exercises and local development.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"tourguide/config"
	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/repository"
	"tourguide/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Latitude is clamped to the web-mercator range so seeded positions match
// what the position provider emits.
const (
	maxLatitude  = 85.05112878
	maxLongitude = 180.0
)

// SeederParams holds dependencies for the Seeder, injected by Fx.
type SeederParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Registry repository.UserRegistry
	History  repository.LocationHistory
}

// Seeder registers internal users with randomized location histories.
type Seeder struct {
	seed     *config.SeedConfig
	logger   *slog.Logger
	registry repository.UserRegistry
	history  repository.LocationHistory
}

// New is the constructor for Seeder. A config without a seed section
// produces a disabled seeder.
func New(params SeederParams) *Seeder {
	return &Seeder{
		seed:     params.Config.Seed,
		logger:   params.Logger,
		registry: params.Registry,
		history:  params.History,
	}
}

// Run registers the configured number of internal users, each with a short
// randomized location history spread over the past thirty days. It is a
// no-op when seeding is disabled.
func (s *Seeder) Run(ctx context.Context) error {
	if s.seed == nil || !s.seed.Enabled {
		return nil
	}

	start := time.Now()
	for i := range s.seed.InternalUserCount {
		name := fmt.Sprintf("internalUser%d", i)
		user := &entity.User{
			ID:          uuid.New(),
			Name:        name,
			Phone:       "000",
			Email:       name + "@tourGuide.com",
			Preferences: entity.DefaultUserPreferences(),
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.registry.AddUser(ctx, user); err != nil {
			return errors.Wrapf(err, "seed user %q", name)
		}

		for range s.seed.LocationHistoryLength {
			visited := entity.VisitedLocation{
				UserID: user.ID,
				Location: entity.Location{
					Latitude:  randomCoordinate(maxLatitude),
					Longitude: randomCoordinate(maxLongitude),
				},
				TimeVisited: randomPastTime(),
			}
			if err := s.history.Append(ctx, visited); err != nil {
				return errors.Wrapf(err, "seed history for user %q", name)
			}
		}
	}

	s.logger.Info("Seeded internal users",
		slog.Int("count", s.seed.InternalUserCount),
		slog.Int("historyLength", s.seed.LocationHistoryLength),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// randomCoordinate picks a value uniformly in [-limit, limit).
func randomCoordinate(limit float64) float64 {
	return -limit + rand.Float64()*2*limit
}

// randomPastTime picks an instant uniformly within the past thirty days.
func randomPastTime() time.Time {
	daysBack := time.Duration(rand.IntN(30)) * 24 * time.Hour
	jitter := time.Duration(rand.Int64N(int64(24 * time.Hour)))

	return time.Now().UTC().Add(-daysBack - jitter)
}
