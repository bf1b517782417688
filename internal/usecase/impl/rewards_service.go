// Package impl contains the concrete application services behind the
// usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tourguide/config"
	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/repository"
	"tourguide/internal/domain/service"
	"tourguide/internal/geo"
	"tourguide/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type rewardsService struct {
	catalog   service.AttractionCatalog
	lookup    service.RewardPointsLookup
	history   repository.LocationHistory
	ledger    repository.RewardLedger
	publisher service.EventPublisher
	logger    *slog.Logger

	// Guards the two thresholds; they are process-wide mutable config.
	mu                       sync.RWMutex
	attractionProximityMiles float64
	rewardEligibilityMiles   float64
}

// RewardsServiceParams holds dependencies for RewardsService, injected by Fx.
type RewardsServiceParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Catalog   service.AttractionCatalog
	Lookup    service.RewardPointsLookup
	History   repository.LocationHistory
	Ledger    repository.RewardLedger
	Publisher service.EventPublisher
}

// NewRewardsService creates the rewards engine with thresholds seeded from
// configuration.
func NewRewardsService(params RewardsServiceParams) usecase.RewardsUsecase {
	return &rewardsService{
		catalog:                  params.Catalog,
		lookup:                   params.Lookup,
		history:                  params.History,
		ledger:                   params.Ledger,
		publisher:                params.Publisher,
		logger:                   params.Logger,
		attractionProximityMiles: params.Config.Proximity.AttractionProximityRangeMiles,
		rewardEligibilityMiles:   params.Config.Proximity.RewardEligibilityRangeMiles,
	}
}

// SetAttractionProximityRange overrides the display threshold, in miles.
func (s *rewardsService) SetAttractionProximityRange(miles float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attractionProximityMiles = miles
}

// SetRewardEligibilityRange overrides the reward threshold, in miles.
func (s *rewardsService) SetRewardEligibilityRange(miles float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rewardEligibilityMiles = miles
}

// IsWithinAttractionProximity reports whether the attraction is near the
// location under the display threshold. The reward threshold plays no part.
func (s *rewardsService) IsWithinAttractionProximity(attraction entity.Attraction, location entity.Location) bool {
	s.mu.RLock()
	threshold := s.attractionProximityMiles
	s.mu.RUnlock()

	return geo.DistanceMiles(attraction.Location, location) <= threshold
}

func (s *rewardsService) rewardEligibilityRange() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rewardEligibilityMiles
}

// CalculateRewards runs one reward pass for the user. It walks an immutable
// snapshot of the visited history against a catalog snapshot, in
// visited-location order then catalog order. A failed point lookup skips
// that pair only; the pass continues and the pair is naturally retried on
// the next cycle. The ledger's atomic check-and-insert makes the pass safe
// under concurrent invocation for the same user.
func (s *rewardsService) CalculateRewards(ctx context.Context, user *entity.User) error {
	visits, err := s.history.List(ctx, user.ID)
	if err != nil {
		return errors.Wrap(err, "list visited locations")
	}
	attractions, err := s.catalog.ListAttractions(ctx)
	if err != nil {
		return errors.Wrap(err, "list attractions")
	}

	threshold := s.rewardEligibilityRange()

	for _, visited := range visits {
		for _, attraction := range attractions {
			if s.ledger.HasReward(ctx, user.ID, attraction.ID) {
				continue
			}
			if geo.DistanceMiles(visited.Location, attraction.Location) > threshold {
				continue
			}

			points, err := s.lookup.GetRewardPoints(ctx, attraction.ID, user.ID)
			if err != nil {
				// Skip this candidate pair only; no partial reward is stored.
				s.logger.Warn("reward points lookup failed, skipping pair",
					slog.String("user", user.Name),
					slog.String("attraction", attraction.Name),
					slog.String("error", err.Error()),
				)

				continue
			}

			reward := entity.UserReward{
				VisitedLocation: visited,
				Attraction:      attraction,
				RewardPoints:    points,
			}
			granted, err := s.ledger.AddReward(ctx, user.ID, reward)
			if err != nil {
				return errors.Wrap(err, "add reward")
			}
			if granted {
				s.publishRewardEvent(ctx, user, reward)
			}
		}
	}

	return nil
}

// publishRewardEvent emits a reward-granted event. Publishing is best-effort:
// a failure is logged and never rolls back the grant.
func (s *rewardsService) publishRewardEvent(ctx context.Context, user *entity.User, reward entity.UserReward) {
	event := &service.RewardEvent{
		UserID:       user.ID.String(),
		AttractionID: reward.Attraction.ID.String(),
		Attraction:   reward.Attraction.Name,
		RewardPoints: reward.RewardPoints,
		Latitude:     reward.VisitedLocation.Location.Latitude,
		Longitude:    reward.VisitedLocation.Location.Longitude,
		VisitedAt:    reward.VisitedLocation.TimeVisited.UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishRewardEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish reward event",
			slog.String("user", user.Name),
			slog.String("attraction", reward.Attraction.Name),
			slog.String("error", err.Error()),
		)
	}
}
