package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"tourguide/config"
	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/repository"
	"tourguide/internal/domain/service"
	"tourguide/internal/geo"
	"tourguide/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const nearbyAttractionCount = 5

type tourService struct {
	registry  repository.UserRegistry
	history   repository.LocationHistory
	ledger    repository.RewardLedger
	positions service.PositionProvider
	catalog   service.AttractionCatalog
	lookup    service.RewardPointsLookup
	pricer    service.TripPricer
	rewards   usecase.RewardsUsecase
	logger    *slog.Logger
	apiKey    string
}

// TourServiceParams holds dependencies for TourService, injected by Fx.
type TourServiceParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Registry  repository.UserRegistry
	History   repository.LocationHistory
	Ledger    repository.RewardLedger
	Positions service.PositionProvider
	Catalog   service.AttractionCatalog
	Lookup    service.RewardPointsLookup
	Pricer    service.TripPricer
	Rewards   usecase.RewardsUsecase
}

// NewTourService creates the core tracking and display service.
func NewTourService(params TourServiceParams) usecase.TourUsecase {
	var apiKey string
	if params.Config.TripPricer != nil {
		apiKey = params.Config.TripPricer.APIKey
	}

	return &tourService{
		registry:  params.Registry,
		history:   params.History,
		ledger:    params.Ledger,
		positions: params.Positions,
		catalog:   params.Catalog,
		lookup:    params.Lookup,
		pricer:    params.Pricer,
		rewards:   params.Rewards,
		logger:    params.Logger,
		apiKey:    apiKey,
	}
}

// AddUser registers a user. A duplicate name is a no-op in the registry.
func (s *tourService) AddUser(ctx context.Context, input *usecase.AddUserInput) (*entity.User, error) {
	preferences := entity.DefaultUserPreferences()
	if input.Preferences != nil {
		preferences = *input.Preferences
	}

	user := &entity.User{
		ID:          uuid.New(),
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Preferences: preferences,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.registry.AddUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "add user")
	}

	return user, nil
}

func (s *tourService) GetUser(ctx context.Context, name string) (*entity.User, error) {
	user, err := s.registry.GetUserByName(ctx, name)
	if err != nil {
		return nil, errors.Wrapf(err, "get user %q", name)
	}

	return user, nil
}

func (s *tourService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.registry.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	return users, nil
}

// TrackUser runs one tracking cycle: request the current position, append it
// to the history, then run the reward pass synchronously before returning.
// A position-provider failure abandons the cycle with nothing appended; the
// next scheduled tick retries naturally. A failed reward pass is logged and
// skipped for this cycle; the ledger's idempotence makes resuming it later
// safe.
func (s *tourService) TrackUser(ctx context.Context, user *entity.User) (entity.VisitedLocation, error) {
	visited, err := s.positions.GetUserLocation(ctx, user.ID)
	if err != nil {
		return entity.VisitedLocation{}, errors.Wrapf(err, "get position for user %q", user.Name)
	}

	if err := s.history.Append(ctx, visited); err != nil {
		return entity.VisitedLocation{}, errors.Wrap(err, "append visited location")
	}

	if err := s.rewards.CalculateRewards(ctx, user); err != nil {
		s.logger.Warn("reward pass failed, will retry on next cycle",
			slog.String("user", user.Name),
			slog.String("error", err.Error()),
		)
	}

	return visited, nil
}

// GetUserLocation returns the most recent visited location, tracking first
// when the history is empty.
func (s *tourService) GetUserLocation(ctx context.Context, user *entity.User) (entity.VisitedLocation, error) {
	if visited, ok := s.history.Last(ctx, user.ID); ok {
		return visited, nil
	}

	return s.TrackUser(ctx, user)
}

func (s *tourService) GetUserRewards(ctx context.Context, user *entity.User) ([]entity.UserReward, error) {
	rewards, err := s.ledger.ListRewards(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "list rewards")
	}

	return rewards, nil
}

func (s *tourService) GetCumulativeRewardPoints(ctx context.Context, user *entity.User) (int, error) {
	total, err := s.ledger.TotalPoints(ctx, user.ID)
	if err != nil {
		return 0, errors.Wrap(err, "total reward points")
	}

	return total, nil
}

// rankedAttraction pairs an attraction with its distance from the user, so
// the ranking is computed exactly once per attraction.
type rankedAttraction struct {
	attraction entity.Attraction
	miles      float64
}

// NearbyAttractions returns the five closest attractions to the user's
// current location, closest first. Ties keep catalog iteration order
// (stable sort). The eligibility range is never consulted; every attraction
// in the catalog is a candidate regardless of distance.
func (s *tourService) NearbyAttractions(ctx context.Context, user *entity.User) ([]usecase.NearbyAttraction, error) {
	visited, err := s.GetUserLocation(ctx, user)
	if err != nil {
		return nil, err
	}

	attractions, err := s.catalog.ListAttractions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list attractions")
	}

	ranked := make([]rankedAttraction, 0, len(attractions))
	for _, attraction := range attractions {
		ranked = append(ranked, rankedAttraction{
			attraction: attraction,
			miles:      geo.DistanceMiles(visited.Location, attraction.Location),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].miles < ranked[j].miles
	})
	if len(ranked) > nearbyAttractionCount {
		ranked = ranked[:nearbyAttractionCount]
	}

	nearby := make([]usecase.NearbyAttraction, 0, len(ranked))
	for _, entry := range ranked {
		points, err := s.lookup.GetRewardPoints(ctx, entry.attraction.ID, user.ID)
		if err != nil {
			// Display is best-effort: keep the entry, drop the annotation.
			s.logger.Warn("reward points lookup failed for display",
				slog.String("attraction", entry.attraction.Name),
				slog.String("error", err.Error()),
			)
			points = 0
		}
		nearby = append(nearby, usecase.NearbyAttraction{
			AttractionName:     entry.attraction.Name,
			AttractionLocation: entry.attraction.Location,
			UserLocation:       visited.Location,
			DistanceMiles:      entry.miles,
			RewardPoints:       points,
		})
	}

	return nearby, nil
}

// GetTripDeals quotes deals using the user's preferences and accurate
// cumulative reward points.
func (s *tourService) GetTripDeals(ctx context.Context, user *entity.User) ([]entity.Provider, error) {
	points, err := s.ledger.TotalPoints(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "total reward points")
	}

	providers, err := s.pricer.GetPrice(ctx, s.apiKey, user.ID,
		user.Preferences.NumberOfAdults,
		user.Preferences.NumberOfChildren,
		user.Preferences.TripDuration,
		points,
	)
	if err != nil {
		return nil, errors.Wrap(err, "get trip prices")
	}

	return providers, nil
}
