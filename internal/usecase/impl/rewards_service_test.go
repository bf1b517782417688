package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tourguide/config"
	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/repository"
	"tourguide/internal/domain/service"
	"tourguide/internal/errors"
	"tourguide/internal/infra/persistence/memory"
	mockService "tourguide/internal/mocks/service"
	"tourguide/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Proximity: &config.ProximityConfig{
			AttractionProximityRangeMiles: 200,
			RewardEligibilityRangeMiles:   10,
		},
	}
}

type rewardsFixture struct {
	service   usecase.RewardsUsecase
	history   repository.LocationHistory
	ledger    repository.RewardLedger
	catalog   *mockService.MockAttractionCatalog
	lookup    *mockService.MockRewardPointsLookup
	publisher *mockService.MockEventPublisher
}

func newRewardsFixture(t *testing.T) *rewardsFixture {
	catalog := mockService.NewMockAttractionCatalog(t)
	lookup := mockService.NewMockRewardPointsLookup(t)
	publisher := mockService.NewMockEventPublisher(t)
	history := memory.NewLocationHistory()
	ledger := memory.NewRewardLedger()

	svc := NewRewardsService(RewardsServiceParams{
		Config:    newTestConfig(),
		Logger:    newTestLogger(),
		Catalog:   catalog,
		Lookup:    lookup,
		History:   history,
		Ledger:    ledger,
		Publisher: publisher,
	})

	return &rewardsFixture{
		service:   svc,
		history:   history,
		ledger:    ledger,
		catalog:   catalog,
		lookup:    lookup,
		publisher: publisher,
	}
}

func testUser(name string) *entity.User {
	return &entity.User{
		ID:          uuid.New(),
		Name:        name,
		Phone:       "000",
		Email:       name + "@tourGuide.com",
		Preferences: entity.DefaultUserPreferences(),
		CreatedAt:   time.Now().UTC(),
	}
}

func visitAt(userID uuid.UUID, loc entity.Location) entity.VisitedLocation {
	return entity.VisitedLocation{
		UserID:      userID,
		Location:    loc,
		TimeVisited: time.Now().UTC(),
	}
}

var (
	anaheim = entity.Location{Latitude: 33.817595, Longitude: -117.922008}
	jackson = entity.Location{Latitude: 43.582767, Longitude: -110.821999}
	farAway = entity.Location{Latitude: -33.8, Longitude: 151.2}
)

func TestRewardsService_GrantsRewardForNearbyVisit(t *testing.T) {
	f := newRewardsFixture(t)
	ctx := context.Background()
	user := testUser("alice")
	attraction := entity.Attraction{ID: uuid.New(), Name: "Disneyland", City: "Anaheim", State: "CA", Location: anaheim}

	require.NoError(t, f.history.Append(ctx, visitAt(user.ID, anaheim)))

	f.catalog.EXPECT().ListAttractions(ctx).Return([]entity.Attraction{attraction}, nil)
	f.lookup.EXPECT().GetRewardPoints(ctx, attraction.ID, user.ID).Return(321, nil)
	f.publisher.EXPECT().
		PublishRewardEvent(ctx, mock.AnythingOfType("*service.RewardEvent")).
		Run(func(_ context.Context, event *service.RewardEvent) {
			assert.Equal(t, user.ID.String(), event.UserID)
			assert.Equal(t, attraction.ID.String(), event.AttractionID)
			assert.Equal(t, 321, event.RewardPoints)
		}).
		Return(nil).
		Once()

	require.NoError(t, f.service.CalculateRewards(ctx, user))

	rewards, err := f.ledger.ListRewards(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	assert.Equal(t, attraction.ID, rewards[0].Attraction.ID)
	assert.Equal(t, 321, rewards[0].RewardPoints)
}

func TestRewardsService_RepeatedPassesGrantOnce(t *testing.T) {
	f := newRewardsFixture(t)
	ctx := context.Background()
	user := testUser("bob")
	attraction := entity.Attraction{ID: uuid.New(), Name: "Disneyland", Location: anaheim}

	require.NoError(t, f.history.Append(ctx, visitAt(user.ID, anaheim)))

	f.catalog.EXPECT().ListAttractions(ctx).Return([]entity.Attraction{attraction}, nil)
	f.lookup.EXPECT().GetRewardPoints(ctx, attraction.ID, user.ID).Return(100, nil).Once()
	f.publisher.EXPECT().
		PublishRewardEvent(ctx, mock.AnythingOfType("*service.RewardEvent")).
		Return(nil).
		Once()

	for range 5 {
		require.NoError(t, f.service.CalculateRewards(ctx, user))
	}

	rewards, err := f.ledger.ListRewards(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}

func TestRewardsService_ConcurrentPassesGrantOnce(t *testing.T) {
	f := newRewardsFixture(t)
	ctx := context.Background()
	user := testUser("carol")
	attraction := entity.Attraction{ID: uuid.New(), Name: "Disneyland", Location: anaheim}

	require.NoError(t, f.history.Append(ctx, visitAt(user.ID, anaheim)))

	f.catalog.EXPECT().ListAttractions(ctx).Return([]entity.Attraction{attraction}, nil)
	// The race window between HasReward and AddReward means the lookup may
	// fire more than once; the ledger still admits a single grant.
	f.lookup.EXPECT().GetRewardPoints(ctx, attraction.ID, user.ID).Return(100, nil)
	f.publisher.EXPECT().
		PublishRewardEvent(ctx, mock.AnythingOfType("*service.RewardEvent")).
		Return(nil).
		Once()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.service.CalculateRewards(ctx, user))
		}()
	}
	wg.Wait()

	rewards, err := f.ledger.ListRewards(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, rewards, 1)

	total, err := f.ledger.TotalPoints(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, total)
}

func TestRewardsService_VisitOutsideEligibilityRange(t *testing.T) {
	f := newRewardsFixture(t)
	ctx := context.Background()
	user := testUser("dave")
	attraction := entity.Attraction{ID: uuid.New(), Name: "Jackson Hole", Location: jackson}

	// Anaheim is hundreds of miles from Jackson Hole; far beyond the
	// 10-mile default.
	require.NoError(t, f.history.Append(ctx, visitAt(user.ID, anaheim)))

	f.catalog.EXPECT().ListAttractions(ctx).Return([]entity.Attraction{attraction}, nil)

	require.NoError(t, f.service.CalculateRewards(ctx, user))

	rewards, err := f.ledger.ListRewards(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, rewards)
}

func TestRewardsService_WidenedRangeGrantsEverywhere(t *testing.T) {
	f := newRewardsFixture(t)
	ctx := context.Background()
	user := testUser("erin")
	attractions := []entity.Attraction{
		{ID: uuid.New(), Name: "Disneyland", Location: anaheim},
		{ID: uuid.New(), Name: "Jackson Hole", Location: jackson},
	}

	require.NoError(t, f.history.Append(ctx, visitAt(user.ID, farAway)))

	f.service.SetRewardEligibilityRange(30000)

	f.catalog.EXPECT().ListAttractions(ctx).Return(attractions, nil)
	f.lookup.EXPECT().GetRewardPoints(ctx, mock.AnythingOfType("uuid.UUID"), user.ID).Return(50, nil)
	f.publisher.EXPECT().
		PublishRewardEvent(ctx, mock.AnythingOfType("*service.RewardEvent")).
		Return(nil).
		Times(2)

	require.NoError(t, f.service.CalculateRewards(ctx, user))

	rewards, err := f.ledger.ListRewards(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, rewards, 2)
}

func TestRewardsService_NarrowedRangeAffectsLaterPassesOnly(t *testing.T) {
	f := newRewardsFixture(t)
	ctx := context.Background()
	user := testUser("frank")
	attraction := entity.Attraction{ID: uuid.New(), Name: "Disneyland", Location: anaheim}

	require.NoError(t, f.history.Append(ctx, visitAt(user.ID, anaheim)))

	f.catalog.EXPECT().ListAttractions(ctx).Return([]entity.Attraction{attraction}, nil)
	f.lookup.EXPECT().GetRewardPoints(ctx, attraction.ID, user.ID).Return(75, nil).Once()
	f.publisher.EXPECT().
		PublishRewardEvent(ctx, mock.AnythingOfType("*service.RewardEvent")).
		Return(nil).
		Once()

	require.NoError(t, f.service.CalculateRewards(ctx, user))

	// Narrowing after the grant never revokes it.
	f.service.SetRewardEligibilityRange(0.000001)
	require.NoError(t, f.service.CalculateRewards(ctx, user))

	rewards, err := f.ledger.ListRewards(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}

func TestRewardsService_LookupFailureSkipsPairOnly(t *testing.T) {
	f := newRewardsFixture(t)
	ctx := context.Background()
	user := testUser("grace")
	broken := entity.Attraction{ID: uuid.New(), Name: "Disneyland", Location: anaheim}
	working := entity.Attraction{ID: uuid.New(), Name: "Disneyland Park", Location: anaheim}

	require.NoError(t, f.history.Append(ctx, visitAt(user.ID, anaheim)))

	f.catalog.EXPECT().ListAttractions(ctx).Return([]entity.Attraction{broken, working}, nil)
	f.lookup.EXPECT().GetRewardPoints(ctx, broken.ID, user.ID).Return(0, errors.New("rewardCentral timeout"))
	f.lookup.EXPECT().GetRewardPoints(ctx, working.ID, user.ID).Return(42, nil)
	f.publisher.EXPECT().
		PublishRewardEvent(ctx, mock.AnythingOfType("*service.RewardEvent")).
		Return(nil).
		Once()

	require.NoError(t, f.service.CalculateRewards(ctx, user))

	rewards, err := f.ledger.ListRewards(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	assert.Equal(t, working.ID, rewards[0].Attraction.ID)
}

func TestRewardsService_PublishFailureKeepsGrant(t *testing.T) {
	f := newRewardsFixture(t)
	ctx := context.Background()
	user := testUser("heidi")
	attraction := entity.Attraction{ID: uuid.New(), Name: "Disneyland", Location: anaheim}

	require.NoError(t, f.history.Append(ctx, visitAt(user.ID, anaheim)))

	f.catalog.EXPECT().ListAttractions(ctx).Return([]entity.Attraction{attraction}, nil)
	f.lookup.EXPECT().GetRewardPoints(ctx, attraction.ID, user.ID).Return(10, nil)
	f.publisher.EXPECT().
		PublishRewardEvent(ctx, mock.AnythingOfType("*service.RewardEvent")).
		Return(errors.New("broker unavailable"))

	require.NoError(t, f.service.CalculateRewards(ctx, user))

	rewards, err := f.ledger.ListRewards(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}

func TestRewardsService_EmptyHistoryIsNoOp(t *testing.T) {
	f := newRewardsFixture(t)
	ctx := context.Background()
	user := testUser("ivan")

	f.catalog.EXPECT().ListAttractions(ctx).Return([]entity.Attraction{
		{ID: uuid.New(), Name: "Disneyland", Location: anaheim},
	}, nil)

	require.NoError(t, f.service.CalculateRewards(ctx, user))

	rewards, err := f.ledger.ListRewards(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, rewards)
}

func TestRewardsService_IsWithinAttractionProximity(t *testing.T) {
	f := newRewardsFixture(t)
	attraction := entity.Attraction{ID: uuid.New(), Name: "Disneyland", Location: anaheim}

	assert.True(t, f.service.IsWithinAttractionProximity(attraction, anaheim))
	assert.False(t, f.service.IsWithinAttractionProximity(attraction, farAway))

	// The display threshold is mutable process-wide configuration.
	f.service.SetAttractionProximityRange(30000)
	assert.True(t, f.service.IsWithinAttractionProximity(attraction, farAway))
}
