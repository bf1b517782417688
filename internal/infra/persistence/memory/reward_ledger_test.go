package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"tourguide/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reward(attractionID uuid.UUID, points int) entity.UserReward {
	return entity.UserReward{
		VisitedLocation: entity.VisitedLocation{TimeVisited: time.Now().UTC()},
		Attraction:      entity.Attraction{ID: attractionID, Name: "Disneyland"},
		RewardPoints:    points,
	}
}

func TestRewardLedger_FirstGrantWins(t *testing.T) {
	ledger := NewRewardLedger()
	ctx := context.Background()
	userID := uuid.New()
	attractionID := uuid.New()

	granted, err := ledger.AddReward(ctx, userID, reward(attractionID, 100))
	require.NoError(t, err)
	assert.True(t, granted)

	// The duplicate is a silent no-op; the first grant's points stand.
	granted, err = ledger.AddReward(ctx, userID, reward(attractionID, 999))
	require.NoError(t, err)
	assert.False(t, granted)

	rewards, err := ledger.ListRewards(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	assert.Equal(t, 100, rewards[0].RewardPoints)
}

func TestRewardLedger_GrantsAreScopedPerUser(t *testing.T) {
	ledger := NewRewardLedger()
	ctx := context.Background()
	attractionID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	granted, err := ledger.AddReward(ctx, alice, reward(attractionID, 10))
	require.NoError(t, err)
	assert.True(t, granted)

	assert.True(t, ledger.HasReward(ctx, alice, attractionID))
	assert.False(t, ledger.HasReward(ctx, bob, attractionID))

	granted, err = ledger.AddReward(ctx, bob, reward(attractionID, 20))
	require.NoError(t, err)
	assert.True(t, granted)
}

func TestRewardLedger_ListPreservesGrantOrder(t *testing.T) {
	ledger := NewRewardLedger()
	ctx := context.Background()
	userID := uuid.New()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, id := range ids {
		granted, err := ledger.AddReward(ctx, userID, reward(id, (i+1)*10))
		require.NoError(t, err)
		require.True(t, granted)
	}

	rewards, err := ledger.ListRewards(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rewards, 3)
	for i, id := range ids {
		assert.Equal(t, id, rewards[i].Attraction.ID)
	}

	total, err := ledger.TotalPoints(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 60, total)
}

func TestRewardLedger_ConcurrentAddSingleGrant(t *testing.T) {
	ledger := NewRewardLedger()
	ctx := context.Background()
	userID := uuid.New()
	attractionID := uuid.New()

	var wg sync.WaitGroup
	var grants sync.Map
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			granted, err := ledger.AddReward(ctx, userID, reward(attractionID, 100))
			assert.NoError(t, err)
			if granted {
				grants.Store(i, struct{}{})
			}
		}()
	}
	wg.Wait()

	count := 0
	grants.Range(func(_, _ any) bool {
		count++

		return true
	})
	assert.Equal(t, 1, count)

	rewards, err := ledger.ListRewards(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}

func TestRewardLedger_EmptyUser(t *testing.T) {
	ledger := NewRewardLedger()
	ctx := context.Background()
	userID := uuid.New()

	rewards, err := ledger.ListRewards(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, rewards)

	total, err := ledger.TotalPoints(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, total)

	assert.False(t, ledger.HasReward(ctx, userID, uuid.New()))
}
