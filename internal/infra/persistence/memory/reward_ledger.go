package memory

import (
	"context"
	"sync"

	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/repository"

	"github.com/google/uuid"
)

// userRewards is one user's grants: an ordered log plus an attraction-id set
// for the uniqueness check.
type userRewards struct {
	granted map[uuid.UUID]struct{}
	order   []entity.UserReward
}

type rewardLedger struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*userRewards
}

// NewRewardLedger creates the in-memory reward ledger. The check-and-insert
// in AddReward happens under one lock, which makes grants linearizable per
// (user, attraction) key.
func NewRewardLedger() repository.RewardLedger {
	return &rewardLedger{
		users: make(map[uuid.UUID]*userRewards),
	}
}

func (l *rewardLedger) AddReward(_ context.Context, userID uuid.UUID, reward entity.UserReward) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rewards, ok := l.users[userID]
	if !ok {
		rewards = &userRewards{granted: make(map[uuid.UUID]struct{})}
		l.users[userID] = rewards
	}

	// First qualifying visit wins; a duplicate attraction is a silent no-op.
	if _, exists := rewards.granted[reward.Attraction.ID]; exists {
		return false, nil
	}
	rewards.granted[reward.Attraction.ID] = struct{}{}
	rewards.order = append(rewards.order, reward)

	return true, nil
}

func (l *rewardLedger) HasReward(_ context.Context, userID, attractionID uuid.UUID) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rewards, ok := l.users[userID]
	if !ok {
		return false
	}
	_, exists := rewards.granted[attractionID]

	return exists
}

// ListRewards returns a snapshot of the user's rewards in grant order.
func (l *rewardLedger) ListRewards(_ context.Context, userID uuid.UUID) ([]entity.UserReward, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rewards, ok := l.users[userID]
	if !ok {
		return nil, nil
	}
	snapshot := make([]entity.UserReward, len(rewards.order))
	copy(snapshot, rewards.order)

	return snapshot, nil
}

func (l *rewardLedger) TotalPoints(_ context.Context, userID uuid.UUID) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rewards, ok := l.users[userID]
	if !ok {
		return 0, nil
	}
	total := 0
	for _, reward := range rewards.order {
		total += reward.RewardPoints
	}

	return total, nil
}
