package rewardcentral

import (
	"context"
	"testing"

	"tourguide/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRewardPoints_WithinExpectedRange(t *testing.T) {
	lookup := New(&config.Config{})
	ctx := context.Background()

	for range 200 {
		points, err := lookup.GetRewardPoints(ctx, uuid.New(), uuid.New())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, points, 1)
		assert.LessOrEqual(t, points, 1000)
	}
}

func TestGetRewardPoints_CancelledContext(t *testing.T) {
	lookup := New(&config.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lookup.GetRewardPoints(ctx, uuid.New(), uuid.New())
	assert.Error(t, err)
}
