package trippricer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPrice_QuotesFiveProviders(t *testing.T) {
	pricer := New()
	ctx := context.Background()

	providers, err := pricer.GetPrice(ctx, "test-server-api-key", uuid.New(), 2, 1, 7, 0)
	require.NoError(t, err)
	require.Len(t, providers, 5)

	for _, provider := range providers {
		assert.NotEmpty(t, provider.Name)
		assert.NotEqual(t, uuid.Nil, provider.TripID)
		assert.GreaterOrEqual(t, provider.Price, 0.0)
	}
}

func TestGetPrice_RewardPointsNeverPushPriceBelowZero(t *testing.T) {
	pricer := New()
	ctx := context.Background()

	providers, err := pricer.GetPrice(ctx, "test-server-api-key", uuid.New(), 1, 0, 1, 1_000_000)
	require.NoError(t, err)

	for _, provider := range providers {
		assert.Zero(t, provider.Price)
	}
}

func TestGetPrice_CancelledContext(t *testing.T) {
	pricer := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pricer.GetPrice(ctx, "test-server-api-key", uuid.New(), 1, 0, 1, 0)
	assert.Error(t, err)
}
