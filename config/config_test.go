package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"tracking": map[string]any{
			"shutdownTimeout": "30s",
		},
		"proximity": map[string]any{
			"rewardEligibilityRangeMiles": 10,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"tripPricer": map[string]any{
			"apiKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "TRACKING_SHUTDOWNTIMEOUT", want: "tracking.shutdownTimeout"},
		{envKey: "PROXIMITY_REWARDELIGIBILITYRANGEMILES", want: "proximity.rewardEligibilityRangeMiles"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "TRIPPRICER_APIKEY", want: "tripPricer.apiKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.applyDefaultsAndValidate())

	require.NotNil(t, cfg.Tracking)
	assert.Equal(t, 5*time.Minute, cfg.Tracking.Interval)
	assert.Equal(t, 50, cfg.Tracking.Workers)
	assert.Equal(t, 30*time.Second, cfg.Tracking.ShutdownTimeout)

	require.NotNil(t, cfg.Proximity)
	assert.Equal(t, float64(defaultAttractionProximityMiles), cfg.Proximity.AttractionProximityRangeMiles)
	assert.Equal(t, float64(defaultRewardEligibilityMiles), cfg.Proximity.RewardEligibilityRangeMiles)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Tracking: &TrackingConfig{
			Interval: time.Minute,
			Workers:  8,
		},
		Proximity: &ProximityConfig{
			AttractionProximityRangeMiles: 500,
			RewardEligibilityRangeMiles:   1,
		},
	}

	require.NoError(t, cfg.applyDefaultsAndValidate())

	assert.Equal(t, time.Minute, cfg.Tracking.Interval)
	assert.Equal(t, 8, cfg.Tracking.Workers)
	// Missing grace period falls back, the rest stays untouched.
	assert.Equal(t, 30*time.Second, cfg.Tracking.ShutdownTimeout)
	assert.Equal(t, 500.0, cfg.Proximity.AttractionProximityRangeMiles)
	assert.Equal(t, 1.0, cfg.Proximity.RewardEligibilityRangeMiles)
}

func TestValidate_RejectsBrokenTracking(t *testing.T) {
	tests := []struct {
		name     string
		tracking *TrackingConfig
	}{
		{
			name:     "zero interval",
			tracking: &TrackingConfig{Interval: 0, Workers: 10},
		},
		{
			name:     "negative interval",
			tracking: &TrackingConfig{Interval: -time.Second, Workers: 10},
		},
		{
			name:     "zero workers",
			tracking: &TrackingConfig{Interval: time.Minute, Workers: 0},
		},
		{
			name:     "negative workers",
			tracking: &TrackingConfig{Interval: time.Minute, Workers: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Tracking: tt.tracking}
			assert.Error(t, cfg.applyDefaultsAndValidate())
		})
	}
}

func TestValidate_RejectsNegativeProximityRanges(t *testing.T) {
	cfg := &Config{
		Proximity: &ProximityConfig{
			AttractionProximityRangeMiles: -1,
			RewardEligibilityRangeMiles:   10,
		},
	}

	assert.Error(t, cfg.applyDefaultsAndValidate())
}
