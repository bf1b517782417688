// Package rewardcentral is the built-in stand-in for the external
// reward-points lookup. Point values are random per call, as in the real
// collaborator, with optional artificial latency.
package rewardcentral

import (
	"context"
	"math/rand/v2"
	"time"

	"tourguide/config"
	"tourguide/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type lookup struct {
	maxLatency time.Duration
}

// New creates the simulated reward-points lookup.
func New(cfg *config.Config) service.RewardPointsLookup {
	var maxLatency time.Duration
	if cfg.RewardCentral != nil {
		maxLatency = cfg.RewardCentral.MaxLatency
	}

	return &lookup{maxLatency: maxLatency}
}

// GetRewardPoints returns a point value in [1, 1000] for the pair.
func (l *lookup) GetRewardPoints(ctx context.Context, _, _ uuid.UUID) (int, error) {
	if l.maxLatency > 0 {
		delay := time.Duration(rand.Int64N(int64(l.maxLatency)))
		select {
		case <-ctx.Done():
			return 0, errors.WithStack(ctx.Err())
		case <-time.After(delay):
		}
	} else if err := ctx.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	return rand.IntN(1000) + 1, nil
}
