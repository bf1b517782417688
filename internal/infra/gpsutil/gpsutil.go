// Package gpsutil is the built-in stand-in for the external position and
// attraction-catalog provider. It serves a fixed attraction catalog and
// simulates position fixes as random coordinates, with optional artificial
// latency to mimic the real provider's behavior.
package gpsutil

import (
	"context"
	"math/rand/v2"
	"time"

	"tourguide/config"
	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Latitude is capped at the Web Mercator limit the original provider used.
const (
	maxLatitude  = 85.05112878
	maxLongitude = 180.0
)

type simulator struct {
	catalog    []entity.Attraction
	maxLatency time.Duration
}

// New creates the simulator, serving both the PositionProvider and
// AttractionCatalog contracts.
func New(cfg *config.Config) *simulator {
	var maxLatency time.Duration
	if cfg.GpsSimulator != nil {
		maxLatency = cfg.GpsSimulator.MaxLatency
	}

	return &simulator{
		catalog:    buildCatalog(),
		maxLatency: maxLatency,
	}
}

// NewPositionProvider exposes the simulator as a PositionProvider.
func NewPositionProvider(cfg *config.Config) service.PositionProvider {
	return New(cfg)
}

// NewAttractionCatalog exposes the simulator as an AttractionCatalog.
func NewAttractionCatalog(cfg *config.Config) service.AttractionCatalog {
	return New(cfg)
}

// GetUserLocation reports a fresh random position for the user, stamped with
// the current time.
func (s *simulator) GetUserLocation(ctx context.Context, userID uuid.UUID) (entity.VisitedLocation, error) {
	if err := s.sleep(ctx); err != nil {
		return entity.VisitedLocation{}, err
	}

	return entity.VisitedLocation{
		UserID: userID,
		Location: entity.Location{
			Latitude:  randomInRange(-maxLatitude, maxLatitude),
			Longitude: randomInRange(-maxLongitude, maxLongitude),
		},
		TimeVisited: time.Now().UTC(),
	}, nil
}

// ListAttractions returns the catalog snapshot. The slice is copied so
// callers can never mutate the simulator's state.
func (s *simulator) ListAttractions(ctx context.Context) ([]entity.Attraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	catalog := make([]entity.Attraction, len(s.catalog))
	copy(catalog, s.catalog)

	return catalog, nil
}

func (s *simulator) sleep(ctx context.Context) error {
	if s.maxLatency <= 0 {
		return ctx.Err()
	}

	delay := time.Duration(rand.Int64N(int64(s.maxLatency)))
	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-time.After(delay):
		return nil
	}
}

func randomInRange(low, high float64) float64 {
	return low + rand.Float64()*(high-low)
}
