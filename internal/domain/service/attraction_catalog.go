package service

import (
	"context"

	"tourguide/internal/domain/entity"
)

// AttractionCatalog lists the points of interest known to the system.
// The returned slice is treated as a consistent snapshot for the duration of
// one ranking or reward call; no live updates mid-computation.
type AttractionCatalog interface {
	ListAttractions(ctx context.Context) ([]entity.Attraction, error)
}
