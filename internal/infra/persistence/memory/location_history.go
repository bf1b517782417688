package memory

import (
	"context"
	"sync"

	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/repository"

	"github.com/google/uuid"
)

type locationHistory struct {
	mu     sync.RWMutex
	visits map[uuid.UUID][]entity.VisitedLocation
}

// NewLocationHistory creates the in-memory per-user visited-location store.
func NewLocationHistory() repository.LocationHistory {
	return &locationHistory{
		visits: make(map[uuid.UUID][]entity.VisitedLocation),
	}
}

func (h *locationHistory) Append(_ context.Context, visited entity.VisitedLocation) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.visits[visited.UserID] = append(h.visits[visited.UserID], visited)

	return nil
}

func (h *locationHistory) Last(_ context.Context, userID uuid.UUID) (entity.VisitedLocation, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	visits := h.visits[userID]
	if len(visits) == 0 {
		return entity.VisitedLocation{}, false
	}

	return visits[len(visits)-1], true
}

// List returns a copy so that callers hold an immutable snapshot while
// concurrent tracking cycles keep appending.
func (h *locationHistory) List(_ context.Context, userID uuid.UUID) ([]entity.VisitedLocation, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	visits := h.visits[userID]
	snapshot := make([]entity.VisitedLocation, len(visits))
	copy(snapshot, visits)

	return snapshot, nil
}
