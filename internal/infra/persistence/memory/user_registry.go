// Package memory implements the repository interfaces as in-memory stores.
// State is process-local and lost on restart; durability is an explicit
// non-goal of this system.
package memory

import (
	"context"
	"sync"

	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/repository"
)

type userRegistry struct {
	mu     sync.RWMutex
	byName map[string]*entity.User
	order  []*entity.User
}

// NewUserRegistry creates the shared in-memory user registry.
func NewUserRegistry() repository.UserRegistry {
	return &userRegistry{
		byName: make(map[string]*entity.User),
	}
}

// AddUser registers a new user. A duplicate name is a no-op, matching
// idempotent registration semantics.
func (r *userRegistry) AddUser(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[user.Name]; exists {
		return nil
	}
	r.byName[user.Name] = user
	r.order = append(r.order, user)

	return nil
}

func (r *userRegistry) GetUserByName(_ context.Context, name string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byName[name]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

// ListUsers returns a snapshot of all users in registration order.
func (r *userRegistry) ListUsers(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entity.User, len(r.order))
	copy(users, r.order)

	return users, nil
}
