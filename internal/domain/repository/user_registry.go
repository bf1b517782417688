// Package repository defines the interfaces for the in-memory state layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"tourguide/internal/domain/entity"
	"tourguide/internal/errors"
)

// ErrUserNotFound is returned when a user lookup by name fails.
var ErrUserNotFound = errors.New("user not found")

// UserRegistry is the shared registry of tracked users. Mutation is limited
// to inserting new users, which must be safe under concurrent reads from the
// scheduler and the request path.
type UserRegistry interface {
	// AddUser registers a new user. Registering a name that already exists is
	// a no-op.
	AddUser(ctx context.Context, user *entity.User) error

	// GetUserByName retrieves a user by display name.
	// Returns ErrUserNotFound if no such user is registered.
	GetUserByName(ctx context.Context, name string) (*entity.User, error)

	// ListUsers returns all registered users in registration order.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
