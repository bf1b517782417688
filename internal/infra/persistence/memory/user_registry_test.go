package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegistry_AddAndGet(t *testing.T) {
	registry := NewUserRegistry()
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Name: "jon"}
	require.NoError(t, registry.AddUser(ctx, user))

	fetched, err := registry.GetUserByName(ctx, "jon")
	require.NoError(t, err)
	assert.Equal(t, user, fetched)

	_, err = registry.GetUserByName(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRegistry_DuplicateNameIsNoOp(t *testing.T) {
	registry := NewUserRegistry()
	ctx := context.Background()

	first := &entity.User{ID: uuid.New(), Name: "jon"}
	second := &entity.User{ID: uuid.New(), Name: "jon"}
	require.NoError(t, registry.AddUser(ctx, first))
	require.NoError(t, registry.AddUser(ctx, second))

	fetched, err := registry.GetUserByName(ctx, "jon")
	require.NoError(t, err)
	assert.Equal(t, first.ID, fetched.ID)

	users, err := registry.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRegistry_ListKeepsRegistrationOrder(t *testing.T) {
	registry := NewUserRegistry()
	ctx := context.Background()

	names := []string{"carol", "alice", "bob"}
	for _, name := range names {
		require.NoError(t, registry.AddUser(ctx, &entity.User{ID: uuid.New(), Name: name}))
	}

	users, err := registry.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i, name := range names {
		assert.Equal(t, name, users[i].Name)
	}
}

func TestUserRegistry_ConcurrentRegistration(t *testing.T) {
	registry := NewUserRegistry()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := registry.AddUser(ctx, &entity.User{
				ID:   uuid.New(),
				Name: fmt.Sprintf("internalUser%d", i),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	users, err := registry.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 32)
}
