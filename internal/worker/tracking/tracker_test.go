package tracking

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"tourguide/config"
	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/repository"
	"tourguide/internal/infra/persistence/memory"
	mockUsecase "tourguide/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTracker(t *testing.T, cfg *config.TrackingConfig, registry repository.UserRegistry, tour *mockUsecase.MockTourUsecase) *Tracker {
	return New(TrackerParams{
		Lc:       fxtest.NewLifecycle(t),
		Config:   &config.Config{Tracking: cfg},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registry: registry,
		Tour:     tour,
	})
}

func registerUsers(t *testing.T, registry repository.UserRegistry, count int) {
	ctx := context.Background()
	for i := range count {
		err := registry.AddUser(ctx, &entity.User{
			ID:   uuid.New(),
			Name: fmt.Sprintf("internalUser%d", i),
		})
		require.NoError(t, err)
	}
}

func TestTracker_StartStopStateMachine(t *testing.T) {
	tracker := newTracker(t, &config.TrackingConfig{
		Interval: time.Hour,
		Workers:  2,
	}, memory.NewUserRegistry(), mockUsecase.NewMockTourUsecase(t))

	assert.False(t, tracker.Running())
	assert.ErrorIs(t, tracker.StopTracking(context.Background()), ErrNotRunning)

	require.NoError(t, tracker.StartTracking())
	assert.True(t, tracker.Running())
	assert.ErrorIs(t, tracker.StartTracking(), ErrAlreadyRunning)

	require.NoError(t, tracker.StopTracking(context.Background()))
	assert.False(t, tracker.Running())
	assert.ErrorIs(t, tracker.StopTracking(context.Background()), ErrNotRunning)

	// A stopped tracker can be started again.
	require.NoError(t, tracker.StartTracking())
	require.NoError(t, tracker.StopTracking(context.Background()))
}

func TestTracker_FirstCycleTracksEveryUser(t *testing.T) {
	registry := memory.NewUserRegistry()
	registerUsers(t, registry, 3)

	tour := mockUsecase.NewMockTourUsecase(t)
	var calls atomic.Int32
	done := make(chan struct{})
	tour.EXPECT().
		TrackUser(mock.Anything, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) (entity.VisitedLocation, error) {
			if calls.Add(1) == 3 {
				close(done)
			}

			return entity.VisitedLocation{UserID: user.ID}, nil
		})

	tracker := newTracker(t, &config.TrackingConfig{
		Interval: time.Hour, // only the immediate cycle fires
		Workers:  2,
	}, registry, tour)

	require.NoError(t, tracker.StartTracking())
	defer func() { _ = tracker.StopTracking(context.Background()) }()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the first tracking cycle")
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestTracker_StopHaltsDispatch(t *testing.T) {
	registry := memory.NewUserRegistry()
	registerUsers(t, registry, 2)

	tour := mockUsecase.NewMockTourUsecase(t)
	var calls atomic.Int32
	tour.EXPECT().
		TrackUser(mock.Anything, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) (entity.VisitedLocation, error) {
			calls.Add(1)

			return entity.VisitedLocation{UserID: user.ID}, nil
		})

	tracker := newTracker(t, &config.TrackingConfig{
		Interval: 20 * time.Millisecond,
		Workers:  2,
	}, registry, tour)

	require.NoError(t, tracker.StartTracking())

	// Let at least one cycle run, then stop.
	assert.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, 5*time.Second, 5*time.Millisecond)

	require.NoError(t, tracker.StopTracking(context.Background()))

	stopped := calls.Load()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())
}

func TestTracker_WorkerPoolBoundsConcurrency(t *testing.T) {
	const workers = 2

	registry := memory.NewUserRegistry()
	registerUsers(t, registry, 8)

	tour := mockUsecase.NewMockTourUsecase(t)
	var inFlight, peak, completed atomic.Int32
	tour.EXPECT().
		TrackUser(mock.Anything, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) (entity.VisitedLocation, error) {
			current := inFlight.Add(1)
			for {
				observed := peak.Load()
				if current <= observed || peak.CompareAndSwap(observed, current) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			completed.Add(1)

			return entity.VisitedLocation{UserID: user.ID}, nil
		})

	tracker := newTracker(t, &config.TrackingConfig{
		Interval: time.Hour,
		Workers:  workers,
	}, registry, tour)

	require.NoError(t, tracker.StartTracking())
	assert.Eventually(t, func() bool {
		return completed.Load() == 8
	}, 5*time.Second, 5*time.Millisecond)
	require.NoError(t, tracker.StopTracking(context.Background()))

	assert.LessOrEqual(t, peak.Load(), int32(workers))
}

func TestTracker_StopWaitsForInFlightCycles(t *testing.T) {
	registry := memory.NewUserRegistry()
	registerUsers(t, registry, 4)

	tour := mockUsecase.NewMockTourUsecase(t)
	var started, completed atomic.Int32
	allStarted := make(chan struct{})
	tour.EXPECT().
		TrackUser(mock.Anything, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) (entity.VisitedLocation, error) {
			if started.Add(1) == 4 {
				close(allStarted)
			}
			time.Sleep(20 * time.Millisecond)
			completed.Add(1)

			return entity.VisitedLocation{UserID: user.ID}, nil
		})

	tracker := newTracker(t, &config.TrackingConfig{
		Interval:        time.Hour,
		Workers:         4,
		ShutdownTimeout: 5 * time.Second,
	}, registry, tour)

	require.NoError(t, tracker.StartTracking())
	select {
	case <-allStarted:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for tracking tasks to start")
	}
	require.NoError(t, tracker.StopTracking(context.Background()))

	// Stop returns only after the in-flight cycle drained.
	assert.Equal(t, int32(4), completed.Load())
}

func TestTracker_UserFailureDoesNotAbortCycle(t *testing.T) {
	registry := memory.NewUserRegistry()
	registerUsers(t, registry, 3)

	tour := mockUsecase.NewMockTourUsecase(t)
	var calls atomic.Int32
	tour.EXPECT().
		TrackUser(mock.Anything, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) (entity.VisitedLocation, error) {
			n := calls.Add(1)
			if n == 1 {
				return entity.VisitedLocation{}, assert.AnError
			}

			return entity.VisitedLocation{UserID: user.ID}, nil
		})

	tracker := newTracker(t, &config.TrackingConfig{
		Interval: time.Hour,
		Workers:  1,
	}, registry, tour)

	require.NoError(t, tracker.StartTracking())
	assert.Eventually(t, func() bool {
		return calls.Load() == 3
	}, 5*time.Second, 5*time.Millisecond)
	require.NoError(t, tracker.StopTracking(context.Background()))

	assert.Equal(t, int32(3), calls.Load())
}
