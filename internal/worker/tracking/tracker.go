// Package tracking runs the background tracking scheduler: a repeating loop
// that refreshes every registered user's position through a bounded worker
// pool.
package tracking

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tourguide/config"
	"tourguide/internal/domain/lifecycle"
	"tourguide/internal/domain/repository"
	"tourguide/internal/errors"
	"tourguide/internal/usecase"

	"go.uber.org/fx"
)

var (
	// ErrAlreadyRunning is returned when StartTracking is called on a running tracker.
	ErrAlreadyRunning = errors.New("tracker already running")
	// ErrNotRunning is returned when StopTracking is called on a stopped tracker.
	ErrNotRunning = errors.New("tracker not running")
)

// Tracker dispatches one TrackUser task per registered user on every tick,
// bounded by a fixed-size worker pool. Tasks for different users run
// independently; one user's failure never aborts the others. Shutdown is
// cooperative: no new submissions after stop, in-flight cycles run to
// completion within the grace period.
type Tracker struct {
	registry        repository.UserRegistry
	tour            usecase.TourUsecase
	logger          *slog.Logger
	interval        time.Duration
	workers         int
	shutdownTimeout time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// TrackerParams holds dependencies for the Tracker, injected by Fx.
type TrackerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Registry repository.UserRegistry
	Tour     usecase.TourUsecase
}

// New creates the tracker and ties it to the process lifecycle: tracking
// starts when the application starts and stops with the configured grace
// period on shutdown.
func New(params TrackerParams) *Tracker {
	tracker := &Tracker{
		registry:        params.Registry,
		tour:            params.Tour,
		logger:          params.Logger,
		interval:        params.Config.Tracking.Interval,
		workers:         params.Config.Tracking.Workers,
		shutdownTimeout: params.Config.Tracking.ShutdownTimeout,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return tracker.StartTracking()
		},
		OnStop: func(ctx context.Context) error {
			err := tracker.StopTracking(ctx)
			if errors.Is(err, ErrNotRunning) {
				return nil
			}

			return err
		},
	})

	return tracker
}

// StartTracking launches the scheduler loop. Starting a running tracker is
// an error.
func (t *Tracker) StartTracking() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return ErrAlreadyRunning
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.done = make(chan struct{})
	t.running = true

	go t.run(loopCtx, t.done)

	t.logger.Info("tracking scheduler started",
		slog.Duration("interval", t.interval),
		slog.Int("workers", t.workers),
	)

	return nil
}

// StopTracking signals the loop to stop submitting new tasks and waits for
// in-flight tracking cycles to finish, bounded by the shutdown grace period.
// On-demand tracking through the usecase stays available regardless.
func (t *Tracker) StopTracking(ctx context.Context) error {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()

		return ErrNotRunning
	}
	t.running = false
	t.cancel()
	done := t.done
	t.mu.Unlock()

	grace := t.shutdownTimeout
	if grace <= 0 {
		grace = lifecycle.DefaultTimeout
	}

	select {
	case <-done:
		t.logger.Info("tracking scheduler stopped")

		return nil
	case <-time.After(grace):
		t.logger.Warn("tracking scheduler stop timed out, in-flight cycles abandoned",
			slog.Duration("grace", grace),
		)

		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Running reports whether the scheduler loop is active.
func (t *Tracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.running
}

// run executes one cycle immediately, then one per tick until stopped.
// loopCtx only governs scheduling: tasks get a background context so a stop
// signal never interrupts a tracking cycle mid-flight.
func (t *Tracker) run(loopCtx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.runCycle(loopCtx)

	for {
		select {
		case <-loopCtx.Done():
			return
		case <-ticker.C:
			t.runCycle(loopCtx)
		}
	}
}

// runCycle submits one track task per registered user through the bounded
// pool and waits for the cycle to complete.
func (t *Tracker) runCycle(loopCtx context.Context) {
	start := time.Now()

	users, err := t.registry.ListUsers(loopCtx)
	if err != nil {
		t.logger.Error("failed to list users for tracking cycle",
			slog.String("error", err.Error()),
		)

		return
	}
	if len(users) == 0 {
		return
	}

	sem := make(chan struct{}, t.workers)
	var wg sync.WaitGroup

	for _, user := range users {
		// Stop submitting as soon as shutdown is signalled.
		if loopCtx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}

		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			// Background context: in-flight cycles are never cancelled, so a
			// visited location is never appended without its reward pass.
			if _, err := t.tour.TrackUser(context.Background(), user); err != nil {
				t.logger.Error("tracking cycle failed for user",
					slog.String("user", user.Name),
					slog.String("error", err.Error()),
				)
			}
		}()
	}

	wg.Wait()

	t.logger.Info("tracking cycle completed",
		slog.Int("users", len(users)),
		slog.Duration("duration", time.Since(start)),
	)
}
