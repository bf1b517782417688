package handler

import (
	"log/slog"
	"net/http"

	"tourguide/internal/delivery/http/response"
	domainerrors "tourguide/internal/domain/errors"
	"tourguide/internal/errors"
	"tourguide/internal/usecase"
	"tourguide/internal/worker/tracking"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TrackerHandlerParams holds dependencies for TrackerHandler, injected by Fx.
type TrackerHandlerParams struct {
	fx.In

	Lifecycle usecase.TrackingLifecycle
	Logger    *slog.Logger
}

// TrackerHandler controls the background tracking scheduler.
type TrackerHandler struct {
	lifecycle usecase.TrackingLifecycle
	logger    *slog.Logger
}

// NewTrackerHandler is the constructor for TrackerHandler
func NewTrackerHandler(params TrackerHandlerParams) *TrackerHandler {
	return &TrackerHandler{
		lifecycle: params.Lifecycle,
		logger:    params.Logger,
	}
}

type trackerStatus struct {
	Running bool `json:"running"`
}

// Start handles POST /tracker/start.
func (h *TrackerHandler) Start(c echo.Context) error {
	if err := h.lifecycle.StartTracking(); err != nil {
		if errors.Is(err, tracking.ErrAlreadyRunning) {
			return response.Conflict(c,
				domainerrors.ErrTrackerAlreadyRunning.ErrorCode(),
				domainerrors.ErrTrackerAlreadyRunning.Message(),
			)
		}
		h.logger.Error("start tracker failed", slog.String("error", err.Error()))

		return response.InternalServerError(c, "TRACKER_START_FAILED", "tracker could not be started")
	}

	return response.Success(c, http.StatusOK, trackerStatus{Running: true}, "Tracker started successfully")
}

// Stop handles POST /tracker/stop. New submissions stop immediately;
// in-flight tracking cycles are waited for up to the configured grace
// period.
func (h *TrackerHandler) Stop(c echo.Context) error {
	if err := h.lifecycle.StopTracking(c.Request().Context()); err != nil {
		if errors.Is(err, tracking.ErrNotRunning) {
			return response.Conflict(c,
				domainerrors.ErrTrackerNotRunning.ErrorCode(),
				domainerrors.ErrTrackerNotRunning.Message(),
			)
		}
		h.logger.Error("stop tracker failed", slog.String("error", err.Error()))

		return response.InternalServerError(c, "TRACKER_STOP_FAILED", "tracker could not be stopped")
	}

	return response.Success(c, http.StatusOK, trackerStatus{Running: false}, "Tracker stopped successfully")
}

// Status handles GET /tracker.
func (h *TrackerHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, trackerStatus{Running: h.lifecycle.Running()}, "Tracker status retrieved successfully")
}
