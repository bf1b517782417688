// Package handler contains the echo handlers for the tracking and rewards
// surface.
package handler

import (
	"log/slog"
	"net/http"

	"tourguide/internal/delivery/http/response"
	"tourguide/internal/domain/entity"
	domainerrors "tourguide/internal/domain/errors"
	"tourguide/internal/domain/repository"
	"tourguide/internal/errors"
	"tourguide/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TourHandlerParams holds dependencies for TourHandler, injected by Fx.
type TourHandlerParams struct {
	fx.In

	TourUC usecase.TourUsecase
	Logger *slog.Logger
}

// TourHandler serves the location, rewards, nearby-attractions and
// trip-deals endpoints.
type TourHandler struct {
	tourUC usecase.TourUsecase
	logger *slog.Logger
}

// NewTourHandler is the constructor for TourHandler
func NewTourHandler(params TourHandlerParams) *TourHandler {
	return &TourHandler{
		tourUC: params.TourUC,
		logger: params.Logger,
	}
}

// GetLocation handles GET /location?userName=: the user's current location,
// tracking first when the history is empty.
func (h *TourHandler) GetLocation(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return err
	}

	visited, err := h.tourUC.GetUserLocation(c.Request().Context(), user)
	if err != nil {
		return h.handleAppError(c, err, domainerrors.ErrPositionUnavailable)
	}

	return response.Success(c, http.StatusOK, visited, "Current location retrieved successfully")
}

// GetRewards handles GET /rewards?userName=: the user's rewards in grant
// order.
func (h *TourHandler) GetRewards(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return err
	}

	rewards, err := h.tourUC.GetUserRewards(c.Request().Context(), user)
	if err != nil {
		return h.handleAppError(c, err, domainerrors.ErrPositionUnavailable)
	}
	if rewards == nil {
		rewards = []entity.UserReward{}
	}

	return response.Success(c, http.StatusOK, rewards, "Rewards retrieved successfully")
}

// GetNearbyAttractions handles GET /nearby-attractions?userName=: the five
// closest attractions to the user's current location, annotated with
// distance and reward points.
func (h *TourHandler) GetNearbyAttractions(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return err
	}

	nearby, err := h.tourUC.NearbyAttractions(c.Request().Context(), user)
	if err != nil {
		return h.handleAppError(c, err, domainerrors.ErrCatalogUnavailable)
	}

	return response.Success(c, http.StatusOK, nearby, "Nearby attractions retrieved successfully")
}

// GetTripDeals handles GET /trip-deals?userName=: quotes from the pricing
// collaborator.
func (h *TourHandler) GetTripDeals(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return err
	}

	providers, err := h.tourUC.GetTripDeals(c.Request().Context(), user)
	if err != nil {
		return h.handleAppError(c, err, domainerrors.ErrPricingUnavailable)
	}

	return response.Success(c, http.StatusOK, providers, "Trip deals retrieved successfully")
}

// TrackUser handles POST /users/:userName/track: an on-demand tracking
// cycle, independent of the scheduler's running state.
func (h *TourHandler) TrackUser(c echo.Context) error {
	name := c.Param("userName")
	if name == "" {
		return response.BadRequest(c, "MISSING_USER_NAME", "userName path parameter is required")
	}

	user, err := h.tourUC.GetUser(c.Request().Context(), name)
	if err != nil {
		return h.handleAppError(c, err, domainerrors.ErrPositionUnavailable)
	}

	visited, err := h.tourUC.TrackUser(c.Request().Context(), user)
	if err != nil {
		return h.handleAppError(c, err, domainerrors.ErrPositionUnavailable)
	}

	return response.Success(c, http.StatusOK, visited, "User tracked successfully")
}

// lookupUser resolves the userName query parameter to a registered user,
// replying 404 for unknown names.
func (h *TourHandler) lookupUser(c echo.Context) (*entity.User, error) {
	name := c.QueryParam("userName")
	if name == "" {
		return nil, response.BadRequest(c, "MISSING_USER_NAME", "userName query parameter is required")
	}

	user, err := h.tourUC.GetUser(c.Request().Context(), name)
	if err != nil {
		return nil, h.handleAppError(c, err, domainerrors.ErrPositionUnavailable)
	}

	return user, nil
}

// handleAppError maps domain errors to the response envelope. Errors that
// carry no HTTP mapping of their own fall back to the handler-supplied
// application error.
func (h *TourHandler) handleAppError(c echo.Context, err error, fallback domainerrors.AppError) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return response.NotFound(c,
			domainerrors.ErrUserNotFound.ErrorCode(),
			domainerrors.ErrUserNotFound.Message(),
		)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	h.logger.Error("request failed", slog.String("error", err.Error()))

	return response.Error(c, fallback.HTTPCode(), fallback.ErrorCode(), fallback.Message(), err.Error())
}
