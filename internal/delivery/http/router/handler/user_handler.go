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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	TourUC usecase.TourUsecase
	Logger *slog.Logger
}

// UserHandler serves user registration and listing.
type UserHandler struct {
	tourUC usecase.TourUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		tourUC: params.TourUC,
		logger: params.Logger,
	}
}

type preferencesPayload struct {
	TripDuration     int `json:"tripDuration" validate:"min=1"`
	TicketQuantity   int `json:"ticketQuantity" validate:"min=1"`
	NumberOfAdults   int `json:"numberOfAdults" validate:"min=1"`
	NumberOfChildren int `json:"numberOfChildren" validate:"min=0"`
}

type registerUserRequest struct {
	UserName    string              `json:"userName" validate:"required"`
	Phone       string              `json:"phone"`
	Email       string              `json:"email" validate:"omitempty,email"`
	Preferences *preferencesPayload `json:"preferences,omitempty"`
}

// RegisterUser handles POST /users. Registering a name that already exists
// is a no-op in the registry, so the existing user keeps its identity.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST_BODY", "request body could not be parsed")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	input := &usecase.AddUserInput{
		Name:  req.UserName,
		Phone: req.Phone,
		Email: req.Email,
	}
	if req.Preferences != nil {
		input.Preferences = &entity.UserPreferences{
			TripDuration:     req.Preferences.TripDuration,
			TicketQuantity:   req.Preferences.TicketQuantity,
			NumberOfAdults:   req.Preferences.NumberOfAdults,
			NumberOfChildren: req.Preferences.NumberOfChildren,
		}
	}

	user, err := h.tourUC.AddUser(c.Request().Context(), input)
	if err != nil {
		h.logger.Error("register user failed", slog.String("error", err.Error()))

		return response.InternalServerError(c, "REGISTER_FAILED", "user could not be registered")
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.tourUC.GetAllUsers(c.Request().Context())
	if err != nil {
		h.logger.Error("list users failed", slog.String("error", err.Error()))

		return response.InternalServerError(c, "LIST_USERS_FAILED", "users could not be listed")
	}
	if users == nil {
		users = []*entity.User{}
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// GetRewardPoints handles GET /users/:userName/reward-points: the user's
// cumulative reward point total.
func (h *UserHandler) GetRewardPoints(c echo.Context) error {
	name := c.Param("userName")
	if name == "" {
		return response.BadRequest(c, "MISSING_USER_NAME", "userName path parameter is required")
	}

	user, err := h.tourUC.GetUser(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return response.NotFound(c,
				domainerrors.ErrUserNotFound.ErrorCode(),
				domainerrors.ErrUserNotFound.Message(),
			)
		}
		h.logger.Error("get reward points failed", slog.String("error", err.Error()))

		return response.InternalServerError(c, "REWARD_POINTS_FAILED", "reward points could not be read")
	}

	points, err := h.tourUC.GetCumulativeRewardPoints(c.Request().Context(), user)
	if err != nil {
		h.logger.Error("get reward points failed", slog.String("error", err.Error()))

		return response.InternalServerError(c, "REWARD_POINTS_FAILED", "reward points could not be read")
	}

	return response.Success(c, http.StatusOK, map[string]int{"cumulativeRewardPoints": points}, "Reward points retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
