// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tourguide/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TourHandler    *handler.TourHandler
	UserHandler    *handler.UserHandler
	TrackerHandler *handler.TrackerHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	tourHandler    *handler.TourHandler
	userHandler    *handler.UserHandler
	trackerHandler *handler.TrackerHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tourHandler:    params.TourHandler,
		userHandler:    params.UserHandler,
		trackerHandler: params.TrackerHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Tour routes, all keyed on ?userName=
	e.GET("/location", r.tourHandler.GetLocation)
	e.GET("/rewards", r.tourHandler.GetRewards)
	e.GET("/nearby-attractions", r.tourHandler.GetNearbyAttractions)
	e.GET("/trip-deals", r.tourHandler.GetTripDeals)

	// User routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.RegisterUser)
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.POST("/:userName/track", r.tourHandler.TrackUser)
		userGroup.GET("/:userName/reward-points", r.userHandler.GetRewardPoints)
	}

	// Tracker lifecycle routes
	trackerGroup := e.Group("/tracker")
	{
		trackerGroup.GET("", r.trackerHandler.Status)
		trackerGroup.POST("/start", r.trackerHandler.Start)
		trackerGroup.POST("/stop", r.trackerHandler.Stop)
	}
}
