// Package router registers the API routes on the echo instance.
package router

import (
	"marquee/internal/delivery/api/middleware"
	"marquee/internal/delivery/api/router/handler"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	MovieHandler        *handler.MovieHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Metrics             *metrics.Metrics
}

type Router struct {
	authHandler    *handler.AuthHandler
	movieHandler   *handler.MovieHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware
	metrics        *metrics.Metrics
}

func NewRouter(params RouterParams) *Router {
	return &Router{
		authHandler:    params.AuthHandler,
		movieHandler:   params.MovieHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimit:      params.RateLimitMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up every route under /api plus /metrics.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	api := e.Group("/api")

	api.GET("/health", r.healthHandler.Check)

	// Account routes are throttled per client IP; route middleware keeps the limiter off the rest of /api.
	api.POST("/signup", r.authHandler.Signup, r.rateLimit.Limit)
	api.POST("/login", r.authHandler.Login, r.rateLimit.Limit)
	api.POST("/forgot-password", r.authHandler.ForgotPassword, r.rateLimit.Limit)
	api.POST("/reset-password", r.authHandler.ResetPassword, r.rateLimit.Limit)
	api.POST("/google-login", r.authHandler.GoogleLogin, r.rateLimit.Limit)

	api.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)

	api.GET("/trending", r.movieHandler.Trending)
	api.GET("/popular", r.movieHandler.Popular)
	api.GET("/search", r.movieHandler.Search)
	api.GET("/movie/:id", r.movieHandler.Details)
	api.GET("/movies/genre/:id", r.movieHandler.ByGenre)
	api.GET("/tv-shows", r.movieHandler.TVShows)
	api.GET("/movies", r.movieHandler.TopRated)

	notFound := func(echo.Context) error { return domainerrors.ErrNotFound }
	api.RouteNotFound("", notFound)
	api.RouteNotFound("/*", notFound)
}
