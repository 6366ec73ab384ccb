// Package gateway exposes the dashboard's read views over HTTP. Every route
// answers with the httpserver.APIResponse envelope; backend failures keep the
// backend's status and message.
package gateway

import (
	"context"

	"github.com/andyle182810/cinemadash/cinema"
	"github.com/andyle182810/cinemadash/dashboard"
	"github.com/andyle182810/cinemadash/httpserver"
	"github.com/andyle182810/cinemadash/middleware"
	"github.com/labstack/echo/v5"
	echomiddleware "github.com/labstack/echo/v5/middleware"
)

const DefaultAnalyticsLimit = cinema.DefaultAnalyticsLimit

// Cinema is the part of the cinema client the list routes read from.
type Cinema interface {
	Movies(ctx context.Context, filter cinema.MovieFilter) ([]cinema.Movie, error)
	Actors(ctx context.Context, filter cinema.ActorFilter) ([]cinema.Actor, error)
	Crew(ctx context.Context, filter cinema.CrewFilter) ([]cinema.CrewMember, error)
	TopMovies(ctx context.Context, limit int) ([]cinema.TopMovie, error)
	ProfitAnalysis(ctx context.Context, limit int) ([]cinema.ProfitRow, error)
}

var _ Cinema = (*cinema.Client)(nil)

type Handler struct {
	cinema    Cinema
	dashboard *dashboard.Service
}

func New(client Cinema, dash *dashboard.Service) *Handler {
	return &Handler{
		cinema:    client,
		dashboard: dash,
	}
}

// Register mounts /health on root and the read API under /v1.
func (h *Handler) Register(root *echo.Group, requestIDSkipper echomiddleware.Skipper) {
	root.GET("/health", httpserver.Wrapper(h.CheckHealth))

	v1 := root.Group("/v1")
	v1.Use(middleware.RequestID(requestIDSkipper))

	v1.GET("/dashboard", httpserver.Wrapper(h.Dashboard))
	v1.GET("/dashboard/statistics", httpserver.Wrapper(h.Statistics))

	v1.GET("/analytics/top-movies", httpserver.Wrapper(h.TopMovies))
	v1.GET("/analytics/profit-analysis", httpserver.Wrapper(h.ProfitAnalysis))
	v1.GET("/analytics/languages", httpserver.Wrapper(h.LanguageCollection))

	v1.GET("/movies", httpserver.Wrapper(h.ListMovies))
	v1.GET("/movies/:movieId/overview", httpserver.Wrapper(h.MovieOverview))

	v1.GET("/actors", httpserver.Wrapper(h.ListActors))
	v1.GET("/crew", httpserver.Wrapper(h.ListCrew))
}

func analyticsLimit(limit int) int {
	if limit <= 0 {
		return DefaultAnalyticsLimit
	}

	return limit
}
