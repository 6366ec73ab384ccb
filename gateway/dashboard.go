package gateway

import (
	"github.com/andyle182810/cinemadash/cinema"
	"github.com/andyle182810/cinemadash/dashboard"
	"github.com/andyle182810/cinemadash/httpserver"
	"github.com/labstack/echo/v5"
	"github.com/rs/zerolog"
)

type LimitRequest struct {
	Limit int `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
}

type StatisticsRequest struct{}

type LanguagesRequest struct{}

func (h *Handler) Dashboard(ctx *echo.Context, req *LimitRequest) (any, *echo.HTTPError) {
	delegator := func(
		log zerolog.Logger,
		ctx *echo.Context,
		req *LimitRequest,
	) (*httpserver.HandlerResponse[dashboard.Snapshot], *echo.HTTPError) {
		snapshot, err := h.dashboard.Snapshot(ctx.Request().Context(), analyticsLimit(req.Limit))
		if err != nil {
			return nil, httpserver.BackendError(err)
		}

		log.Info().
			Int("movies", snapshot.Statistics.TotalMovies).
			Int("languages", len(snapshot.Languages)).
			Msg("Dashboard snapshot loaded")

		return &httpserver.HandlerResponse[dashboard.Snapshot]{
			Data:       snapshot,
			Pagination: nil,
		}, nil
	}

	return httpserver.ExecuteStandardized(ctx, req, "Dashboard", delegator)
}

func (h *Handler) Statistics(ctx *echo.Context, req *StatisticsRequest) (any, *echo.HTTPError) {
	delegator := func(
		_ zerolog.Logger,
		ctx *echo.Context,
		_ *StatisticsRequest,
	) (*httpserver.HandlerResponse[dashboard.Statistics], *echo.HTTPError) {
		stats, err := h.dashboard.Statistics(ctx.Request().Context())
		if err != nil {
			return nil, httpserver.BackendError(err)
		}

		return &httpserver.HandlerResponse[dashboard.Statistics]{
			Data:       stats,
			Pagination: nil,
		}, nil
	}

	return httpserver.ExecuteStandardized(ctx, req, "Statistics", delegator)
}

func (h *Handler) TopMovies(ctx *echo.Context, req *LimitRequest) (any, *echo.HTTPError) {
	delegator := func(
		_ zerolog.Logger,
		ctx *echo.Context,
		req *LimitRequest,
	) (*httpserver.HandlerResponse[[]cinema.TopMovie], *echo.HTTPError) {
		limit := analyticsLimit(req.Limit)

		movies, err := h.cinema.TopMovies(ctx.Request().Context(), limit)
		if err != nil {
			return nil, httpserver.BackendError(err)
		}

		return &httpserver.HandlerResponse[[]cinema.TopMovie]{
			Data:       movies,
			Pagination: httpserver.NewPagination(0, limit, len(movies)),
		}, nil
	}

	return httpserver.ExecuteStandardized(ctx, req, "TopMovies", delegator)
}

func (h *Handler) ProfitAnalysis(ctx *echo.Context, req *LimitRequest) (any, *echo.HTTPError) {
	delegator := func(
		_ zerolog.Logger,
		ctx *echo.Context,
		req *LimitRequest,
	) (*httpserver.HandlerResponse[[]cinema.ProfitRow], *echo.HTTPError) {
		limit := analyticsLimit(req.Limit)

		rows, err := h.cinema.ProfitAnalysis(ctx.Request().Context(), limit)
		if err != nil {
			return nil, httpserver.BackendError(err)
		}

		return &httpserver.HandlerResponse[[]cinema.ProfitRow]{
			Data:       rows,
			Pagination: httpserver.NewPagination(0, limit, len(rows)),
		}, nil
	}

	return httpserver.ExecuteStandardized(ctx, req, "ProfitAnalysis", delegator)
}

func (h *Handler) LanguageCollection(ctx *echo.Context, req *LanguagesRequest) (any, *echo.HTTPError) {
	delegator := func(
		_ zerolog.Logger,
		ctx *echo.Context,
		_ *LanguagesRequest,
	) (*httpserver.HandlerResponse[[]dashboard.LanguageShare], *echo.HTTPError) {
		shares, err := h.dashboard.LanguageCollection(ctx.Request().Context())
		if err != nil {
			return nil, httpserver.BackendError(err)
		}

		return &httpserver.HandlerResponse[[]dashboard.LanguageShare]{
			Data:       shares,
			Pagination: nil,
		}, nil
	}

	return httpserver.ExecuteStandardized(ctx, req, "LanguageCollection", delegator)
}
