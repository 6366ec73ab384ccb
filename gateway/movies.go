package gateway

import (
	"net/http"

	"github.com/andyle182810/cinemadash/cinema"
	"github.com/andyle182810/cinemadash/dashboard"
	"github.com/andyle182810/cinemadash/form"
	"github.com/andyle182810/cinemadash/httpserver"
	"github.com/andyle182810/cinemadash/pagination"
	"github.com/labstack/echo/v5"
	"github.com/rs/zerolog"
)

// ListMoviesRequest keeps every filter as raw text. Unparseable numbers are
// treated as absent, matching how the dashboard forms behave.
type ListMoviesRequest struct {
	Title      string `json:"title"      query:"title"`
	LanguageID string `json:"languageId" query:"language_id"`
	ProducerID string `json:"producerId" query:"producer_id"`
	Skip       string `json:"skip"       query:"skip"`
	Limit      string `json:"limit"      query:"limit"`
}

type MovieOverviewRequest struct {
	MovieID string `json:"movieId" param:"movieId"`
}

func (h *Handler) ListMovies(ctx *echo.Context, req *ListMoviesRequest) (any, *echo.HTTPError) {
	delegator := func(
		log zerolog.Logger,
		ctx *echo.Context,
		req *ListMoviesRequest,
	) (*httpserver.HandlerResponse[[]cinema.Movie], *echo.HTTPError) {
		filter := cinema.MovieFilter{
			Title:      req.Title,
			LanguageID: form.Int64(req.LanguageID),
			ProducerID: form.Int64(req.ProducerID),
			Skip:       form.Int(req.Skip),
			Limit:      form.Int(req.Limit),
		}

		skip, limit := pagination.Window(filter.Skip, filter.Limit)

		movies, err := h.cinema.Movies(ctx.Request().Context(), filter)
		if err != nil {
			return nil, httpserver.BackendError(err)
		}

		log.Debug().Int("count", len(movies)).Int("skip", skip).Int("limit", limit).Msg("Movies listed")

		return &httpserver.HandlerResponse[[]cinema.Movie]{
			Data:       movies,
			Pagination: httpserver.NewPagination(skip, limit, len(movies)),
		}, nil
	}

	return httpserver.ExecuteStandardized(ctx, req, "ListMovies", delegator)
}

func (h *Handler) MovieOverview(ctx *echo.Context, req *MovieOverviewRequest) (any, *echo.HTTPError) {
	delegator := func(
		log zerolog.Logger,
		ctx *echo.Context,
		req *MovieOverviewRequest,
	) (*httpserver.HandlerResponse[dashboard.MovieOverview], *echo.HTTPError) {
		movieID, err := form.RequireInt64("movieId", req.MovieID)
		if err != nil {
			return nil, httpserver.HTTPError(http.StatusBadRequest, err, "Invalid movie id")
		}

		overview, err := h.dashboard.MovieOverview(ctx.Request().Context(), movieID)
		if err != nil {
			return nil, httpserver.BackendError(err)
		}

		log.Debug().Int64("movie_id", movieID).Str("tier", string(overview.Tier)).Msg("Movie overview loaded")

		return &httpserver.HandlerResponse[dashboard.MovieOverview]{
			Data:       overview,
			Pagination: nil,
		}, nil
	}

	return httpserver.ExecuteStandardized(ctx, req, "MovieOverview", delegator)
}
