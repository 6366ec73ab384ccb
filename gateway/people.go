package gateway

import (
	"github.com/andyle182810/cinemadash/cinema"
	"github.com/andyle182810/cinemadash/form"
	"github.com/andyle182810/cinemadash/httpserver"
	"github.com/labstack/echo/v5"
	"github.com/rs/zerolog"
)

// Actors and crew are loaded in full and narrowed here, so the backend never
// sees the search text. Unknown gender or role values are ignored.

type ListActorsRequest struct {
	Name   string `json:"name"   query:"name"`
	Gender string `json:"gender" query:"gender"`
}

type ListCrewRequest struct {
	Name string `json:"name" query:"name"`
	Role string `json:"role" query:"role"`
}

func (h *Handler) ListActors(ctx *echo.Context, req *ListActorsRequest) (any, *echo.HTTPError) {
	delegator := func(
		_ zerolog.Logger,
		ctx *echo.Context,
		req *ListActorsRequest,
	) (*httpserver.HandlerResponse[[]cinema.Actor], *echo.HTTPError) {
		actors, err := h.cinema.Actors(ctx.Request().Context(), cinema.ActorFilter{})
		if err != nil {
			return nil, httpserver.BackendError(err)
		}

		filter := cinema.ActorFilter{Name: req.Name}
		if gender := form.OneOf(req.Gender, cinema.Strings(cinema.Genders())...); gender != nil {
			filter.Gender = cinema.Gender(*gender)
		}

		return &httpserver.HandlerResponse[[]cinema.Actor]{
			Data:       cinema.FilterActors(actors, filter),
			Pagination: nil,
		}, nil
	}

	return httpserver.ExecuteStandardized(ctx, req, "ListActors", delegator)
}

func (h *Handler) ListCrew(ctx *echo.Context, req *ListCrewRequest) (any, *echo.HTTPError) {
	delegator := func(
		_ zerolog.Logger,
		ctx *echo.Context,
		req *ListCrewRequest,
	) (*httpserver.HandlerResponse[[]cinema.CrewMember], *echo.HTTPError) {
		members, err := h.cinema.Crew(ctx.Request().Context(), cinema.CrewFilter{})
		if err != nil {
			return nil, httpserver.BackendError(err)
		}

		filter := cinema.CrewFilter{Name: req.Name}
		if role := form.OneOf(req.Role, cinema.Strings(cinema.CrewRoles())...); role != nil {
			filter.Role = cinema.CrewRole(*role)
		}

		return &httpserver.HandlerResponse[[]cinema.CrewMember]{
			Data:       cinema.FilterCrew(members, filter),
			Pagination: nil,
		}, nil
	}

	return httpserver.ExecuteStandardized(ctx, req, "ListCrew", delegator)
}
