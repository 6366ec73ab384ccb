package gateway

import (
	"github.com/andyle182810/cinemadash/httpserver"
	"github.com/labstack/echo/v5"
	"github.com/rs/zerolog"
)

type HealthCheckRequest struct{}

type HealthCheckResponse struct {
	Status string `example:"healthy" json:"status"`
}

func (h *Handler) CheckHealth(ctx *echo.Context, req *HealthCheckRequest) (any, *echo.HTTPError) {
	delegator := func(
		log zerolog.Logger,
		_ *echo.Context,
		_ *HealthCheckRequest,
	) (*httpserver.HandlerResponse[HealthCheckResponse], *echo.HTTPError) {
		log.Debug().Msg("Health check requested")

		return &httpserver.HandlerResponse[HealthCheckResponse]{
			Data: HealthCheckResponse{
				Status: "healthy",
			},
			Pagination: nil,
		}, nil
	}

	return httpserver.ExecuteStandardized(ctx, req, "CheckHealth", delegator)
}
