package httpserver

import (
	"github.com/andyle182810/cinemadash/middleware"
	"github.com/labstack/echo/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type HandlerFunc[REQ any, RES any] func(
	log zerolog.Logger,
	c *echo.Context,
	request *REQ,
) (*HandlerResponse[RES], *echo.HTTPError)

// ExecuteStandardized runs delegate with a logger scoped to the handler and
// the request id, and wraps its result in the APIResponse envelope.
func ExecuteStandardized[REQ any, RES any](
	c *echo.Context,
	request *REQ,
	handlerName string,
	delegate HandlerFunc[REQ, RES],
) (any, *echo.HTTPError) {
	requestID, ok := c.Get(middleware.ContextKeyRequestID).(string)
	if !ok {
		requestID = ""
	}

	c.Set(middleware.ContextKeyHandler, handlerName)

	logger := log.With().
		Str("handler", handlerName).
		Str("request_id", requestID).
		Logger()

	internalResponse, delegateError := delegate(logger, c, request)
	if delegateError != nil {
		logger.Error().
			Int("status", delegateError.Code).
			Err(delegateError.Unwrap()).
			Msgf("Request failed with HTTP error: %s", delegateError.Message)

		return nil, delegateError
	}

	return &APIResponse[RES]{
		RequestID:  requestID,
		Data:       internalResponse.Data,
		Pagination: internalResponse.Pagination,
	}, nil
}
