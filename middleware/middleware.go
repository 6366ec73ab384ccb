package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
)

const (
	ContextKeyRequestID string = "requestID"
	ContextKeyBody      string = "body"
	ContextKeyHandler   string = "handler"
)

const (
	HeaderXRequestID = "X-Request-ID"
)

type requestIDContextKey struct{}

// RequestIDKey is the context.Context key under which RequestID stores the
// request id. Hand it to httpclient.WithRequestIDKey so outbound backend calls
// carry the same id as the inbound request.
var RequestIDKey any = requestIDContextKey{} //nolint:gochecknoglobals

func GetRequestID(c *echo.Context) string {
	if requestID, ok := c.Get(ContextKeyRequestID).(string); ok {
		return requestID
	}

	return uuid.NewString()
}

func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}

	return ""
}

func GetHandler(c *echo.Context) string {
	if handler, ok := c.Get(ContextKeyHandler).(string); ok {
		return handler
	}

	return ""
}
