package httpclient_test

import (
	"context"
	"testing"
)

func contextWithValue(ctx context.Context, key, value any) context.Context {
	return context.WithValue(ctx, key, value)
}

func contextWithCancel(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()

	return context.WithCancel(t.Context())
}
