package testutil

import (
	"context"
	"testing"
	"time"
)

const defaultTimeout = 10 * time.Second

// ContextWithTimeout bounds a test that talks to a fake backend so a hung
// call fails the test instead of stalling the run.
func ContextWithTimeout(t *testing.T) context.Context {
	t.Helper()

	return ContextWithCustomTimeout(t, defaultTimeout)
}

func ContextWithCustomTimeout(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), timeout)
	t.Cleanup(cancel)

	return ctx
}
