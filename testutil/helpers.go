package testutil

import (
	"testing"
	"time"
)

func Eventually(t *testing.T, condition func() bool, timeout time.Duration, interval time.Duration) {
	t.Helper()

	EventuallyWithMessage(t, condition, timeout, interval, "")
}

func EventuallyWithMessage(t *testing.T, condition func() bool, timeout time.Duration, interval time.Duration, message string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}

		time.Sleep(interval)
	}

	t.Fatalf("Condition not met within timeout: %s", message)
}
