package probe_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/andyle182810/cinemadash/httpclient"
	"github.com/andyle182810/cinemadash/probe"
	"github.com/andyle182810/cinemadash/testutil"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestProber_StatusBeforeFirstRound(t *testing.T) {
	t.Parallel()

	prober := probe.New(httpclient.NewRegistry(), probe.WithLogger(zerolog.Nop()))

	_, ok := prober.Last()
	require.False(t, ok)

	_, err := prober.Status()
	require.ErrorIs(t, err, probe.ErrNotProbed)
}

func TestProber_HealthyAndFailingBackends(t *testing.T) {
	t.Parallel()

	healthy := testutil.NewBackend(t).JSON(http.MethodGet, "/health", http.StatusOK, `{"status":"ok"}`)
	failing := testutil.NewBackend(t).JSON(http.MethodGet, "/health", http.StatusServiceUnavailable, `{"detail":"db down"}`)

	registry := httpclient.NewRegistry(httpclient.WithLogger(zerolog.Nop()))
	registry.Register("cinema", healthy.URL(), "/health")
	registry.Register("reports", failing.URL(), "/health")

	metrics := prometheus.NewRegistry()
	prober := probe.New(registry,
		probe.WithLogger(zerolog.Nop()),
		probe.WithRegisterer("cinemadash", metrics),
	)

	err := prober.Execute(t.Context())
	require.EqualError(t, err, "reports: db down")

	result, ok := prober.Last()
	require.True(t, ok)
	require.False(t, result.Healthy())
	require.Len(t, result.Failures, 1)
	require.Equal(t, http.StatusServiceUnavailable, httpclient.StatusCode(result.Failures["reports"]))

	details, err := prober.Status()
	require.Error(t, err)
	require.Equal(t, []string{"cinema", "reports"}, details["backends"])
	require.NotEmpty(t, details["checkedAt"])

	count, err := promtestutil.GatherAndCount(metrics, "cinemadash_backend_up")
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, 1, healthy.Count(http.MethodGet, "/health"))
}

func TestProber_AllHealthy(t *testing.T) {
	t.Parallel()

	backend := testutil.NewBackend(t).Text(http.MethodGet, "/health", http.StatusOK, "")

	registry := httpclient.NewRegistry(httpclient.WithLogger(zerolog.Nop()))
	registry.Register("cinema", backend.URL(), "/health")

	prober := probe.New(registry, probe.WithLogger(zerolog.Nop()))

	require.NoError(t, prober.Execute(t.Context()))

	details, err := prober.Status()
	require.NoError(t, err)
	require.Equal(t, []string{"cinema"}, details["backends"])
}

func TestProber_RegistrationWarningUsesInjectedLogger(t *testing.T) {
	t.Parallel()

	metrics := prometheus.NewRegistry()
	registry := httpclient.NewRegistry(httpclient.WithLogger(zerolog.Nop()))

	probe.New(registry, probe.WithLogger(zerolog.Nop()), probe.WithRegisterer("cinemadash", metrics))

	var buf bytes.Buffer

	prober := probe.New(registry,
		probe.WithRegisterer("cinemadash", metrics),
		probe.WithLogger(zerolog.New(&buf)),
	)

	require.NotNil(t, prober)
	require.Contains(t, buf.String(), "Backend probe gauge not registered")
}
