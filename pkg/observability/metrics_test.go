package observability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Outcomes(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	hooks := metrics.Hooks()
	require.NotNil(t, hooks.OnRouted)

	ctx := context.Background()
	hooks.OnRouted(ctx, &domain.RouteEvent{
		Intent:   "LAUNCH",
		Route:    &domain.Route{Path: []string{"root"}, HandlerKey: "Welcome"},
		Duration: 5 * time.Millisecond,
	})
	hooks.OnRouted(ctx, &domain.RouteEvent{Intent: "UnknownIntent"})
	hooks.OnRouted(ctx, &domain.RouteEvent{Intent: "X", Err: errors.New("boom")})
	hooks.OnRouted(ctx, &domain.RouteEvent{Intent: "UnknownIntent"})

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	count := func(outcome string) float64 {
		counter, err := metrics.Resolutions().GetMetricWithLabelValues(outcome)
		require.NoError(t, err)
		return testutil.ToFloat64(counter)
	}
	assert.Equal(t, 1.0, count(observability.OutcomeMatched))
	assert.Equal(t, 2.0, count(observability.OutcomeNoMatch))
	assert.Equal(t, 1.0, count(observability.OutcomeError))
}
