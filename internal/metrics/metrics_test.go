package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logident/logident/internal/metrics"
)

func TestNewRegistersAllInstruments(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.LinesProcessed.Add(3)
	m.FindingsEmitted.WithLabelValues("ip").Inc()
	m.IdentitiesFormed.Inc()
	m.ResolvePassSecs.Observe(0.5)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNoopDoesNotPanic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		metrics.Noop().LinesProcessed.Inc()
	})
}
