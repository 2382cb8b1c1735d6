package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRunCountsByStatus(t *testing.T) {
	before := testutil.ToFloat64(PipelineRunsTotal.WithLabelValues("empty"))

	ObserveRun("empty", time.Now())
	ObserveRun("empty", time.Now())

	assert.Equal(t, before+2, testutil.ToFloat64(PipelineRunsTotal.WithLabelValues("empty")))
}

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, Register)
	assert.NotPanics(t, Register)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["pressmonitor_pipeline_duration_seconds"])
}
