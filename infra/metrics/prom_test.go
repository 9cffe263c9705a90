package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/mfeldner/gridrewind/core/metrics"
	"github.com/mfeldner/gridrewind/core/model"
)

func TestPromSinkRecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	require.NoError(t, err)

	stats := coremetrics.RunStats{
		RunID:          "run-1",
		UnitsBuilt:     55,
		PlantsRetired:  40,
		ResidualMW:     1234.5,
		FinalNuclearMW: 80000,
		FinalFossilMW:  2000,
	}
	require.NoError(t, sink.RecordRun(stats))

	assert.Equal(t, 55.0, testutil.ToFloat64(sink.unitsBuilt))
	assert.Equal(t, 40.0, testutil.ToFloat64(sink.plantsRetired))
	assert.Equal(t, 1234.5, testutil.ToFloat64(sink.residualMW))
	assert.Equal(t, 80000.0, testutil.ToFloat64(sink.finalCapacity.WithLabelValues("nuclear")))
	assert.Equal(t, 2000.0, testutil.ToFloat64(sink.finalCapacity.WithLabelValues("fossil")))
}

func TestPromSinkRecordSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	require.NoError(t, err)

	caps := []model.CapacityYearRecord{{Year: 2000}, {Year: 2001}}
	require.NoError(t, sink.RecordCapacity("counterfactual", caps))
	ems := []model.EmissionsYearRecord{{Year: 2000}}
	require.NoError(t, sink.RecordEmissions("counterfactual", ems))

	assert.Equal(t, 2.0, testutil.ToFloat64(sink.yearlyRecords.WithLabelValues("counterfactual", "capacity")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.yearlyRecords.WithLabelValues("counterfactual", "emissions")))
}

func TestPromSinkReregistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSink(reg)
	require.NoError(t, err)
	second, err := NewPromSink(reg)
	require.NoError(t, err)

	require.NoError(t, first.RecordRun(coremetrics.RunStats{UnitsBuilt: 7}))
	// Both sinks share the registered collectors.
	assert.Equal(t, 7.0, testutil.ToFloat64(second.unitsBuilt))
}
