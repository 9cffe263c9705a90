// Package metrics defines the sink interface used to expose run results for
// observability. Sinks like PromSink and InfluxSink record run summaries and
// yearly scenario points and can be combined with NewMultiSink.
package metrics

import "github.com/mfeldner/gridrewind/core/model"

// RunStats summarises one simulation run.
type RunStats struct {
	RunID          string
	StartYear      int
	EndYear        int
	UnitsBuilt     int
	PlantsRetired  int
	ResidualMW     float64
	FinalNuclearMW float64
	FinalFossilMW  float64
}

// Sink records run results for observability purposes.
type Sink interface {
	RecordRun(stats RunStats) error
	RecordCapacity(scenario string, records []model.CapacityYearRecord) error
	RecordEmissions(scenario string, records []model.EmissionsYearRecord) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunStats) error                                { return nil }
func (NopSink) RecordCapacity(string, []model.CapacityYearRecord) error { return nil }
func (NopSink) RecordEmissions(string, []model.EmissionsYearRecord) error {
	return nil
}

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":9090"
	}
}
