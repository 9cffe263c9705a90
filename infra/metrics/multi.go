package metrics

import (
	coremetrics "github.com/mfeldner/gridrewind/core/metrics"
	"github.com/mfeldner/gridrewind/core/model"
)

// MultiSink fans run results out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards to all sinks, returning the first error encountered.
func (m *MultiSink) RecordRun(stats coremetrics.RunStats) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(stats); err != nil {
			return err
		}
	}
	return nil
}

// RecordCapacity forwards to all sinks, returning the first error encountered.
func (m *MultiSink) RecordCapacity(scenario string, records []model.CapacityYearRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordCapacity(scenario, records); err != nil {
			return err
		}
	}
	return nil
}

// RecordEmissions forwards to all sinks, returning the first error encountered.
func (m *MultiSink) RecordEmissions(scenario string, records []model.EmissionsYearRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordEmissions(scenario, records); err != nil {
			return err
		}
	}
	return nil
}
