package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/mfeldner/gridrewind/core/metrics"
	"github.com/mfeldner/gridrewind/core/model"
)

// PromSink exposes run results as Prometheus metrics.
type PromSink struct {
	unitsBuilt    prometheus.Gauge
	plantsRetired prometheus.Gauge
	residualMW    prometheus.Gauge
	finalCapacity *prometheus.GaugeVec
	yearlyRecords *prometheus.CounterVec
}

// NewPromSink registers run metrics on the provided Prometheus registerer.
// If reg is nil, the default registerer is used. If the collectors are
// already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		unitsBuilt: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scenario_units_built",
			Help: "Nuclear units commissioned by the counterfactual run",
		}),
		plantsRetired: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scenario_plants_retired",
			Help: "Fossil plants retired by the counterfactual run",
		}),
		residualMW: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scenario_residual_closure_mw",
			Help: "Fossil capacity retired without a concrete plant",
		}),
		finalCapacity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scenario_final_capacity_mw",
			Help: "End-year capacity per fuel bucket",
		}, []string{"bucket"}),
		yearlyRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scenario_records_total",
			Help: "Yearly records produced per scenario and series",
		}, []string{"scenario", "series"}),
	}

	collectors := []prometheus.Collector{
		s.unitsBuilt, s.plantsRetired, s.residualMW, s.finalCapacity, s.yearlyRecords,
	}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			collectors[i] = are.ExistingCollector
		}
	}
	s.unitsBuilt = collectors[0].(prometheus.Gauge)
	s.plantsRetired = collectors[1].(prometheus.Gauge)
	s.residualMW = collectors[2].(prometheus.Gauge)
	s.finalCapacity = collectors[3].(*prometheus.GaugeVec)
	s.yearlyRecords = collectors[4].(*prometheus.CounterVec)
	return s, nil
}

// RecordRun sets the run summary gauges.
func (s *PromSink) RecordRun(stats coremetrics.RunStats) error {
	s.unitsBuilt.Set(float64(stats.UnitsBuilt))
	s.plantsRetired.Set(float64(stats.PlantsRetired))
	s.residualMW.Set(stats.ResidualMW)
	s.finalCapacity.WithLabelValues("nuclear").Set(stats.FinalNuclearMW)
	s.finalCapacity.WithLabelValues("fossil").Set(stats.FinalFossilMW)
	return nil
}

// RecordCapacity counts the produced capacity records.
func (s *PromSink) RecordCapacity(scenario string, records []model.CapacityYearRecord) error {
	s.yearlyRecords.WithLabelValues(scenario, "capacity").Add(float64(len(records)))
	return nil
}

// RecordEmissions counts the produced emissions records.
func (s *PromSink) RecordEmissions(scenario string, records []model.EmissionsYearRecord) error {
	s.yearlyRecords.WithLabelValues(scenario, "emissions").Add(float64(len(records)))
	return nil
}
