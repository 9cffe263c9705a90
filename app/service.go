package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mfeldner/gridrewind/config"
	"github.com/mfeldner/gridrewind/core/emissions"
	"github.com/mfeldner/gridrewind/core/history"
	"github.com/mfeldner/gridrewind/core/ledger"
	coremetrics "github.com/mfeldner/gridrewind/core/metrics"
	"github.com/mfeldner/gridrewind/core/model"
	"github.com/mfeldner/gridrewind/core/sim"
	"github.com/mfeldner/gridrewind/infra/loader"
	"github.com/mfeldner/gridrewind/infra/logger"
	"github.com/mfeldner/gridrewind/infra/metrics"
	"github.com/mfeldner/gridrewind/pkg/export"
)

// methodologyNotes document the model's simplifications in the output.
var methodologyNotes = []string{
	"Nuclear unit capacities cycle through 1980s German reactor sizes.",
	"Fossil closures prioritise the oldest non-CHP plants still online each year.",
	"Historical generation uses Our World in Data's electricity-production-by-source dataset.",
	"Emission factors are approximate tonnes CO2 per MWh for each fuel group.",
}

// Service assembles the full dataset: load, simulate, project, export.
type Service struct {
	cfg  *config.Config
	log  logger.Logger
	sink coremetrics.Sink
}

// New creates a Service from the configuration, wiring the configured metric
// sinks.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket)
		sinks = append(sinks, sink)
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	return &Service{cfg: cfg, log: logg, sink: sink}, nil
}

// Run executes one deterministic pass and writes the dataset document.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	dataset, err := s.Build()
	if err != nil {
		return err
	}
	if err := export.WriteFiles(dataset, s.cfg.Output.Paths...); err != nil {
		return fmt.Errorf("export dataset: %w", err)
	}
	for _, path := range s.cfg.Output.Paths {
		s.log.Infof("wrote %s", path)
	}
	return nil
}

// Build assembles the dataset in memory without writing it.
func (s *Service) Build() (*export.Dataset, error) {
	cfg := s.cfg
	startYear := cfg.Simulation.StartYear
	endYear := cfg.Simulation.EndYear

	plants, err := loader.LoadPlants(cfg.Inputs.Plants)
	if err != nil {
		return nil, fmt.Errorf("load plants: %w", err)
	}
	builds, err := loader.LoadFossilBuilds(cfg.Inputs.FossilBuilds)
	if err != nil {
		return nil, fmt.Errorf("load fossil builds: %w", err)
	}
	generation, err := loader.LoadGeneration(cfg.Inputs.Generation, cfg.Inputs.GenerationEntity)
	if err != nil {
		return nil, fmt.Errorf("load generation: %w", err)
	}
	plannedSites, err := loader.LoadPlannedSites(cfg.Inputs.PlannedSites, plants)
	if err != nil {
		return nil, fmt.Errorf("load planned sites: %w", err)
	}
	s.log.Infof("loaded %d plants, %d fossil builds, %d generation years, %d planned sites",
		len(plants), len(builds), len(generation), len(plannedSites))

	actual := ledger.CapacitySeries(plants, startYear, endYear)
	actual = history.ApplyFossilBuilds(actual, builds, startYear, endYear)

	simulator := sim.New(cfg.Simulation, plants, plannedSites, s.log)
	result := simulator.Run(actual)

	historicalEvents := history.Events(builds, plants, startYear, endYear)

	extended := emissions.Extend(generation, startYear, endYear)
	projection := emissions.Project(cfg.Emissions, extended, actual, result.Capacity)

	stats := coremetrics.RunStats{
		RunID:         uuid.NewString(),
		StartYear:     startYear,
		EndYear:       endYear,
		UnitsBuilt:    result.UnitsBuilt,
		PlantsRetired: result.Closed.Len(),
		ResidualMW:    result.ResidualMW,
	}
	if n := len(result.Capacity); n > 0 {
		stats.FinalNuclearMW = result.Capacity[n-1].NuclearMW
		stats.FinalFossilMW = result.Capacity[n-1].FossilMW
	}
	s.record(stats, actual, result, projection)

	dataset := &export.Dataset{
		Historical: export.ScenarioData{
			CapacityTimeseries: actual,
			Events:             historicalEvents,
			Emissions:          projection.Historical,
		},
		Counterfactual: export.ScenarioData{
			CapacityTimeseries: result.Capacity,
			Events:             result.Events,
			Emissions:          projection.Counterfactual,
		},
		Metadata: export.Metadata{
			RunID:                 stats.RunID,
			GeneratedAt:           time.Now().UTC().Format(time.RFC3339),
			StartYear:             startYear,
			EndYear:               endYear,
			Notes:                 methodologyNotes,
			SiteBaselines:         sim.SiteBaselines(plants, startYear),
			MunicipalityBaselines: sim.MunicipalityBaselines(plants, startYear),
		},
	}
	return dataset, nil
}

// record pushes run results to the metric sinks; sink failures are logged,
// never fatal.
func (s *Service) record(stats coremetrics.RunStats, actual []model.CapacityYearRecord, result sim.Result, projection emissions.Projection) {
	if err := s.sink.RecordRun(stats); err != nil {
		s.log.Errorf("record run: %v", err)
	}
	if err := s.sink.RecordCapacity("historical", actual); err != nil {
		s.log.Errorf("record capacity: %v", err)
	}
	if err := s.sink.RecordCapacity("counterfactual", result.Capacity); err != nil {
		s.log.Errorf("record capacity: %v", err)
	}
	if err := s.sink.RecordEmissions("historical", projection.Historical); err != nil {
		s.log.Errorf("record emissions: %v", err)
	}
	if err := s.sink.RecordEmissions("counterfactual", projection.Counterfactual); err != nil {
		s.log.Errorf("record emissions: %v", err)
	}
}
