package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/mfeldner/gridrewind/core/metrics"
	"github.com/mfeldner/gridrewind/core/model"
	"github.com/mfeldner/gridrewind/infra/logger"
)

// InfluxSink writes run summaries and yearly scenario points to an InfluxDB
// instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns
// a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.Sink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordRun writes the run summary as a single point.
func (s *InfluxSink) RecordRun(stats coremetrics.RunStats) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("scenario_run").
		AddTag("run_id", stats.RunID).
		AddField("start_year", stats.StartYear).
		AddField("end_year", stats.EndYear).
		AddField("units_built", stats.UnitsBuilt).
		AddField("plants_retired", stats.PlantsRetired).
		AddField("residual_mw", stats.ResidualMW).
		AddField("final_nuclear_mw", stats.FinalNuclearMW).
		AddField("final_fossil_mw", stats.FinalFossilMW).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordCapacity writes one point per simulated year.
func (s *InfluxSink) RecordCapacity(scenario string, records []model.CapacityYearRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, r := range records {
		p := write.NewPointWithMeasurement("scenario_capacity").
			AddTag("scenario", scenario).
			AddField("year", r.Year).
			AddField("nuclear_mw", r.NuclearMW).
			AddField("fossil_mw", r.FossilMW).
			AddField("other_mw", r.OtherMW).
			AddField("total_mw", r.TotalMW).
			SetTime(time.Date(r.Year, time.July, 1, 0, 0, 0, 0, time.UTC))
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordEmissions writes one point per simulated year.
func (s *InfluxSink) RecordEmissions(scenario string, records []model.EmissionsYearRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, r := range records {
		p := write.NewPointWithMeasurement("scenario_emissions").
			AddTag("scenario", scenario).
			AddField("year", r.Year).
			AddField("fossil_twh", r.FossilTWh).
			AddField("nuclear_twh", r.NuclearTWh).
			AddField("renewables_twh", r.RenewablesTWh).
			AddField("total_twh", r.TotalTWh).
			AddField("co2_mt", r.CO2Mt).
			SetTime(time.Date(r.Year, time.July, 1, 0, 0, 0, 0, time.UTC))
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }
