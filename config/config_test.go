package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `inputs:
  plants: data/plants.csv
  fossil_builds: data/builds.csv
  generation: data/generation.csv
simulation:
  start_year: 1989
  end_year: 2025
metrics:
  prometheus_enabled: true
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "data/plants.csv", cfg.Inputs.Plants)
	assert.Equal(t, "Germany", cfg.Inputs.GenerationEntity)
	assert.Equal(t, 1989, cfg.Simulation.StartYear)
	assert.Equal(t, 2025, cfg.Simulation.EndYear)
	assert.Equal(t, []float64{1410}, cfg.Simulation.UnitCapacitiesMW)
	assert.True(t, cfg.Metrics.PrometheusEnabled)
	assert.Equal(t, ":9090", cfg.Metrics.PrometheusAddr)

	// Defaults: emissions baseline tracks the simulation start year.
	assert.Equal(t, 1989, cfg.Emissions.BaselineYear)
	assert.Equal(t, 1998, cfg.Emissions.RenewableFreezeYear)
	assert.InDelta(t, 0.9, cfg.Emissions.NuclearCapacityFactor, 1e-9)

	require.Len(t, cfg.Output.Paths, 2)
	assert.Equal(t, filepath.Join("data", "scenario_data.json"), cfg.Output.Paths[0])
}

func TestLoadJSON(t *testing.T) {
	content := `{"inputs":{"plants":"p.csv","fossil_builds":"b.csv","generation":"g.csv"}}`
	cfg, err := Load(writeConfig(t, "config.json", content))
	require.NoError(t, err)
	assert.Equal(t, "p.csv", cfg.Inputs.Plants)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(writeConfig(t, "config.toml", "inputs = 1"))
	assert.Error(t, err)
}

func TestLoadMissingInputs(t *testing.T) {
	_, err := Load(writeConfig(t, "config.yaml", "inputs:\n  plants: only.csv\n"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GR_INPUTS__PLANTS", "env/plants.csv")
	cfg, err := Load(writeConfig(t, "config.yaml", sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "env/plants.csv", cfg.Inputs.Plants)
}

func TestValidateRejectsEmptyOutputPath(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	cfg.Inputs.Plants = "p.csv"
	cfg.Inputs.FossilBuilds = "b.csv"
	cfg.Inputs.Generation = "g.csv"
	cfg.Output.Paths = []string{" "}
	assert.Error(t, cfg.Validate())
}
