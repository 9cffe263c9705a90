package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mfeldner/gridrewind/core/emissions"
	"github.com/mfeldner/gridrewind/core/metrics"
	"github.com/mfeldner/gridrewind/core/sim"
)

// Config is the root configuration of a run.
type Config struct {
	Inputs     InputsConfig     `json:"inputs"`
	Output     OutputConfig     `json:"output"`
	Simulation sim.Config       `json:"simulation"`
	Emissions  emissions.Config `json:"emissions"`
	Metrics    metrics.Config   `json:"metrics"`
}

// InputsConfig names the data sources of a run.
type InputsConfig struct {
	// Plants is the plant registry CSV.
	Plants string `json:"plants"`
	// FossilBuilds is the fossil construction list CSV.
	FossilBuilds string `json:"fossil_builds"`
	// Generation is the per-source generation series CSV.
	Generation string `json:"generation"`
	// GenerationEntity selects the reference region in the generation file.
	GenerationEntity string `json:"generation_entity"`
	// PlannedSites is an optional ordered list of planned build sites.
	PlannedSites string `json:"planned_sites"`
}

// SetDefaults applies sane defaults.
func (c *InputsConfig) SetDefaults() {
	if c.GenerationEntity == "" {
		c.GenerationEntity = "Germany"
	}
}

// Validate checks mandatory fields.
func (c InputsConfig) Validate() error {
	if c.Plants == "" {
		return fmt.Errorf("inputs.plants is required")
	}
	if c.FossilBuilds == "" {
		return fmt.Errorf("inputs.fossil_builds is required")
	}
	if c.Generation == "" {
		return fmt.Errorf("inputs.generation is required")
	}
	return nil
}

// OutputConfig lists the destinations the dataset document is written to.
type OutputConfig struct {
	Paths []string `json:"paths"`
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if len(c.Paths) == 0 {
		c.Paths = []string{
			filepath.Join("data", "scenario_data.json"),
			filepath.Join("docs", "data", "scenario_data.json"),
		}
	}
}

// Validate checks mandatory fields.
func (c OutputConfig) Validate() error {
	for _, p := range c.Paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("output path must not be empty")
		}
	}
	return nil
}

// Load reads the configuration file (yaml or json by extension) and applies
// GR_ environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("GR_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "gr_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills unset sections; the emissions baseline tracks the
// simulation start year.
func (c *Config) ApplyDefaults() {
	c.Inputs.SetDefaults()
	c.Output.SetDefaults()
	c.Simulation.SetDefaults()
	c.Emissions.SetDefaults()
	if c.Emissions.BaselineYear == 0 {
		c.Emissions.BaselineYear = c.Simulation.StartYear
	}
	c.Metrics.SetDefaults()
}

// Validate checks all sections.
func (c Config) Validate() error {
	if err := c.Inputs.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Simulation.Validate(); err != nil {
		return err
	}
	return nil
}
