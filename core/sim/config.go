package sim

import "fmt"

// Config defines the counterfactual build programme loaded from
// configuration.
type Config struct {
	// StartYear is the baseline year; both scenarios are identical there.
	StartYear int `json:"start_year" yaml:"start_year"`
	// EndYear is the last simulated year, inclusive.
	EndYear int `json:"end_year" yaml:"end_year"`
	// BuildStartYear is the first year new units are commissioned.
	BuildStartYear int `json:"build_start_year" yaml:"build_start_year"`
	// UnitCapacitiesMW cycles per built unit; nominally one representative
	// reactor size.
	UnitCapacitiesMW []float64 `json:"unit_capacities_mw" yaml:"unit_capacities_mw"`
	// UnitsPerYearPattern repeats from BuildStartYear onward.
	UnitsPerYearPattern []int `json:"units_per_year_pattern" yaml:"units_per_year_pattern"`
}

// SetDefaults applies the 1989-2025 German scenario parameters.
func (c *Config) SetDefaults() {
	if c.StartYear == 0 {
		c.StartYear = 1989
	}
	if c.EndYear == 0 {
		c.EndYear = 2025
	}
	if c.BuildStartYear == 0 {
		c.BuildStartYear = 1990
	}
	if len(c.UnitCapacitiesMW) == 0 {
		c.UnitCapacitiesMW = []float64{1410}
	}
	if len(c.UnitsPerYearPattern) == 0 {
		c.UnitsPerYearPattern = []int{2, 1}
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.EndYear < c.StartYear {
		return fmt.Errorf("end_year %d before start_year %d", c.EndYear, c.StartYear)
	}
	for _, cap := range c.UnitCapacitiesMW {
		if cap <= 0 {
			return fmt.Errorf("unit capacity must be positive, got %v", cap)
		}
	}
	for _, n := range c.UnitsPerYearPattern {
		if n < 0 {
			return fmt.Errorf("units per year must not be negative, got %d", n)
		}
	}
	return nil
}

// UnitsInYear returns the number of units commissioned in the given year.
func (c Config) UnitsInYear(year int) int {
	if year < c.BuildStartYear {
		return 0
	}
	return c.UnitsPerYearPattern[(year-c.BuildStartYear)%len(c.UnitsPerYearPattern)]
}

// eventMonths maps units-per-year to commissioning months; years with an
// unlisted unit count fall back to the three-slot table.
var eventMonths = map[int][]int{
	1: {7},
	2: {4, 10},
	3: {3, 7, 11},
}

var defaultMonths = []int{6, 9, 12}

// monthFor returns the commissioning month for a unit's position within its
// year.
func monthFor(unitsThisYear, unitIndex int) int {
	months, ok := eventMonths[unitsThisYear]
	if !ok {
		months = defaultMonths
	}
	if unitIndex >= len(months) {
		unitIndex = len(months) - 1
	}
	return months[unitIndex]
}
