package model

import "math"

// FossilBreakdown splits fossil capacity across the four sub-fuels, in MW.
type FossilBreakdown struct {
	HardCoalMW   float64 `json:"fossil_hard_coal_mw"`
	LigniteMW    float64 `json:"fossil_lignite_mw"`
	NaturalGasMW float64 `json:"fossil_natural_gas_mw"`
	OilMW        float64 `json:"fossil_oil_mw"`
}

// Total returns the summed sub-fuel capacity.
func (b FossilBreakdown) Total() float64 {
	return b.HardCoalMW + b.LigniteMW + b.NaturalGasMW + b.OilMW
}

// Get returns the capacity for one sub-fuel bucket.
func (b FossilBreakdown) Get(f FuelBucket) float64 {
	switch f {
	case FuelHardCoal:
		return b.HardCoalMW
	case FuelLignite:
		return b.LigniteMW
	case FuelNaturalGas:
		return b.NaturalGasMW
	case FuelOil:
		return b.OilMW
	}
	return 0
}

// Add shifts one sub-fuel by delta, flooring at zero. Non-fossil buckets are
// ignored.
func (b *FossilBreakdown) Add(f FuelBucket, delta float64) {
	switch f {
	case FuelHardCoal:
		b.HardCoalMW = math.Max(0, b.HardCoalMW+delta)
	case FuelLignite:
		b.LigniteMW = math.Max(0, b.LigniteMW+delta)
	case FuelNaturalGas:
		b.NaturalGasMW = math.Max(0, b.NaturalGasMW+delta)
	case FuelOil:
		b.OilMW = math.Max(0, b.OilMW+delta)
	}
}

// CapacityYearRecord is one year of a scenario's capacity time series.
// TotalMW always equals nuclear+fossil+other.
type CapacityYearRecord struct {
	Year      int     `json:"year"`
	NuclearMW float64 `json:"nuclear_mw"`
	FossilMW  float64 `json:"fossil_mw"`
	OtherMW   float64 `json:"other_mw"`
	TotalMW   float64 `json:"total_mw"`
	FossilBreakdown
}

// EmissionsYearRecord is one year of a scenario's generation and CO2 series.
type EmissionsYearRecord struct {
	Year          int     `json:"year"`
	FossilTWh     float64 `json:"fossil_twh"`
	NuclearTWh    float64 `json:"nuclear_twh"`
	RenewablesTWh float64 `json:"renewables_twh"`
	TotalTWh      float64 `json:"total_twh"`
	CO2Mt         float64 `json:"co2_mt"`
	CleanTWh      float64 `json:"clean_twh"`
}

// SiteStats aggregates plant count and capacity under one site or
// municipality key.
type SiteStats struct {
	Count      int     `json:"count"`
	CapacityMW float64 `json:"capacity_mw"`
}

// BucketBaselines holds per-key baselines for the two buckets of interest.
// The key set is fixed: nuclear and fossil.
type BucketBaselines struct {
	Nuclear map[string]SiteStats `json:"nuclear"`
	Fossil  map[string]SiteStats `json:"fossil"`
}

// NewBucketBaselines returns baselines with both maps allocated.
func NewBucketBaselines() BucketBaselines {
	return BucketBaselines{Nuclear: map[string]SiteStats{}, Fossil: map[string]SiteStats{}}
}

// Round1 rounds to one decimal, the MW precision used in exported records.
func Round1(v float64) float64 { return math.Round(v*10) / 10 }

// Round2 rounds to two decimals, the TWh/CO2 precision used in exported
// records.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }
