// Package emissions converts capacity scenarios and the historical
// generation mix into comparable energy and CO2 timelines. The guiding
// identity: for every year after the baseline, counterfactual total energy
// equals actual total energy, with fossil output as the balancing term.
package emissions

import (
	"gonum.org/v1/gonum/floats"

	"github.com/mfeldner/gridrewind/core/ledger"
	"github.com/mfeldner/gridrewind/core/model"
)

// Approximate emission intensities in tonnes CO2 per MWh. Applied to TWh
// values they yield megatonnes directly.
const (
	factorCoal    = 0.95
	factorGas     = 0.45
	factorOil     = 0.78
	factorNuclear = 0.01
)

const hoursPerYear = 8760

// Config parameterises the projection.
type Config struct {
	// BaselineYear anchors both scenarios; the counterfactual record is
	// forced identical to the actual one up to and including it.
	BaselineYear int `json:"baseline_year" yaml:"baseline_year"`
	// RenewableFreezeYear caps counterfactual renewables at that year's
	// actual level.
	RenewableFreezeYear int `json:"renewable_freeze_year" yaml:"renewable_freeze_year"`
	// NuclearCapacityFactor converts added MW into TWh (stylised baseload
	// availability).
	NuclearCapacityFactor float64 `json:"nuclear_capacity_factor" yaml:"nuclear_capacity_factor"`
}

// SetDefaults applies the scenario's stylised constants.
func (c *Config) SetDefaults() {
	if c.RenewableFreezeYear == 0 {
		c.RenewableFreezeYear = 1998
	}
	if c.NuclearCapacityFactor == 0 {
		c.NuclearCapacityFactor = 0.90
	}
}

// Projection holds both emissions timelines.
type Projection struct {
	Historical     []model.EmissionsYearRecord
	Counterfactual []model.EmissionsYearRecord
}

// Project walks the extended generation series and derives the actual and
// counterfactual records year by year. The generation series must already
// cover every simulated year (see Extend); actual and cf are the two
// capacity series including fossil breakdowns.
func Project(cfg Config, generation []GenerationYear, actual, cf []model.CapacityYearRecord) Projection {
	var proj Projection
	if len(generation) == 0 {
		return proj
	}

	baselineRow := findYear(generation, cfg.BaselineYear)
	freezeRow := findYear(generation, cfg.RenewableFreezeYear)

	baselineNuclearTWh := baselineRow.NuclearTWh
	frozenRenewablesTWh := freezeRow.RenewablesTWh()

	prevCfNuclearTWh := baselineNuclearTWh

	for _, row := range generation {
		year := row.Year

		fossilTWh := row.FossilTWh()
		renewablesTWh := row.RenewablesTWh()
		totalTWh := fossilTWh + row.NuclearTWh + renewablesTWh
		co2Mt := row.CoalTWh*factorCoal + row.GasTWh*factorGas + row.OilTWh*factorOil + row.NuclearTWh*factorNuclear

		actualRec := model.EmissionsYearRecord{
			Year:          year,
			FossilTWh:     model.Round2(fossilTWh),
			NuclearTWh:    model.Round2(row.NuclearTWh),
			RenewablesTWh: model.Round2(renewablesTWh),
			TotalTWh:      model.Round2(totalTWh),
			CO2Mt:         model.Round2(co2Mt),
			CleanTWh:      model.Round2(row.NuclearTWh + renewablesTWh),
		}
		proj.Historical = append(proj.Historical, actualRec)

		actualCap, _ := ledger.FindYear(actual, year)
		cfCap, _ := ledger.FindYear(cf, year)

		extraNuclearMW := cfCap.NuclearMW - actualCap.NuclearMW
		if extraNuclearMW < 0 {
			extraNuclearMW = 0
		}
		potentialExtraTWh := extraNuclearMW * hoursPerYear * cfg.NuclearCapacityFactor / 1e6
		if year <= cfg.BaselineYear {
			potentialExtraTWh = 0
		}

		// Baseload plants keep running once built: output never decreases.
		cfNuclearTWh := baselineNuclearTWh + potentialExtraTWh
		if prevCfNuclearTWh > cfNuclearTWh {
			cfNuclearTWh = prevCfNuclearTWh
		}

		cfRenewablesTWh := renewablesTWh
		if year >= cfg.RenewableFreezeYear {
			cfRenewablesTWh = frozenRenewablesTWh
		}

		potentialWithoutFossil := cfNuclearTWh + cfRenewablesTWh
		cfFossilTWh := totalTWh - potentialWithoutFossil
		if cfFossilTWh < 0 {
			cfFossilTWh = 0
		}
		cfTotalTWh := potentialWithoutFossil + cfFossilTWh

		scaledCoal, scaledGas, scaledOil, cfFossilTWh := splitFossil(row, actualCap, cfCap, cfFossilTWh)

		cfCO2Mt := scaledCoal*factorCoal + scaledGas*factorGas + scaledOil*factorOil + cfNuclearTWh*factorNuclear

		cfRec := model.EmissionsYearRecord{
			Year:          year,
			FossilTWh:     model.Round2(cfFossilTWh),
			NuclearTWh:    model.Round2(cfNuclearTWh),
			RenewablesTWh: model.Round2(cfRenewablesTWh),
			TotalTWh:      model.Round2(cfTotalTWh),
			CO2Mt:         model.Round2(cfCO2Mt),
			CleanTWh:      model.Round2(cfNuclearTWh + cfRenewablesTWh),
		}
		if year <= cfg.BaselineYear {
			cfRec = actualRec
		}
		proj.Counterfactual = append(proj.Counterfactual, cfRec)

		prevCfNuclearTWh = cfNuclearTWh
	}
	return proj
}

// splitFossil distributes the required counterfactual fossil energy across
// coal, gas and oil proportionally to each sub-fuel's counterfactual/actual
// capacity ratio, renormalised to sum exactly to the requirement. When all
// ratios are zero the counterfactual capacity share is used instead; when
// that is also zero the requirement collapses to zero rather than dividing
// by zero.
func splitFossil(row GenerationYear, actualCap, cfCap model.CapacityYearRecord, cfFossilTWh float64) (coal, gas, oil, total float64) {
	coalActual := actualCap.HardCoalMW + actualCap.LigniteMW
	coalCf := cfCap.HardCoalMW + cfCap.LigniteMW
	gasActual, gasCf := actualCap.NaturalGasMW, cfCap.NaturalGasMW
	oilActual, oilCf := actualCap.OilMW, cfCap.OilMW

	ratio := func(cf, actual float64) float64 {
		if actual > 0 {
			return cf / actual
		}
		return 0
	}

	scaled := []float64{
		row.CoalTWh * ratio(coalCf, coalActual),
		row.GasTWh * ratio(gasCf, gasActual),
		row.OilTWh * ratio(oilCf, oilActual),
	}
	scaledTotal := floats.Sum(scaled)

	switch {
	case cfFossilTWh > 0 && scaledTotal > 0:
		floats.Scale(cfFossilTWh/scaledTotal, scaled)
	case cfFossilTWh > 0:
		capTotal := coalCf + gasCf + oilCf
		if capTotal > 0 {
			scaled[0] = cfFossilTWh * coalCf / capTotal
			scaled[1] = cfFossilTWh * gasCf / capTotal
			scaled[2] = cfFossilTWh * oilCf / capTotal
		} else {
			scaled[0], scaled[1], scaled[2] = 0, 0, 0
			cfFossilTWh = 0
		}
	default:
		scaled[0], scaled[1], scaled[2] = 0, 0, 0
		cfFossilTWh = 0
	}
	return scaled[0], scaled[1], scaled[2], cfFossilTWh
}
