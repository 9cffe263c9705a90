package emissions

import "gonum.org/v1/gonum/floats"

// GenerationYear is one year of the historical per-source generation series
// for the reference region, in TWh.
type GenerationYear struct {
	Year               int     `json:"year"`
	CoalTWh            float64 `json:"coal_twh"`
	GasTWh             float64 `json:"gas_twh"`
	OilTWh             float64 `json:"oil_twh"`
	NuclearTWh         float64 `json:"nuclear_twh"`
	HydroTWh           float64 `json:"hydro_twh"`
	SolarTWh           float64 `json:"solar_twh"`
	WindTWh            float64 `json:"wind_twh"`
	BioenergyTWh       float64 `json:"bioenergy_twh"`
	OtherRenewablesTWh float64 `json:"other_renewables_twh"`
}

// FossilTWh sums the three fossil generation sources.
func (g GenerationYear) FossilTWh() float64 {
	return floats.Sum([]float64{g.CoalTWh, g.GasTWh, g.OilTWh})
}

// RenewablesTWh sums the five renewable generation sources.
func (g GenerationYear) RenewablesTWh() float64 {
	return floats.Sum([]float64{g.HydroTWh, g.SolarTWh, g.WindTWh, g.BioenergyTWh, g.OtherRenewablesTWh})
}

// Extend pads the series to cover [startYear, endYear]: the first known year
// is repeated backward, the last known year forward, and years outside the
// range are dropped. The input must be sorted by year ascending.
func Extend(series []GenerationYear, startYear, endYear int) []GenerationYear {
	if len(series) == 0 {
		return nil
	}
	var out []GenerationYear
	first := series[0]
	for year := startYear; year < first.Year; year++ {
		row := first
		row.Year = year
		out = append(out, row)
	}
	for _, row := range series {
		if row.Year >= startYear && row.Year <= endYear {
			out = append(out, row)
		}
	}
	last := series[len(series)-1]
	for year := last.Year + 1; year <= endYear; year++ {
		row := last
		row.Year = year
		out = append(out, row)
	}
	return out
}

// findYear returns the row for the given year, falling back to the first row.
func findYear(series []GenerationYear, year int) GenerationYear {
	for _, row := range series {
		if row.Year == year {
			return row
		}
	}
	return series[0]
}
