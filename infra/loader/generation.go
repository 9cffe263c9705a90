package loader

import (
	"io"
	"sort"

	"github.com/mfeldner/gridrewind/core/emissions"
)

// Column names of the electricity-production-by-source dataset.
const (
	colEntity          = "Entity"
	colYear            = "Year"
	colCoal            = "Electricity from coal - TWh"
	colGas             = "Electricity from gas - TWh"
	colNuclear         = "Electricity from nuclear - TWh"
	colHydro           = "Electricity from hydro - TWh"
	colSolar           = "Electricity from solar - TWh"
	colOil             = "Electricity from oil - TWh"
	colWind            = "Electricity from wind - TWh"
	colBioenergy       = "Electricity from bioenergy - TWh"
	colOtherRenewables = "Other renewables excluding bioenergy - TWh"
)

// LoadGeneration reads the per-source generation series for one entity,
// sorted by year ascending.
func LoadGeneration(path, entity string) ([]emissions.GenerationYear, error) {
	return openAnd(path, func(r io.Reader) ([]emissions.GenerationYear, error) {
		return ReadGeneration(r, entity)
	})
}

// ReadGeneration decodes the generation series from a reader, keeping only
// rows for the given entity.
func ReadGeneration(r io.Reader, entity string) ([]emissions.GenerationYear, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	h := readHeader(rows[0])

	var series []emissions.GenerationYear
	for _, rec := range rows[1:] {
		if h.field(rec, colEntity) != entity {
			continue
		}
		year := optionalYear(h.field(rec, colYear))
		if year == nil {
			continue
		}
		series = append(series, emissions.GenerationYear{
			Year:               *year,
			CoalTWh:            floatOrZero(h.field(rec, colCoal)),
			GasTWh:             floatOrZero(h.field(rec, colGas)),
			OilTWh:             floatOrZero(h.field(rec, colOil)),
			NuclearTWh:         floatOrZero(h.field(rec, colNuclear)),
			HydroTWh:           floatOrZero(h.field(rec, colHydro)),
			SolarTWh:           floatOrZero(h.field(rec, colSolar)),
			WindTWh:            floatOrZero(h.field(rec, colWind)),
			BioenergyTWh:       floatOrZero(h.field(rec, colBioenergy)),
			OtherRenewablesTWh: floatOrZero(h.field(rec, colOtherRenewables)),
		})
	}
	sort.SliceStable(series, func(i, j int) bool { return series[i].Year < series[j].Year })
	return series, nil
}
