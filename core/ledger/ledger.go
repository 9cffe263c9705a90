// Package ledger computes active capacity aggregates from the static plant
// registry. All functions are pure: a plant counts toward a year when its
// commission year is absent or not later than the year, and its closure year
// is absent or not earlier than the year.
package ledger

import "github.com/mfeldner/gridrewind/core/model"

// ActiveCapacity sums active capacity for one year into the three top-level
// buckets (nuclear, fossil, other).
func ActiveCapacity(plants []model.Plant, year int) model.CapacityYearRecord {
	rec := model.CapacityYearRecord{Year: year}
	for _, p := range plants {
		if !p.ActiveIn(year) {
			continue
		}
		switch {
		case p.Fuel == model.FuelNuclear:
			rec.NuclearMW += p.CapacityMW
		case p.Fuel.IsFossil():
			rec.FossilMW += p.CapacityMW
		default:
			rec.OtherMW += p.CapacityMW
		}
	}
	rec.TotalMW = rec.NuclearMW + rec.FossilMW + rec.OtherMW
	return rec
}

// FossilBreakdown sums active fossil capacity for one year per sub-fuel.
func FossilBreakdown(plants []model.Plant, year int) model.FossilBreakdown {
	var b model.FossilBreakdown
	for _, p := range plants {
		if !p.ActiveIn(year) || !p.Fuel.IsFossil() {
			continue
		}
		b.Add(p.Fuel, p.CapacityMW)
	}
	return b
}

// CapacitySeries returns one record per year over [startYear, endYear], with
// the per-year fossil breakdown filled in.
func CapacitySeries(plants []model.Plant, startYear, endYear int) []model.CapacityYearRecord {
	series := make([]model.CapacityYearRecord, 0, endYear-startYear+1)
	for year := startYear; year <= endYear; year++ {
		rec := ActiveCapacity(plants, year)
		rec.FossilBreakdown = FossilBreakdown(plants, year)
		series = append(series, rec)
	}
	return series
}

// FindYear returns the record for the given year, or the last record when the
// year is past the series end. The bool is false only for an empty series.
func FindYear(series []model.CapacityYearRecord, year int) (model.CapacityYearRecord, bool) {
	if len(series) == 0 {
		return model.CapacityYearRecord{}, false
	}
	for _, rec := range series {
		if rec.Year == year {
			return rec, true
		}
	}
	return series[len(series)-1], true
}
