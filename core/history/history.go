// Package history assembles the historical scenario: the fossil-build
// overlay on the capacity series and the chronological event list of builds
// and closures that actually happened.
package history

import (
	"fmt"
	"sort"

	"github.com/mfeldner/gridrewind/core/ledger"
	"github.com/mfeldner/gridrewind/core/model"
)

// ApplyFossilBuilds overlays commissioned fossil capacity onto the capacity
// series: each build adds cumulatively from its commission year onward, to
// the fossil total and to its sub-fuel's breakdown column. The input series
// must be ordered by year; a copy is returned.
func ApplyFossilBuilds(capacity []model.CapacityYearRecord, builds []model.FossilBuild, startYear, endYear int) []model.CapacityYearRecord {
	adjusted := make([]model.CapacityYearRecord, len(capacity))
	copy(adjusted, capacity)

	additionsByYear := map[int]float64{}
	for _, b := range builds {
		if b.CommissionYear == nil || *b.CommissionYear < startYear || *b.CommissionYear > endYear {
			continue
		}
		additionsByYear[*b.CommissionYear] += b.CapacityMW
	}

	runningAdd := 0.0
	for i := range adjusted {
		runningAdd += additionsByYear[adjusted[i].Year]
		adjusted[i].FossilMW += runningAdd
		adjusted[i].TotalMW = adjusted[i].NuclearMW + adjusted[i].FossilMW + adjusted[i].OtherMW
	}

	for _, b := range builds {
		if b.CommissionYear == nil || *b.CommissionYear < startYear || *b.CommissionYear > endYear {
			continue
		}
		fuel := model.NormalizeFuel(b.Fuel)
		if !fuel.IsFossil() {
			continue
		}
		for i := range adjusted {
			if adjusted[i].Year >= *b.CommissionYear {
				adjusted[i].FossilBreakdown.Add(fuel, b.CapacityMW)
			}
		}
	}
	return adjusted
}

// Events lists the historical fossil builds, fossil closures and nuclear
// closures within [startYear, endYear], sorted by (year, date, name).
func Events(builds []model.FossilBuild, plants []model.Plant, startYear, endYear int) []model.Event {
	// Running totals come from the unadjusted registry, one year of lead-in
	// so the first simulated year resolves.
	totals := ledger.CapacitySeries(plants, startYear-1, endYear)

	var events []model.Event

	inRange := make([]model.FossilBuild, 0, len(builds))
	for _, b := range builds {
		if b.CommissionYear != nil && *b.CommissionYear >= startYear && *b.CommissionYear <= endYear {
			inRange = append(inRange, b)
		}
	}
	sort.SliceStable(inRange, func(i, j int) bool {
		a, b := inRange[i], inRange[j]
		if *a.CommissionYear != *b.CommissionYear {
			return *a.CommissionYear < *b.CommissionYear
		}
		if a.Site != b.Site {
			return a.Site < b.Site
		}
		return a.Name < b.Name
	})
	for _, b := range inRange {
		year := *b.CommissionYear
		rec, _ := ledger.FindYear(totals, year)
		site := b.Municipality
		if site == "" {
			if site = b.Site; site == "" {
				site = b.Name
			}
		}
		fuel := b.Fuel
		if fuel == "" {
			fuel = "fossil"
		}
		events = append(events, model.Event{
			Date:            fmt.Sprintf("%d-07-01", year),
			Year:            year,
			Site:            site,
			Name:            b.Name,
			Type:            model.EventFossilBuild,
			Fuel:            fuel,
			MWAdded:         model.MW(model.Round1(b.CapacityMW)),
			RunningFossilMW: model.MW(model.Round1(rec.FossilMW)),
			Municipality:    b.Municipality,
		})
	}

	events = append(events, closureEvents(plants, totals, startYear, endYear)...)

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Name < b.Name
	})
	return events
}

func closureEvents(plants []model.Plant, totals []model.CapacityYearRecord, startYear, endYear int) []model.Event {
	var closures []model.Plant
	for _, p := range plants {
		if p.ClosureYear == nil || *p.ClosureYear < startYear || *p.ClosureYear > endYear {
			continue
		}
		if p.Fuel.IsFossil() || p.Fuel == model.FuelNuclear {
			closures = append(closures, p)
		}
	}
	sort.SliceStable(closures, func(i, j int) bool {
		a, b := closures[i], closures[j]
		if *a.ClosureYear != *b.ClosureYear {
			return *a.ClosureYear < *b.ClosureYear
		}
		ca, cb := 9999, 9999
		if a.CommissionYear != nil {
			ca = *a.CommissionYear
		}
		if b.CommissionYear != nil {
			cb = *b.CommissionYear
		}
		if ca != cb {
			return ca < cb
		}
		return a.Name < b.Name
	})

	var events []model.Event
	for _, p := range closures {
		year := *p.ClosureYear
		rec, _ := ledger.FindYear(totals, year)
		site := p.Municipality
		if site == "" {
			site = p.Name
		}
		if p.Fuel == model.FuelNuclear {
			after := rec.NuclearMW - p.CapacityMW
			if after < 0 {
				after = 0
			}
			events = append(events, model.Event{
				Date:             fmt.Sprintf("%d-11-15", year),
				Year:             year,
				Site:             site,
				Name:             p.Name,
				Type:             model.EventNuclearClosure,
				Fuel:             string(model.FuelNuclear),
				MWRemoved:        model.MW(model.Round1(p.CapacityMW)),
				RunningNuclearMW: model.MW(model.Round1(after)),
				Municipality:     p.Municipality,
			})
			continue
		}
		events = append(events, model.Event{
			Date:            fmt.Sprintf("%d-11-01", year),
			Year:            year,
			Site:            site,
			Name:            p.Name,
			Type:            model.EventFossilClosure,
			Fuel:            string(p.Fuel),
			MWRemoved:       model.MW(model.Round1(p.CapacityMW)),
			RunningFossilMW: model.MW(model.Round1(rec.FossilMW)),
			Municipality:    p.Municipality,
		})
	}
	return events
}
