// Package sim drives the counterfactual build programme: a deterministic
// year-by-year state machine that commissions nuclear units, retires fossil
// plants against a capacity-balance floor, allocates build sites and records
// the resulting event and capacity timelines.
package sim

import (
	"fmt"
	"math"

	"github.com/mfeldner/gridrewind/core/closure"
	"github.com/mfeldner/gridrewind/core/ledger"
	"github.com/mfeldner/gridrewind/core/logger"
	"github.com/mfeldner/gridrewind/core/model"
)

const overshootTolerance = 1e-6

// residualFleetLabel names synthetic closures not attributable to one plant.
const residualFleetLabel = "Residual fossil fleet"

// Simulator owns the state of one counterfactual run. It is not safe for
// concurrent use and not reusable across runs.
type Simulator struct {
	cfg      Config
	plants   []model.Plant
	selector *closure.Selector
	planned  []model.PlannedSite
	log      logger.Logger
}

// Result carries the outcome of one run.
type Result struct {
	Events     []model.Event
	Capacity   []model.CapacityYearRecord
	Closed     model.ClosedSet
	UnitsBuilt int
	ResidualMW float64
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

// New creates a Simulator over the plant registry. The planned-site list may
// be empty; a nil logger disables logging.
func New(cfg Config, plants []model.Plant, planned []model.PlannedSite, log logger.Logger) *Simulator {
	if log == nil {
		log = nopLogger{}
	}
	return &Simulator{
		cfg:      cfg,
		plants:   plants,
		selector: closure.NewSelector(plants),
		planned:  planned,
		log:      log,
	}
}

// Run executes the full year range against the actual capacity series. The
// actual series anchors the fossil floor: counterfactual total capacity never
// drops below the real-world total of the same year. Infeasible closure
// targets degrade to under-closure; the run always completes.
func (s *Simulator) Run(actual []model.CapacityYearRecord) Result {
	baseline := ledger.ActiveCapacity(s.plants, s.cfg.StartYear)
	runningNuclear := baseline.NuclearMW
	runningFossil := baseline.FossilMW
	breakdown := ledger.FossilBreakdown(s.plants, s.cfg.StartYear)

	alloc := newSiteAllocator(s.plants, s.planned, s.cfg.StartYear)
	closed := model.NewClosedSet()

	res := Result{Closed: closed}
	buildCount := 0

	for year := s.cfg.StartYear; year <= s.cfg.EndYear; year++ {
		actualRec, _ := ledger.FindYear(actual, year)
		unitsThisYear := s.cfg.UnitsInYear(year)

		for unitIndex := 0; unitIndex < unitsThisYear; unitIndex++ {
			capacityAdded := s.cfg.UnitCapacitiesMW[buildCount%len(s.cfg.UnitCapacitiesMW)]

			fossilBefore := runningFossil
			nuclearAfter := runningNuclear + capacityAdded
			fossilFloor := math.Max(0, actualRec.TotalMW-(nuclearAfter+actualRec.OtherMW))
			allowedShutdown := math.Max(0, fossilBefore-fossilFloor)
			closureTarget := math.Min(capacityAdded, allowedShutdown)

			var closings []model.Plant
			fossilClosed := 0.0
			if closureTarget > 0 {
				closings, fossilClosed = s.selector.Select(year, closureTarget, runningFossil, closed)
			}
			if fossilClosed > closureTarget+overshootTolerance {
				// Overshoot: roll the whole batch back rather than retire
				// more capacity than the new unit replaces.
				for _, c := range closings {
					closed.Discard(c.ID)
				}
				s.log.Debugw("closure overshoot rolled back", map[string]any{
					"year": year, "target_mw": closureTarget, "closed_mw": fossilClosed,
				})
				closings = nil
				fossilClosed = 0
				closureTarget = 0
			}

			runningNuclear += capacityAdded

			residual := 0.0
			if closureTarget > 0 && fossilClosed < closureTarget {
				residual = closureTarget - fossilClosed
			}

			label, municipality := alloc.allocate(buildCount, closings)
			unitNum := alloc.claimUnit(label, municipality)
			date := fmt.Sprintf("%d-%02d-01", year, monthFor(unitsThisYear, unitIndex))

			sitesClosed := make([]string, 0, len(closings))
			for _, c := range closings {
				sitesClosed = append(sitesClosed, c.Descriptor())
			}

			remaining := fossilBefore
			switch {
			case len(closings) > 0:
				for idx, c := range closings {
					extra := 0.0
					if residual > 0 && idx == len(closings)-1 {
						extra = residual
					}
					decrement := c.CapacityMW + extra
					remaining = math.Max(remaining-decrement, fossilFloor)
					breakdown.Add(c.Fuel, -decrement)
					site := c.Municipality
					if site == "" {
						site = c.Descriptor()
					}
					res.Events = append(res.Events, model.Event{
						Date:            date,
						Year:            year,
						Site:            site,
						Name:            c.Descriptor(),
						Type:            model.EventFossilClosure,
						Fuel:            string(c.Fuel),
						MWRemoved:       model.MW(model.Round1(c.CapacityMW)),
						FossilClosedMW:  model.MW(model.Round1(c.CapacityMW + extra)),
						DummyClosedMW:   model.MW(model.Round1(extra)),
						RunningFossilMW: model.MW(model.Round1(remaining)),
						Municipality:    c.Municipality,
					})
				}
			case residual > 0:
				// Nothing concrete fit the target: shave the residual off the
				// aggregate fleet, prorated by sub-fuel share.
				remaining = math.Max(remaining-residual, fossilFloor)
				if total := breakdown.Total(); total > 0 {
					for _, fuel := range model.FossilFuels {
						share := breakdown.Get(fuel) / total
						breakdown.Add(fuel, -residual*share)
					}
				}
				res.Events = append(res.Events, model.Event{
					Date:            date,
					Year:            year,
					Site:            residualFleetLabel,
					Name:            residualFleetLabel,
					Type:            model.EventFossilClosure,
					Fuel:            "fossil",
					MWRemoved:       model.MW(0),
					FossilClosedMW:  model.MW(model.Round1(residual)),
					DummyClosedMW:   model.MW(model.Round1(residual)),
					RunningFossilMW: model.MW(model.Round1(remaining)),
					ResidualOnly:    true,
				})
				sitesClosed = append(sitesClosed, residualFleetLabel)
			}

			runningFossil = math.Max(remaining, fossilFloor)
			runningTotal := runningNuclear + runningFossil + actualRec.OtherMW
			res.ResidualMW += residual

			res.Events = append(res.Events, model.Event{
				Date:                date,
				Year:                year,
				Site:                label,
				Name:                fmt.Sprintf("%s Unit %d", label, unitNum),
				Type:                model.EventNuclearBuild,
				MWAdded:             model.MW(model.Round1(capacityAdded)),
				RunningNuclearMW:    model.MW(model.Round1(runningNuclear)),
				RunningFossilMW:     model.MW(model.Round1(runningFossil)),
				RunningTotalMW:      model.MW(model.Round1(runningTotal)),
				FossilSitesClosed:   sitesClosed,
				FossilClosedMW:      model.MW(model.Round1(fossilClosed + residual)),
				DummyFossilClosedMW: model.MW(model.Round1(residual)),
				AnnualGenerationTWh: model.MW(model.Round2(runningTotal * hoursPerYear / 1e6)),
				Municipality:        municipality,
			})
			buildCount++
		}

		rec := model.CapacityYearRecord{
			Year:      year,
			NuclearMW: model.Round1(runningNuclear),
			FossilMW:  model.Round1(runningFossil),
			OtherMW:   actualRec.OtherMW,
			FossilBreakdown: model.FossilBreakdown{
				HardCoalMW:   model.Round1(breakdown.HardCoalMW),
				LigniteMW:    model.Round1(breakdown.LigniteMW),
				NaturalGasMW: model.Round1(breakdown.NaturalGasMW),
				OilMW:        model.Round1(breakdown.OilMW),
			},
		}
		rec.TotalMW = rec.NuclearMW + rec.FossilMW + rec.OtherMW
		res.Capacity = append(res.Capacity, rec)

		s.log.Debugw("year simulated", map[string]any{
			"year":       year,
			"units":      unitsThisYear,
			"nuclear_mw": rec.NuclearMW,
			"fossil_mw":  rec.FossilMW,
		})
	}

	res.UnitsBuilt = buildCount
	s.log.Infof("simulated %d-%d: %d units built, %d plants retired, %.1f MW residual",
		s.cfg.StartYear, s.cfg.EndYear, buildCount, closed.Len(), res.ResidualMW)
	return res
}

// hoursPerYear converts MW running totals into annual TWh capability.
const hoursPerYear = 8760
