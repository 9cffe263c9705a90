// Package closure picks fossil plants to retire against a capacity target.
// Retirement policy: oldest, smallest, non-cogeneration, highest-carbon
// plants go first; heat-coupled plants are a fallback pool that is only
// touched when the primary pool cannot meet the target.
package closure

import (
	"sort"
	"strings"

	"github.com/mfeldner/gridrewind/core/model"
)

// commissionSentinel sorts plants with an unknown commission year last.
const commissionSentinel = 9999

// tolerance under which a remaining capacity need counts as met.
const tolerance = 1e-6

// heatPatterns exclude district-heating and CHP plants from the primary pool
// by name match.
var heatPatterns = []string{"hkw", "heiz", "fern", "wärme", "kwk", "cogen", "chp"}

// Selector scans two priority-ordered candidate pools and reserves picked
// plants in a caller-owned ClosedSet.
type Selector struct {
	primary  []model.Plant
	fallback []model.Plant
}

// NewSelector builds the candidate pools once from the registry. Plants keep
// their registry ids; cogeneration flags are derived from name and technology
// keywords when not already set.
func NewSelector(plants []model.Plant) *Selector {
	var primary, fallback []model.Plant
	for _, p := range plants {
		if !p.Fuel.IsFossil() {
			continue
		}
		if !p.Cogeneration {
			p.Cogeneration = model.DetectCogeneration(p.Name, p.Technology)
		}
		if matchesHeatPattern(p.Name) {
			fallback = append(fallback, p)
		} else {
			primary = append(primary, p)
		}
	}
	sortPool(primary)
	sortPool(fallback)
	return &Selector{primary: primary, fallback: fallback}
}

func matchesHeatPattern(name string) bool {
	lowered := strings.ToLower(name)
	for _, pat := range heatPatterns {
		if strings.Contains(lowered, pat) {
			return true
		}
	}
	return false
}

// sortPool orders candidates by (fuel priority, cogeneration flag,
// commission year with sentinel, capacity), all ascending.
func sortPool(pool []model.Plant) {
	sort.SliceStable(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		if pa, pb := a.Fuel.RetirementPriority(), b.Fuel.RetirementPriority(); pa != pb {
			return pa < pb
		}
		if a.Cogeneration != b.Cogeneration {
			return !a.Cogeneration
		}
		ca, cb := commissionSentinel, commissionSentinel
		if a.CommissionYear != nil {
			ca = *a.CommissionYear
		}
		if b.CommissionYear != nil {
			cb = *b.CommissionYear
		}
		if ca != cb {
			return ca < cb
		}
		return a.CapacityMW < b.CapacityMW
	})
}

// PoolSizes reports the primary and fallback pool lengths.
func (s *Selector) PoolSizes() (int, int) { return len(s.primary), len(s.fallback) }

// Select greedily picks whole plants until capacityNeeded is met within
// tolerance or both pools are exhausted. A candidate is skipped when already
// closed, not yet commissioned by year, already closed before year, or larger
// than the remaining need. Picked ids are reserved in closed. The returned
// total is capped at runningFossil; any shortfall against capacityNeeded is
// the caller's under-closure.
func (s *Selector) Select(year int, capacityNeeded, runningFossil float64, closed model.ClosedSet) ([]model.Plant, float64) {
	if runningFossil <= 0 || capacityNeeded <= 0 {
		return nil, 0
	}
	remaining := capacityNeeded
	if remaining <= tolerance {
		return nil, 0
	}

	var closings []model.Plant
	totalClosed := 0.0

	consume := func(pool []model.Plant) {
		for _, cand := range pool {
			if remaining <= tolerance {
				return
			}
			if closed.Has(cand.ID) {
				continue
			}
			if cand.CommissionYear != nil && *cand.CommissionYear > year {
				continue
			}
			if cand.ClosureYear != nil && *cand.ClosureYear < year {
				continue
			}
			if cand.CapacityMW > remaining+tolerance {
				continue
			}
			closings = append(closings, cand)
			closed.Add(cand.ID)
			totalClosed += cand.CapacityMW
			remaining = capacityNeeded - totalClosed
			if remaining < 0 {
				remaining = 0
			}
		}
	}

	consume(s.primary)
	if remaining > tolerance {
		consume(s.fallback)
	}

	if totalClosed > runningFossil {
		totalClosed = runningFossil
	}
	return closings, totalClosed
}
