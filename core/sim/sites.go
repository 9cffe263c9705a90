package sim

import (
	"strings"

	"github.com/mfeldner/gridrewind/core/model"
)

// fallbackSiteLabel is used when no allocation rule resolves a site.
const fallbackSiteLabel = "New Nuclear Complex"

// existingSitePattern steers roughly three of four post-planned allocations
// toward existing nuclear municipalities.
var existingSitePattern = []bool{true, true, true, false}

// siteAllocator owns the site-selection state of one simulation run: the
// planned-site queue, the baseline municipality roster with per-site unit
// counters, and the round-robin fallback over registry nuclear site names.
type siteAllocator struct {
	planned       []model.PlannedSite
	muniMap       map[string]string
	nuclearSites  []string
	baselineSites []string
	counter       map[string]int
	postPlanned   int
}

func newSiteAllocator(plants []model.Plant, planned []model.PlannedSite, baselineYear int) *siteAllocator {
	a := &siteAllocator{
		planned: planned,
		muniMap: municipalityMap(plants),
		counter: map[string]int{},
	}

	for _, p := range plants {
		if p.Fuel == model.FuelNuclear && strings.TrimSpace(p.Name) != "" {
			a.nuclearSites = append(a.nuclearSites, p.Name)
		}
	}
	if len(a.nuclearSites) == 0 {
		a.nuclearSites = []string{"Generic Nuclear Complex"}
	}

	// Baseline nuclear municipalities in registry order, canonicalised and
	// de-duplicated, seeding the unit counters with the units already there.
	seen := map[string]bool{}
	for _, p := range plants {
		if p.Fuel != model.FuelNuclear || !p.ActiveIn(baselineYear) {
			continue
		}
		muni := strings.TrimSpace(p.Municipality)
		if muni == "" {
			continue
		}
		canonical := strings.TrimSpace(a.muniMap[muni])
		if canonical == "" {
			canonical = muni
		}
		if !seen[canonical] {
			seen[canonical] = true
			a.baselineSites = append(a.baselineSites, canonical)
		}
		a.counter[canonical]++
	}
	if len(a.baselineSites) == 0 {
		for _, name := range a.nuclearSites {
			label := strings.TrimSpace(a.muniMap[name])
			if label == "" {
				label = strings.TrimSpace(name)
			}
			if label != "" {
				a.baselineSites = append(a.baselineSites, label)
			}
		}
	}
	return a
}

// municipalityMap indexes municipalities by plant name, descriptor and the
// municipality itself.
func municipalityMap(plants []model.Plant) map[string]string {
	m := map[string]string{}
	for _, p := range plants {
		name := strings.TrimSpace(p.Name)
		muni := strings.TrimSpace(p.Municipality)
		if name == "" || muni == "" {
			continue
		}
		m[name] = muni
		m[name+" ("+muni+")"] = muni
		m[muni] = muni
	}
	return m
}

// leastUsedBaselineSite returns the baseline municipality with the fewest
// allocated units, ties broken alphabetically. Empty string when no baseline
// sites exist.
func (a *siteAllocator) leastUsedBaselineSite() string {
	best := ""
	for _, site := range a.baselineSites {
		if best == "" {
			best = site
			continue
		}
		cs, cb := a.counter[site], a.counter[best]
		if cs < cb || (cs == cb && site < best) {
			best = site
		}
	}
	return best
}

// allocate resolves the site label and municipality for the unit with the
// given build index. Priority: planned queue, then (3 of 4) the least-used
// existing nuclear municipality, then the municipality of the primary plant
// closed in the same event, then round-robin over registry nuclear names,
// then the literal fallback label.
func (a *siteAllocator) allocate(buildCount int, closings []model.Plant) (label, municipality string) {
	if buildCount < len(a.planned) {
		p := a.planned[buildCount]
		label = strings.TrimSpace(p.Display)
		municipality = strings.TrimSpace(p.Municipality)
	} else {
		preferExisting := existingSitePattern[a.postPlanned%len(existingSitePattern)]
		a.postPlanned++

		if preferExisting {
			if chosen := a.leastUsedBaselineSite(); chosen != "" {
				municipality = chosen
				label = chosen
			}
		}
		if label == "" {
			if len(closings) > 0 {
				primary := closings[0]
				municipality = strings.TrimSpace(primary.Municipality)
				descriptor := strings.TrimSpace(primary.Descriptor())
				if mapped := strings.TrimSpace(a.muniMap[descriptor]); municipality == "" && mapped != "" {
					municipality = mapped
				}
				if label = municipality; label == "" {
					label = descriptor
				}
			} else {
				choice := a.nuclearSites[buildCount%len(a.nuclearSites)]
				municipality = strings.TrimSpace(a.muniMap[choice])
				if label = municipality; label == "" {
					label = strings.TrimSpace(choice)
				}
			}
		}
	}

	if label == "" {
		if label = municipality; label == "" {
			label = fallbackSiteLabel
		}
	}
	if municipality == "" {
		municipality = strings.TrimSpace(a.muniMap[label])
	}
	return label, municipality
}

// claimUnit increments the unit counter for the site and returns the unit
// number of the new build.
func (a *siteAllocator) claimUnit(label, municipality string) int {
	key := municipality
	if key == "" {
		key = label
	}
	a.counter[key]++
	return a.counter[key]
}
