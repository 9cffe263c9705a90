package sim

import (
	"strings"

	"github.com/mfeldner/gridrewind/core/model"
)

// SiteBaselines aggregates plants active in the baseline year under their
// plant name and "Name (Municipality)" keys, one count per distinct key.
// Only the nuclear and fossil buckets are tracked.
func SiteBaselines(plants []model.Plant, baselineYear int) model.BucketBaselines {
	baselines := model.NewBucketBaselines()
	seen := map[string]map[string]bool{"nuclear": {}, "fossil": {}}

	for _, p := range plants {
		if !p.ActiveIn(baselineYear) {
			continue
		}
		bucket, stats := bucketFor(p, baselines)
		if stats == nil {
			continue
		}
		keys := map[string]bool{}
		if name := strings.TrimSpace(p.Name); name != "" {
			keys[name] = true
			if muni := strings.TrimSpace(p.Municipality); muni != "" {
				keys[name+" ("+muni+")"] = true
			}
		}
		for key := range keys {
			if seen[bucket][key] {
				continue
			}
			seen[bucket][key] = true
			s := stats[key]
			s.Count++
			s.CapacityMW += p.CapacityMW
			stats[key] = s
		}
	}
	return baselines
}

// MunicipalityBaselines aggregates plants active in the baseline year under
// their municipality. Plants without a municipality are skipped.
func MunicipalityBaselines(plants []model.Plant, baselineYear int) model.BucketBaselines {
	baselines := model.NewBucketBaselines()
	for _, p := range plants {
		if !p.ActiveIn(baselineYear) {
			continue
		}
		_, stats := bucketFor(p, baselines)
		if stats == nil {
			continue
		}
		muni := strings.TrimSpace(p.Municipality)
		if muni == "" {
			continue
		}
		s := stats[muni]
		s.Count++
		s.CapacityMW += p.CapacityMW
		stats[muni] = s
	}
	return baselines
}

func bucketFor(p model.Plant, baselines model.BucketBaselines) (string, map[string]model.SiteStats) {
	switch {
	case p.Fuel == model.FuelNuclear:
		return "nuclear", baselines.Nuclear
	case p.Fuel.IsFossil():
		return "fossil", baselines.Fossil
	}
	return "", nil
}
