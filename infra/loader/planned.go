package loader

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mfeldner/gridrewind/core/model"
)

// plannedMunicipalities resolves planned sites whose municipality cannot be
// derived from the registry.
var plannedMunicipalities = map[string]string{
	"Hamm":               "Hamm-Uentrop",
	"Biblis":             "Biblis",
	"Vahnum":             "Dorsten",
	"Pfaffenhofen/Zusam": "Pfaffenhofen an der Zusam",
	"Pleinting":          "Vilshofen an der Donau",
	"Borken":             "Borken (Hessen)",
}

// LoadPlannedSites reads the ordered planned-site list and resolves each
// site's municipality against the registry. A missing file yields an empty
// list, not an error.
func LoadPlannedSites(path string, plants []model.Plant) ([]model.PlannedSite, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return ReadPlannedSites(f, plants)
}

// ReadPlannedSites decodes the site list from a reader, one site name per
// non-empty line, order preserved.
func ReadPlannedSites(r io.Reader, plants []model.Plant) ([]model.PlannedSite, error) {
	var sites []model.PlannedSite
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		site := strings.TrimSpace(scanner.Text())
		if site == "" {
			continue
		}
		municipality := resolveMunicipality(site, plants)
		if municipality == "" {
			if mapped, ok := plannedMunicipalities[site]; ok {
				municipality = mapped
			} else {
				municipality = site
			}
		}
		display := site
		if !strings.Contains(strings.ToLower(site), "konvoi") {
			display = site + " (Konvoi)"
		}
		sites = append(sites, model.PlannedSite{Site: site, Display: display, Municipality: municipality})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sites, nil
}

// resolveMunicipality matches the site name against plant names and
// municipalities (case-insensitive contains). A single distinct candidate
// wins outright; on several, one containing the site name is preferred,
// otherwise the first.
func resolveMunicipality(site string, plants []model.Plant) string {
	lowered := strings.ToLower(site)
	var candidates []string
	seen := map[string]bool{}
	for _, p := range plants {
		if !strings.Contains(strings.ToLower(p.Name), lowered) &&
			!strings.Contains(strings.ToLower(p.Municipality), lowered) {
			continue
		}
		muni := strings.TrimSpace(p.Municipality)
		if muni == "" || seen[muni] {
			continue
		}
		seen[muni] = true
		candidates = append(candidates, muni)
	}
	switch len(candidates) {
	case 0:
		return ""
	case 1:
		return candidates[0]
	}
	for _, cand := range candidates {
		if strings.Contains(strings.ToLower(cand), lowered) {
			return cand
		}
	}
	return candidates[0]
}
