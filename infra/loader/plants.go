package loader

import (
	"io"

	"github.com/mfeldner/gridrewind/core/model"
)

// LoadPlants reads the plant registry CSV. Rows tagged with the "aggregate"
// technology are synthetic roll-ups and are skipped; everything else becomes
// a Plant with its row index as identity.
func LoadPlants(path string) ([]model.Plant, error) {
	return openAnd(path, ReadPlants)
}

// ReadPlants decodes the registry from a reader.
func ReadPlants(r io.Reader) ([]model.Plant, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	h := readHeader(rows[0])

	var plants []model.Plant
	for i, rec := range rows[1:] {
		if h.field(rec, "technology") == "aggregate" {
			continue
		}
		name := h.field(rec, "name")
		technology := h.field(rec, "technology")
		plants = append(plants, model.Plant{
			ID:             i,
			Name:           name,
			Municipality:   h.field(rec, "municipality"),
			Fuel:           model.FuelBucket(h.field(rec, "fuel_bucket")),
			Technology:     technology,
			CapacityMW:     floatOrZero(h.field(rec, "capacity_mw")),
			CommissionYear: optionalYear(h.field(rec, "commission_year")),
			ClosureYear:    optionalYear(h.field(rec, "closure_year")),
			Cogeneration:   model.DetectCogeneration(name, technology),
		})
	}
	return plants, nil
}

// LoadFossilBuilds reads the fossil construction list CSV.
func LoadFossilBuilds(path string) ([]model.FossilBuild, error) {
	return openAnd(path, ReadFossilBuilds)
}

// ReadFossilBuilds decodes the build list from a reader.
func ReadFossilBuilds(r io.Reader) ([]model.FossilBuild, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	h := readHeader(rows[0])

	var builds []model.FossilBuild
	for _, rec := range rows[1:] {
		builds = append(builds, model.FossilBuild{
			Name:           h.field(rec, "name"),
			Site:           h.field(rec, "site"),
			Municipality:   h.field(rec, "municipality"),
			Fuel:           h.field(rec, "type"),
			CapacityMW:     floatOrZero(h.field(rec, "capacity_mw")),
			CommissionYear: optionalYear(h.field(rec, "commission_year")),
		})
	}
	return builds, nil
}
