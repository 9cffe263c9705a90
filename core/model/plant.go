package model

import (
	"fmt"
	"strings"
)

// FuelBucket classifies a generating plant by primary fuel.
type FuelBucket string

const (
	FuelNuclear    FuelBucket = "nuclear"
	FuelHardCoal   FuelBucket = "hard_coal"
	FuelLignite    FuelBucket = "lignite"
	FuelNaturalGas FuelBucket = "natural_gas"
	FuelOil        FuelBucket = "oil"
	FuelOther      FuelBucket = "other"
)

// FossilFuels lists the four fossil sub-fuels in their canonical order.
var FossilFuels = []FuelBucket{FuelHardCoal, FuelLignite, FuelNaturalGas, FuelOil}

// IsFossil reports whether the bucket is one of the four fossil sub-fuels.
func (f FuelBucket) IsFossil() bool {
	switch f {
	case FuelHardCoal, FuelLignite, FuelNaturalGas, FuelOil:
		return true
	}
	return false
}

// RetirementPriority orders fuels for closure selection. Lower retires first:
// coal before oil before gas; anything unclassified last.
func (f FuelBucket) RetirementPriority() int {
	switch f {
	case FuelLignite, FuelHardCoal:
		return 0
	case FuelOil:
		return 1
	case FuelNaturalGas:
		return 2
	}
	return 3
}

// NormalizeFuel maps free-text fuel labels from the build list onto buckets.
// Unrecognised labels fall into FuelOther.
func NormalizeFuel(s string) FuelBucket {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coal", "hard coal", "hard_coal":
		return FuelHardCoal
	case "lignite":
		return FuelLignite
	case "gas", "natural gas", "natural_gas":
		return FuelNaturalGas
	case "oil":
		return FuelOil
	case "nuclear":
		return FuelNuclear
	}
	return FuelOther
}

// cogenKeywords flag combined heat-and-power or district-heating units in
// plant names and technology tags.
var cogenKeywords = []string{"chp", "kwk", "cogen", "cogeneration", "fern", "warme", "wärme", "heiz"}

// Plant is one row of the static plant registry. Commission and closure years
// are optional; a nil year leaves the plant unconstrained on that side.
type Plant struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Municipality   string     `json:"municipality,omitempty"`
	Fuel           FuelBucket `json:"fuel_bucket"`
	Technology     string     `json:"technology,omitempty"`
	CapacityMW     float64    `json:"capacity_mw"`
	CommissionYear *int       `json:"commission_year,omitempty"`
	ClosureYear    *int       `json:"closure_year,omitempty"`
	Cogeneration   bool       `json:"is_cogeneration,omitempty"`
}

// DetectCogeneration matches the CHP keyword heuristics against the plant's
// name and technology tag.
func DetectCogeneration(name, technology string) bool {
	blob := strings.ToLower(name + " " + technology)
	for _, kw := range cogenKeywords {
		if strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}

// ActiveIn reports whether the plant is on the grid during the given year.
func (p Plant) ActiveIn(year int) bool {
	if p.CommissionYear != nil && *p.CommissionYear > year {
		return false
	}
	if p.ClosureYear != nil && *p.ClosureYear < year {
		return false
	}
	return true
}

// Descriptor renders "Name (Municipality)" when a municipality is known.
func (p Plant) Descriptor() string {
	m := strings.TrimSpace(p.Municipality)
	if m != "" {
		return fmt.Sprintf("%s (%s)", p.Name, m)
	}
	return p.Name
}

// Validate checks the commission/closure ordering invariant.
func (p Plant) Validate() error {
	if p.CapacityMW < 0 {
		return fmt.Errorf("plant %d: negative capacity", p.ID)
	}
	if p.CommissionYear != nil && p.ClosureYear != nil && *p.CommissionYear > *p.ClosureYear {
		return fmt.Errorf("plant %d: commissioned %d after closure %d", p.ID, *p.CommissionYear, *p.ClosureYear)
	}
	return nil
}

// Year is a convenience for building optional year fields.
func Year(y int) *int { return &y }
