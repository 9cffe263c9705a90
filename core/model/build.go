package model

// FossilBuild is one row of the fossil construction list: a plant
// commissioned during the simulated range. Fuel keeps the raw label from the
// source; NormalizeFuel maps it onto a bucket where needed.
type FossilBuild struct {
	Name           string  `json:"name"`
	Site           string  `json:"site,omitempty"`
	Municipality   string  `json:"municipality,omitempty"`
	Fuel           string  `json:"type,omitempty"`
	CapacityMW     float64 `json:"capacity_mw"`
	CommissionYear *int    `json:"commission_year,omitempty"`
}
