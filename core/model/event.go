package model

// EventType discriminates the scenario event union.
type EventType string

const (
	EventNuclearBuild   EventType = "nuclear_build"
	EventFossilBuild    EventType = "fossil_build"
	EventFossilClosure  EventType = "fossil_closure"
	EventNuclearClosure EventType = "nuclear_closure"
)

// Event is one dated entry of a scenario timeline. Fields that only apply to
// some event types are pointers so a genuine zero still serialises while
// absent fields stay out of the document.
type Event struct {
	Date string    `json:"date"`
	Year int       `json:"year"`
	Site string    `json:"site"`
	Name string    `json:"name"`
	Type EventType `json:"event_type"`
	Fuel string    `json:"fuel,omitempty"`

	MWAdded   *float64 `json:"mw_added,omitempty"`
	MWRemoved *float64 `json:"mw_removed,omitempty"`

	// Closure bookkeeping: total capacity retired by the event and the share
	// of it not attributable to a concrete plant.
	FossilClosedMW      *float64 `json:"fossil_capacity_closed_mw,omitempty"`
	DummyClosedMW       *float64 `json:"dummy_capacity_closed_mw,omitempty"`
	DummyFossilClosedMW *float64 `json:"dummy_fossil_capacity_closed_mw,omitempty"`

	RunningNuclearMW *float64 `json:"running_nuclear_mw,omitempty"`
	RunningFossilMW  *float64 `json:"running_fossil_mw,omitempty"`
	RunningTotalMW   *float64 `json:"running_total_mw,omitempty"`

	FossilSitesClosed   []string `json:"fossil_sites_closed,omitempty"`
	AnnualGenerationTWh *float64 `json:"annual_generation_capacity_twh,omitempty"`

	Municipality string `json:"municipality"`
	ResidualOnly bool   `json:"residual_only,omitempty"`
}

// MW boxes a float for the optional event fields.
func MW(v float64) *float64 { return &v }

// ClosedSet tracks plant identities already retired during a simulation run.
// It only ever grows, except for the overshoot rollback which un-reserves the
// ids of a single discarded closure batch.
type ClosedSet map[int]struct{}

// NewClosedSet returns an empty set.
func NewClosedSet() ClosedSet { return ClosedSet{} }

// Has reports membership.
func (s ClosedSet) Has(id int) bool { _, ok := s[id]; return ok }

// Add reserves an id.
func (s ClosedSet) Add(id int) { s[id] = struct{}{} }

// Discard releases an id during rollback.
func (s ClosedSet) Discard(id int) { delete(s, id) }

// Len returns the number of retired plants.
func (s ClosedSet) Len() int { return len(s) }
