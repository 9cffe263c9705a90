package closure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfeldner/gridrewind/core/model"
)

func threePlants() []model.Plant {
	return []model.Plant{
		{ID: 1, Name: "A", Fuel: model.FuelLignite, CapacityMW: 200, CommissionYear: model.Year(1980)},
		{ID: 2, Name: "B", Fuel: model.FuelNaturalGas, CapacityMW: 150, CommissionYear: model.Year(1995)},
		{ID: 3, Name: "C", Fuel: model.FuelOil, CapacityMW: 50, CommissionYear: model.Year(1970), ClosureYear: model.Year(2000)},
	}
}

func TestSelectPrefersHighCarbonOldest(t *testing.T) {
	sel := NewSelector(threePlants())
	closed := model.NewClosedSet()
	closings, total := sel.Select(1990, 200, 10000, closed)
	require.Len(t, closings, 1)
	assert.Equal(t, "A", closings[0].Name)
	assert.InDelta(t, 200, total, 1e-9)
	assert.True(t, closed.Has(1))
}

func TestSelectSkipsExpiredAndOversized(t *testing.T) {
	sel := NewSelector(threePlants())
	closed := model.NewClosedSet()
	// C already closed before 2001; B's 150 MW exceeds the 50 MW left after A.
	closings, total := sel.Select(2001, 250, 10000, closed)
	require.Len(t, closings, 1)
	assert.Equal(t, "A", closings[0].Name)
	assert.InDelta(t, 200, total, 1e-9)
	assert.False(t, closed.Has(2))
	assert.False(t, closed.Has(3))
}

func TestSelectNoTargetOrNoFleet(t *testing.T) {
	sel := NewSelector(threePlants())
	closed := model.NewClosedSet()

	closings, total := sel.Select(1990, 0, 1000, closed)
	assert.Empty(t, closings)
	assert.Zero(t, total)

	closings, total = sel.Select(1990, 100, 0, closed)
	assert.Empty(t, closings)
	assert.Zero(t, total)
	assert.Zero(t, closed.Len())
}

func TestSelectNeverReusesClosedPlants(t *testing.T) {
	sel := NewSelector(threePlants())
	closed := model.NewClosedSet()

	first, total := sel.Select(1990, 50, 10000, closed)
	require.Len(t, first, 1)
	assert.Equal(t, "C", first[0].Name)
	assert.InDelta(t, 50, total, 1e-9)

	// Same call again: C is reserved, nothing else fits 50 MW.
	second, total := sel.Select(1990, 50, 10000, closed)
	assert.Empty(t, second)
	assert.Zero(t, total)
}

func TestSelectCapsAtRunningFossil(t *testing.T) {
	sel := NewSelector(threePlants())
	closed := model.NewClosedSet()
	closings, total := sel.Select(1990, 200, 120, closed)
	require.Len(t, closings, 1)
	assert.InDelta(t, 120, total, 1e-9)
}

func TestSelectSkipsNotYetCommissioned(t *testing.T) {
	sel := NewSelector(threePlants())
	closed := model.NewClosedSet()
	// In 1990 only A and C exist; B is commissioned 1995.
	closings, total := sel.Select(1990, 150, 10000, closed)
	require.Len(t, closings, 1)
	assert.Equal(t, "C", closings[0].Name)
	assert.InDelta(t, 50, total, 1e-9)
}

func TestHeatPlantsLandInFallbackPool(t *testing.T) {
	plants := append(threePlants(),
		model.Plant{ID: 4, Name: "HKW Mitte", Fuel: model.FuelHardCoal, CapacityMW: 100, CommissionYear: model.Year(1960)},
	)
	sel := NewSelector(plants)
	primary, fallback := sel.PoolSizes()
	assert.Equal(t, 3, primary)
	assert.Equal(t, 1, fallback)

	// Even though HKW Mitte is the oldest coal plant, the primary pool wins.
	closed := model.NewClosedSet()
	closings, _ := sel.Select(1990, 100, 10000, closed)
	require.NotEmpty(t, closings)
	assert.NotEqual(t, "HKW Mitte", closings[0].Name)
}

func TestFallbackPoolUsedWhenPrimaryExhausted(t *testing.T) {
	plants := []model.Plant{
		{ID: 1, Name: "Kraftwerk Nord", Fuel: model.FuelHardCoal, CapacityMW: 400, CommissionYear: model.Year(1970)},
		{ID: 2, Name: "Fernwärme Süd", Fuel: model.FuelHardCoal, CapacityMW: 100, CommissionYear: model.Year(1965)},
	}
	sel := NewSelector(plants)
	closed := model.NewClosedSet()
	closings, total := sel.Select(1990, 500, 10000, closed)
	require.Len(t, closings, 2)
	assert.Equal(t, "Kraftwerk Nord", closings[0].Name)
	assert.Equal(t, "Fernwärme Süd", closings[1].Name)
	assert.InDelta(t, 500, total, 1e-9)
}

func TestPoolOrderingTieBreakChain(t *testing.T) {
	plants := []model.Plant{
		{ID: 1, Name: "Gas neu", Fuel: model.FuelNaturalGas, CapacityMW: 100, CommissionYear: model.Year(1960)},
		{ID: 2, Name: "Öl alt", Fuel: model.FuelOil, CapacityMW: 100, CommissionYear: model.Year(1980)},
		{ID: 3, Name: "Kohle gross", Fuel: model.FuelHardCoal, CapacityMW: 300, CommissionYear: model.Year(1975)},
		{ID: 4, Name: "Kohle klein", Fuel: model.FuelHardCoal, CapacityMW: 100, CommissionYear: model.Year(1975)},
		{ID: 5, Name: "Kohle undatiert", Fuel: model.FuelHardCoal, CapacityMW: 50},
	}
	sel := NewSelector(plants)

	order := make([]int, 0, len(sel.primary))
	for _, p := range sel.primary {
		order = append(order, p.ID)
	}
	// Coal first (small before large on equal year), missing commission year
	// last within coal, then oil, then gas.
	assert.Equal(t, []int{4, 3, 5, 2, 1}, order)
}
