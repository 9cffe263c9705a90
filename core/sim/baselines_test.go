package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfeldner/gridrewind/core/model"
)

func baselineFleet() []model.Plant {
	return []model.Plant{
		{ID: 0, Name: "Alpha", Municipality: "Alphaville", Fuel: model.FuelNuclear, CapacityMW: 1000},
		{ID: 1, Name: "Alpha", Municipality: "Alphaville", Fuel: model.FuelNuclear, CapacityMW: 900},
		{ID: 2, Name: "Oldcoal", Municipality: "Coaltown", Fuel: model.FuelHardCoal, CapacityMW: 300},
		{ID: 3, Name: "Windpark", Municipality: "Coaltown", Fuel: model.FuelOther, CapacityMW: 50},
		{ID: 4, Name: "Closed", Municipality: "Gonetown", Fuel: model.FuelHardCoal, CapacityMW: 200, ClosureYear: model.Year(1995)},
	}
}

func TestSiteBaselinesDeduplicatesKeys(t *testing.T) {
	b := SiteBaselines(baselineFleet(), 2000)

	// Both Alpha units share the same keys; only the first contributes.
	stats, ok := b.Nuclear["Alpha"]
	require.True(t, ok)
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 1000.0, stats.CapacityMW)

	_, ok = b.Nuclear["Alpha (Alphaville)"]
	assert.True(t, ok)

	stats, ok = b.Fossil["Oldcoal (Coaltown)"]
	require.True(t, ok)
	assert.Equal(t, 300.0, stats.CapacityMW)
}

func TestSiteBaselinesSkipsInactiveAndOther(t *testing.T) {
	b := SiteBaselines(baselineFleet(), 2000)
	_, ok := b.Fossil["Closed"]
	assert.False(t, ok)
	_, ok = b.Nuclear["Windpark"]
	assert.False(t, ok)
	_, ok = b.Fossil["Windpark"]
	assert.False(t, ok)
}

func TestMunicipalityBaselinesCountEveryUnit(t *testing.T) {
	b := MunicipalityBaselines(baselineFleet(), 2000)

	stats, ok := b.Nuclear["Alphaville"]
	require.True(t, ok)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 1900.0, stats.CapacityMW)

	stats, ok = b.Fossil["Coaltown"]
	require.True(t, ok)
	assert.Equal(t, 1, stats.Count)
}
