package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfeldner/gridrewind/core/model"
)

func allocatorFleet() []model.Plant {
	return []model.Plant{
		{ID: 0, Name: "Alpha", Municipality: "Alphaville", Fuel: model.FuelNuclear, CapacityMW: 1000, CommissionYear: model.Year(1975)},
		{ID: 1, Name: "Beta 1", Municipality: "Betadorf", Fuel: model.FuelNuclear, CapacityMW: 900, CommissionYear: model.Year(1978)},
		{ID: 2, Name: "Beta 2", Municipality: "Betadorf", Fuel: model.FuelNuclear, CapacityMW: 900, CommissionYear: model.Year(1982)},
		{ID: 3, Name: "Oldcoal", Municipality: "Coaltown", Fuel: model.FuelHardCoal, CapacityMW: 300, CommissionYear: model.Year(1960)},
	}
}

func TestAllocatorSeedsBaselineCounters(t *testing.T) {
	a := newSiteAllocator(allocatorFleet(), nil, 2000)
	assert.Equal(t, []string{"Alphaville", "Betadorf"}, a.baselineSites)
	assert.Equal(t, 1, a.counter["Alphaville"])
	assert.Equal(t, 2, a.counter["Betadorf"])
}

func TestLeastUsedBaselineSite(t *testing.T) {
	a := newSiteAllocator(allocatorFleet(), nil, 2000)
	assert.Equal(t, "Alphaville", a.leastUsedBaselineSite())

	// Ties break alphabetically.
	a.counter["Alphaville"] = 2
	assert.Equal(t, "Alphaville", a.leastUsedBaselineSite())

	a.counter["Alphaville"] = 3
	assert.Equal(t, "Betadorf", a.leastUsedBaselineSite())
}

func TestAllocatePlannedQueueFirst(t *testing.T) {
	planned := []model.PlannedSite{
		{Site: "Hamm", Display: "Hamm (Konvoi)", Municipality: "Hamm-Uentrop"},
		{Site: "Biblis", Display: "Biblis (Konvoi)", Municipality: "Biblis"},
	}
	a := newSiteAllocator(allocatorFleet(), planned, 2000)

	label, muni := a.allocate(0, nil)
	assert.Equal(t, "Hamm (Konvoi)", label)
	assert.Equal(t, "Hamm-Uentrop", muni)

	label, muni = a.allocate(1, nil)
	assert.Equal(t, "Biblis (Konvoi)", label)
	assert.Equal(t, "Biblis", muni)
}

func TestAllocatePrefersLeastUsedExistingSite(t *testing.T) {
	a := newSiteAllocator(allocatorFleet(), nil, 2000)

	label, muni := a.allocate(0, nil)
	assert.Equal(t, "Alphaville", label)
	assert.Equal(t, "Alphaville", muni)
	a.claimUnit(label, muni)

	// Alphaville and Betadorf are now level; the tie goes alphabetically.
	label, _ = a.allocate(1, nil)
	assert.Equal(t, "Alphaville", label)
	a.claimUnit(label, label)

	label, _ = a.allocate(2, nil)
	assert.Equal(t, "Betadorf", label)
	a.claimUnit(label, label)
}

func TestAllocateFallsBackToClosedMunicipality(t *testing.T) {
	a := newSiteAllocator(allocatorFleet(), nil, 2000)
	// Burn through the three existing-site slots of the pattern.
	for i := 0; i < 3; i++ {
		label, muni := a.allocate(i, nil)
		a.claimUnit(label, muni)
	}

	closings := []model.Plant{{ID: 3, Name: "Oldcoal", Municipality: "Coaltown", Fuel: model.FuelHardCoal, CapacityMW: 300}}
	label, muni := a.allocate(3, closings)
	assert.Equal(t, "Coaltown", label)
	assert.Equal(t, "Coaltown", muni)
}

func TestAllocateRoundRobinWithoutClosings(t *testing.T) {
	a := newSiteAllocator(allocatorFleet(), nil, 2000)
	for i := 0; i < 3; i++ {
		label, muni := a.allocate(i, nil)
		a.claimUnit(label, muni)
	}

	label, muni := a.allocate(4, nil)
	// nuclearSites[4%3] is Beta 1, whose municipality is Betadorf.
	assert.Equal(t, "Betadorf", label)
	assert.Equal(t, "Betadorf", muni)
}

func TestAllocateGenericFallback(t *testing.T) {
	a := newSiteAllocator(nil, nil, 2000)
	label, _ := a.allocate(0, nil)
	assert.Equal(t, "Generic Nuclear Complex", label)
}

func TestClaimUnitNumbersPerSite(t *testing.T) {
	a := newSiteAllocator(allocatorFleet(), nil, 2000)
	require.Equal(t, 2, a.claimUnit("Alphaville", "Alphaville"))
	require.Equal(t, 3, a.claimUnit("Alphaville", "Alphaville"))
	// Municipality keys the counter; the label is only a fallback.
	require.Equal(t, 3, a.claimUnit("Betadorf (Konvoi)", "Betadorf"))
	require.Equal(t, 1, a.claimUnit("Greenfield", ""))
}
