package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFossilBreakdownAccess(t *testing.T) {
	b := FossilBreakdown{HardCoalMW: 400, LigniteMW: 100, NaturalGasMW: 500, OilMW: 50}
	assert.Equal(t, 1050.0, b.Total())
	assert.Equal(t, 400.0, b.Get(FuelHardCoal))
	assert.Equal(t, 0.0, b.Get(FuelNuclear))

	b.Add(FuelNaturalGas, -100)
	assert.Equal(t, 400.0, b.NaturalGasMW)

	// Deltas below zero floor at zero instead of going negative.
	b.Add(FuelOil, -500)
	assert.Equal(t, 0.0, b.OilMW)

	// Non-fossil buckets are ignored.
	b.Add(FuelNuclear, 100)
	assert.Equal(t, 900.0, b.Total())
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 1410.6, Round1(1410.649))
	assert.Equal(t, 1410.7, Round1(1410.65))
	assert.Equal(t, 12.11, Round2(12.1149))
	assert.Equal(t, -3.1, Round1(-3.14))
}

func TestClosedSet(t *testing.T) {
	s := NewClosedSet()
	assert.False(t, s.Has(3))
	s.Add(3)
	s.Add(7)
	assert.True(t, s.Has(3))
	assert.Equal(t, 2, s.Len())
	s.Discard(3)
	assert.False(t, s.Has(3))
	assert.Equal(t, 1, s.Len())
}
