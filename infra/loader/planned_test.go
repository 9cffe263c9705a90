package loader

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfeldner/gridrewind/core/model"
)

func TestReadPlannedSites(t *testing.T) {
	plants := []model.Plant{
		{Name: "KKW Biblis A", Municipality: "Biblis", Fuel: model.FuelNuclear},
		{Name: "Kraftwerk Essen", Municipality: "Essen", Fuel: model.FuelHardCoal},
	}

	input := "Biblis\nHamm\nLingen Konvoi\n\nUnbekannt\n"
	sites, err := ReadPlannedSites(strings.NewReader(input), plants)
	require.NoError(t, err)
	require.Len(t, sites, 4)

	// Registry match wins.
	assert.Equal(t, "Biblis", sites[0].Site)
	assert.Equal(t, "Biblis (Konvoi)", sites[0].Display)
	assert.Equal(t, "Biblis", sites[0].Municipality)

	// No registry match, known fallback municipality.
	assert.Equal(t, "Hamm-Uentrop", sites[1].Municipality)
	assert.Equal(t, "Hamm (Konvoi)", sites[1].Display)

	// Names already tagged Konvoi keep their display unchanged.
	assert.Equal(t, "Lingen Konvoi", sites[2].Display)

	// Unknown everywhere falls back to the site name itself.
	assert.Equal(t, "Unbekannt", sites[3].Municipality)
}

func TestResolveMunicipalityPrefersContainingCandidate(t *testing.T) {
	plants := []model.Plant{
		{Name: "Kraftwerk Borken I", Municipality: "Borken (Hessen)"},
		{Name: "Borkener Fernleitung", Municipality: "Essen"},
	}
	assert.Equal(t, "Borken (Hessen)", resolveMunicipality("Borken", plants))
}

func TestResolveMunicipalitySingleCandidate(t *testing.T) {
	plants := []model.Plant{
		{Name: "KKW Pleinting", Municipality: "Vilshofen an der Donau"},
	}
	assert.Equal(t, "Vilshofen an der Donau", resolveMunicipality("Pleinting", plants))
}

func TestLoadPlannedSitesMissingFile(t *testing.T) {
	sites, err := LoadPlannedSites(filepath.Join(t.TempDir(), "absent.txt"), nil)
	require.NoError(t, err)
	assert.Nil(t, sites)
}
