package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shashiranjanraj/nightcap/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPresets(t *testing.T) {
	cat := catalog.Default()

	beer, ok := cat.Preset(catalog.DrinkBeer)
	require.True(t, ok)
	assert.Equal(t, 5.0, beer.ABV)
	assert.Equal(t, 12.0, beer.VolumeOz)

	shot, ok := cat.Preset(catalog.DrinkShotSpirit)
	require.True(t, ok)
	assert.Equal(t, 40.0, shot.ABV)
	assert.Equal(t, 1.5, shot.VolumeOz)

	// Mixed families share the base-spirit numbers.
	mixed, _ := cat.Preset(catalog.DrinkMixed)
	diet, _ := cat.Preset(catalog.DrinkMixedDiet)
	assert.Equal(t, shot.ABV, mixed.ABV)
	assert.Equal(t, shot.VolumeOz, diet.VolumeOz)

	_, ok = cat.Preset("mead")
	assert.False(t, ok)
}

func TestDefaultMETs(t *testing.T) {
	cat := catalog.Default()

	met, ok := cat.MET("running")
	require.True(t, ok)
	assert.Equal(t, 8.0, met)

	_, ok = cat.MET("parkour")
	assert.False(t, ok)

	assert.Len(t, cat.METs, 5)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)
	assert.Equal(t, catalog.Default(), cat)
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mets": {"rowing": 7.0}}`), 0o600))

	cat, err := catalog.Load(path)
	require.NoError(t, err)

	met, ok := cat.MET("rowing")
	require.True(t, ok)
	assert.Equal(t, 7.0, met)

	// Drinks section untouched, MET table replaced wholesale.
	_, ok = cat.MET("running")
	assert.False(t, ok)
	_, ok = cat.Preset(catalog.DrinkBeer)
	assert.True(t, ok)
}

func TestLoadBadFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = catalog.Load(path)
	assert.Error(t, err)
}
