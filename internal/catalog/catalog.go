// Package catalog is the closed enumeration of drink presets and exercise
// types. The tables are configuration data: built-in defaults that can be
// replaced wholesale by a JSON file named in CATALOG_PATH.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Drink type keys with construction policy attached to them elsewhere.
const (
	DrinkBeer       = "beer"
	DrinkIPA        = "ipa"
	DrinkWine       = "wine"
	DrinkShotSpirit = "shot_spirit"
	DrinkMixed      = "mixed_drink"
	DrinkMixedDiet  = "mixed_drink_diet"
)

// DrinkPreset is a named, fixed ABV/volume template for a common drink type.
type DrinkPreset struct {
	Name     string  `json:"name"`
	ABV      float64 `json:"abv"`
	VolumeOz float64 `json:"volume_oz"`
}

// Catalog bundles the drink presets and the exercise MET table.
type Catalog struct {
	Drinks map[string]DrinkPreset `json:"drinks"`
	METs   map[string]float64     `json:"mets"`
}

// Default returns the built-in tables.
func Default() *Catalog {
	return &Catalog{
		Drinks: map[string]DrinkPreset{
			DrinkBeer:       {Name: "Standard Beer", ABV: 5.0, VolumeOz: 12.0},
			DrinkIPA:        {Name: "Imperial Pale Ale", ABV: 7.0, VolumeOz: 12.0},
			DrinkWine:       {Name: "Standard Wine", ABV: 12.0, VolumeOz: 5.0},
			DrinkShotSpirit: {Name: "Shot (Spirit)", ABV: 40.0, VolumeOz: 1.5},
			// Mixed families are pinned to the base spirit for the
			// alcohol-calorie math regardless of served volume.
			DrinkMixed:     {Name: "Mixed Drink (Base Spirit)", ABV: 40.0, VolumeOz: 1.5},
			DrinkMixedDiet: {Name: "Mixed Drink (Diet Base Spirit)", ABV: 40.0, VolumeOz: 1.5},
		},
		METs: map[string]float64{
			"walking":           3.5,
			"running":           8.0,
			"biking":            6.0,
			"swimming":          7.0,
			"strength_training": 4.5,
		},
	}
}

// Load returns the default catalog overridden by the JSON file at path.
// An empty path returns the defaults unchanged.
func Load(path string) (*Catalog, error) {
	cat := Default()
	if path == "" {
		return cat, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var override Catalog
	if err := json.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", path, err)
	}

	if len(override.Drinks) > 0 {
		cat.Drinks = override.Drinks
	}
	if len(override.METs) > 0 {
		cat.METs = override.METs
	}
	return cat, nil
}

// Preset looks up a drink preset by its type key.
func (c *Catalog) Preset(drinkType string) (DrinkPreset, bool) {
	p, ok := c.Drinks[drinkType]
	return p, ok
}

// MET looks up the MET value for an exercise type.
func (c *Catalog) MET(exerciseType string) (float64, bool) {
	m, ok := c.METs[exerciseType]
	return m, ok
}
