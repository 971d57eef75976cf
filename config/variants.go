package config

import (
	"fmt"

	"github.com/automoto/dasher/shared/dashconfig"
)

// variants holds the tuned, validated variants the menu can start.
var variants = map[VariantID]Variant{}

// SetVariants replaces the playable variants.
func SetVariants(vs []Variant) {
	variants = make(map[VariantID]Variant, len(vs))
	for _, v := range vs {
		variants[v.ID] = v
	}
}

// VariantByID returns a playable variant, falling back to the preset when
// none was registered.
func VariantByID(id VariantID) (Variant, error) {
	if v, ok := variants[id]; ok {
		return v, nil
	}
	v, err := dashconfig.Preset(id)
	if err != nil {
		return Variant{}, fmt.Errorf("variant %q: %w", id, err)
	}
	return v, nil
}
