package dashconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseOverrides applies the section for v.ID of a tuning document to v.
// The document maps variant names to partial Variant values; fields that are
// not mentioned keep their current value, lists are replaced wholesale.
func ParseOverrides(data []byte, v *Variant) error {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse tuning: %w", err)
	}

	node, ok := doc[string(v.ID)]
	if !ok {
		return v.Validate()
	}

	id := v.ID
	if err := node.Decode(v); err != nil {
		return fmt.Errorf("decode tuning for %q: %w", id, err)
	}
	v.ID = id

	return v.Validate()
}

// LoadOverrides reads a tuning file and applies it to v.
func LoadOverrides(path string, v *Variant) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := ParseOverrides(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
