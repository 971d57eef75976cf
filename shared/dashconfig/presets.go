package dashconfig

import "fmt"

// DefaultVariant is the variant started when none is chosen.
const DefaultVariant = VariantDasher

var order = []VariantID{VariantJump, VariantDodge, VariantDasher}

func jumpPreset() Variant {
	return Variant{
		ID:           VariantJump,
		Title:        "Jump",
		Description:  "Scarfy, gravity and a jump button",
		WindowWidth:  800,
		WindowHeight: 450,
		Gravity:      1,
		JumpImpulse:  -20,
		PhysicsStep:  1,
		Character: CharacterTuning{
			Frames: 6,
		},
	}
}

func dodgePreset() Variant {
	return Variant{
		ID:           VariantDodge,
		Title:        "Dodge",
		Description:  "Running animation and two nebulae to jump",
		WindowWidth:  512,
		WindowHeight: 380,
		Gravity:      1000,
		JumpImpulse:  -600,
		Character: CharacterTuning{
			Frames:     6,
			UpdateTime: 1.0 / 12.0,
		},
		Obstacles: ObstacleTuning{
			Count:    2,
			FirstX:   -1,
			Spacing:  300,
			Velocity: -200,
			Columns:  8,
			Rows:     8,
			Frames:   8,
			// Left at zero, which freezes the nebula animation.
			UpdateTime: 0,
		},
		HitboxPadding: 20,
	}
}

func dasherPreset() Variant {
	return Variant{
		ID:           VariantDasher,
		Title:        "Dasher",
		Description:  "Parallax city, six nebulae and a finish line",
		WindowWidth:  512,
		WindowHeight: 380,
		Gravity:      1000,
		JumpImpulse:  -600,
		Character: CharacterTuning{
			Frames:     6,
			UpdateTime: 1.0 / 12.0,
		},
		Obstacles: ObstacleTuning{
			Count:      6,
			FirstX:     -1,
			Spacing:    300,
			Velocity:   -200,
			Columns:    8,
			Rows:       8,
			Frames:     8,
			UpdateTime: 1.0 / 16.0,
		},
		HitboxPadding: 30,
		FinishLine:    true,
		Layers: []LayerTuning{
			{Layer: LayerFar, Texture: FarLayerTexture, Speed: 20},
			{Layer: LayerBack, Texture: BackLayerTexture, Speed: 40},
			{Layer: LayerFore, Texture: ForeLayerTexture, Speed: 80},
		},
	}
}

// Preset returns a fresh copy of the named variant's default tuning.
func Preset(id VariantID) (Variant, error) {
	switch id {
	case VariantJump:
		return jumpPreset(), nil
	case VariantDodge:
		return dodgePreset(), nil
	case VariantDasher:
		return dasherPreset(), nil
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, id)
}

// Presets returns every variant in menu order.
func Presets() []Variant {
	out := make([]Variant, 0, len(order))
	for _, id := range order {
		v, _ := Preset(id)
		out = append(out, v)
	}
	return out
}

// IDs returns the variant identifiers in menu order.
func IDs() []VariantID {
	return append([]VariantID(nil), order...)
}
