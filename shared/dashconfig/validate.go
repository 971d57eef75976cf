package dashconfig

import "fmt"

func invalid(id VariantID, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidVariant, id, fmt.Sprintf(format, args...))
}

// Validate checks the tuning values that do not depend on textures.
func (v Variant) Validate() error {
	if v.WindowWidth <= 0 || v.WindowHeight <= 0 {
		return invalid(v.ID, "window size %dx%d must be positive", v.WindowWidth, v.WindowHeight)
	}
	if v.Character.Frames <= 0 {
		return invalid(v.ID, "character needs at least one frame")
	}
	if v.Character.UpdateTime < 0 || v.Obstacles.UpdateTime < 0 {
		return invalid(v.ID, "update times must not be negative")
	}
	if v.PhysicsStep < 0 {
		return invalid(v.ID, "physics step must not be negative")
	}
	if v.HitboxPadding < 0 {
		return invalid(v.ID, "hitbox padding must not be negative")
	}
	if v.Obstacles.Count < 0 {
		return invalid(v.ID, "obstacle count must not be negative")
	}
	if v.HasObstacles() {
		o := v.Obstacles
		if o.Columns <= 0 || o.Rows <= 0 {
			return invalid(v.ID, "obstacle sheet grid %dx%d must be positive", o.Columns, o.Rows)
		}
		if o.Frames <= 0 || o.Frames > o.Columns {
			return invalid(v.ID, "obstacle frames %d must be within one row of %d columns", o.Frames, o.Columns)
		}
	}
	if v.FinishLine && !v.HasObstacles() {
		return invalid(v.ID, "a finish line needs at least one obstacle")
	}
	seen := map[LayerID]bool{}
	for _, l := range v.Layers {
		if l.Texture == "" {
			return invalid(v.ID, "layer %s has no texture", l.Layer)
		}
		if seen[l.Layer] {
			return invalid(v.ID, "layer %s declared twice", l.Layer)
		}
		seen[l.Layer] = true
	}
	return nil
}

// ValidateSizes checks the tuning against the decoded texture sizes: every
// frame must be non-empty and the hitbox padding must leave a positive
// hitbox for both the character and the obstacles.
func (v Variant) ValidateSizes(s TextureSizes) error {
	if err := v.Validate(); err != nil {
		return err
	}

	cw, ch := v.CharacterFrame(s)
	if cw <= 0 || ch <= 0 {
		return invalid(v.ID, "character frame %vx%v is empty", cw, ch)
	}
	if 2*v.HitboxPadding >= cw || 2*v.HitboxPadding >= ch {
		return invalid(v.ID, "padding %v inverts the %vx%v character hitbox", v.HitboxPadding, cw, ch)
	}

	if v.HasObstacles() {
		ow, oh := v.ObstacleFrame(s)
		if ow <= 0 || oh <= 0 {
			return invalid(v.ID, "obstacle frame %vx%v is empty", ow, oh)
		}
		if 2*v.HitboxPadding >= ow || 2*v.HitboxPadding >= oh {
			return invalid(v.ID, "padding %v inverts the %vx%v obstacle hitbox", v.HitboxPadding, ow, oh)
		}
	}

	for _, l := range v.Layers {
		size, ok := s.Layers[l.Texture]
		if !ok || size.Width <= 0 || size.Height <= 0 {
			return invalid(v.ID, "layer %s texture %s has no size", l.Layer, l.Texture)
		}
	}
	return nil
}
