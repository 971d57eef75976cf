package gamemath

// Vec2 is a point in screen space.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect builds a rectangle at pos with the given size.
func NewRect(pos Vec2, width, height float32) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: width, Height: height}
}

// Pad shrinks the rectangle by pad on every side. A negative result size is
// clamped to zero so a degenerate hitbox never overlaps anything.
func (r Rect) Pad(pad float32) Rect {
	out := Rect{
		X:      r.X + pad,
		Y:      r.Y + pad,
		Width:  r.Width - 2*pad,
		Height: r.Height - 2*pad,
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Overlaps reports whether the two rectangles share any area. Rectangles
// that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.Width && r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}
