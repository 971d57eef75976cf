package gamemath

// FrameClock is the timing half of an animated sprite.
type FrameClock struct {
	Frame       int
	FrameCount  int
	UpdateTime  float32 // seconds each frame stays on screen
	RunningTime float32 // seconds since the last frame change
}

// Advance accumulates dt and, once a full frame duration has elapsed,
// returns the source x offset for the frame being shown and moves on to the
// next frame. ok is false when no frame change happened.
//
// A clock with no update time or no frames never changes frame.
func (c *FrameClock) Advance(dt, frameWidth float32) (sourceX float32, ok bool) {
	if c.UpdateTime <= 0 || c.FrameCount <= 0 {
		return 0, false
	}

	c.RunningTime += dt
	if c.RunningTime < c.UpdateTime {
		return 0, false
	}

	c.RunningTime = 0
	sourceX = float32(c.Frame) * frameWidth
	c.Frame = (c.Frame + 1) % c.FrameCount
	return sourceX, true
}
