package gamemath

// BackgroundScale is the scale parallax textures are drawn at.
const BackgroundScale = 2

// Scroll moves a parallax offset left by speed*dt and wraps it back to zero
// once two scaled copies' worth of texture has gone by.
func Scroll(offset, speed, textureWidth, dt float32) float32 {
	offset -= speed * dt
	if offset <= -BackgroundScale*textureWidth {
		offset = 0
	}
	return offset
}

// TileOffsets returns the x positions of the two copies drawn to fill the
// screen for a layer at the given offset.
func TileOffsets(offset, textureWidth float32) (first, second float32) {
	return offset, offset + BackgroundScale*textureWidth
}
