package gamemath

// OnGround reports whether a sprite of the given height touches or sits
// below the ground line of a window of the given height.
func OnGround(posY, height, windowHeight float32) bool {
	return posY >= windowHeight-height
}

// VerticalBody is the state the integrator needs from a character.
type VerticalBody struct {
	PosY     float32
	Velocity float32
	Airborne bool
}

// IntegrateVertical advances a body by one explicit Euler step.
// Grounded bodies lose all vertical velocity; airborne bodies accelerate by
// gravity. The jump impulse is only honored while the body was grounded at
// the start of the step.
func IntegrateVertical(b VerticalBody, height, windowHeight, gravity, jumpImpulse, dt float32, jumpPressed bool) VerticalBody {
	if OnGround(b.PosY, height, windowHeight) {
		b.Velocity = 0
		b.Airborne = false
	} else {
		b.Velocity += gravity * dt
		b.Airborne = true
	}

	if jumpPressed && !b.Airborne {
		b.Velocity += jumpImpulse
	}

	b.PosY += b.Velocity * dt
	return b
}

// Translate moves a horizontal coordinate at a constant velocity.
func Translate(x, velocity, dt float32) float32 {
	return x + velocity*dt
}
