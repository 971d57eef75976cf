package sim

import (
	"github.com/automoto/dasher/shared/gamemath"
	sc "github.com/automoto/dasher/shared/simcomponents"
	"github.com/automoto/dasher/tags"
	"github.com/yohamta/donburi"
)

// Input is what the simulation needs from the player for one step.
type Input struct {
	// Jump is true only on the step the jump key went down.
	Jump bool
}

// Step advances the world by dt seconds. The order is fixed: scroll,
// character physics and animation, obstacles and finish line, collision,
// outcome. Terminal outcomes keep the simulation running; only the run clock
// stops.
func Step(w donburi.World, dt float32, in Input) {
	run, ok := sc.Variant.First(w)
	if !ok {
		return
	}
	variant := sc.Variant.Get(run)
	outcome := sc.Outcome.Get(run)
	wasPlaying := outcome.State == sc.Playing

	updateScroll(w, dt)
	jumped := updateCharacter(w, variant, dt, in)
	updateObstacles(w, dt)
	updateFinishLine(w, dt)
	if detectCollision(w, variant.HitboxPadding) {
		outcome.Collided = true
	}
	updateOutcome(w, outcome)

	outcome.Frames++
	if wasPlaying {
		outcome.Elapsed += dt
		if jumped {
			outcome.Jumps++
		}
	}
}

func updateScroll(w donburi.World, dt float32) {
	sc.ScrollLayer.Each(w, func(e *donburi.Entry) {
		l := sc.ScrollLayer.Get(e)
		l.Offset = gamemath.Scroll(l.Offset, l.Speed, l.TextureWidth, dt)
	})
}

// updateCharacter integrates gravity and the jump and advances the running
// animation, which only plays while the character is on the ground. It
// reports whether a jump impulse was applied.
func updateCharacter(w donburi.World, v *sc.VariantData, dt float32, in Input) bool {
	e, ok := tags.Character.First(w)
	if !ok {
		return false
	}
	sprite := sc.Sprite.Get(e)
	char := sc.Character.Get(e)

	step := dt
	if v.PhysicsStep > 0 {
		step = v.PhysicsStep
	}

	wh := float32(v.WindowHeight)
	grounded := gamemath.OnGround(sprite.Pos.Y, sprite.Source.Height, wh)

	body := gamemath.IntegrateVertical(gamemath.VerticalBody{
		PosY:     sprite.Pos.Y,
		Velocity: char.Velocity,
		Airborne: char.Airborne,
	}, sprite.Source.Height, wh, v.Gravity, v.JumpImpulse, step, in.Jump)

	sprite.Pos.Y = body.PosY
	char.Velocity = body.Velocity
	char.Airborne = body.Airborne

	if !char.Airborne {
		if x, ok := sprite.Clock.Advance(dt, sprite.Source.Width); ok {
			sprite.Source.X = x
		}
	}

	return in.Jump && grounded
}

func updateObstacles(w donburi.World, dt float32) {
	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		sprite := sc.Sprite.Get(e)
		obstacle := sc.Obstacle.Get(e)

		sprite.Pos.X = gamemath.Translate(sprite.Pos.X, obstacle.Velocity, dt)
		if x, ok := sprite.Clock.Advance(dt, sprite.Source.Width); ok {
			sprite.Source.X = x
		}
	})
}

func updateFinishLine(w donburi.World, dt float32) {
	if e, ok := tags.FinishLine.First(w); ok {
		f := sc.FinishLine.Get(e)
		f.X = gamemath.Translate(f.X, f.Velocity, dt)
	}
}

// updateOutcome moves a Playing run to Lost or Won. A collision wins over
// crossing the finish line on the same step.
func updateOutcome(w donburi.World, o *sc.OutcomeData) {
	if o.State.Terminal() {
		return
	}
	if o.Collided {
		o.State = sc.Lost
		return
	}

	finish, ok := tags.FinishLine.First(w)
	if !ok {
		return
	}
	char, ok := tags.Character.First(w)
	if !ok {
		return
	}
	if sc.Sprite.Get(char).Pos.X >= sc.FinishLine.Get(finish).X {
		o.State = sc.Won
	}
}
