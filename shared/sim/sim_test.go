package sim

import (
	"errors"
	"testing"

	"github.com/automoto/dasher/shared/dashconfig"
	sc "github.com/automoto/dasher/shared/simcomponents"
	"github.com/automoto/dasher/tags"
	"github.com/yohamta/donburi"
)

const frameDt = float32(1.0 / 60.0)

func testSizes() dashconfig.TextureSizes {
	return dashconfig.TextureSizes{
		Character: dashconfig.Size{Width: 768, Height: 128},
		Obstacle:  dashconfig.Size{Width: 800, Height: 800},
		Layers: map[string]dashconfig.Size{
			dashconfig.FarLayerTexture:  {Width: 256, Height: 192},
			dashconfig.BackLayerTexture: {Width: 256, Height: 192},
			dashconfig.ForeLayerTexture: {Width: 352, Height: 192},
		},
	}
}

func newWorld(t *testing.T, id dashconfig.VariantID) donburi.World {
	t.Helper()
	v, err := dashconfig.Preset(id)
	if err != nil {
		t.Fatalf("Preset(%s) = %v", id, err)
	}
	w := donburi.NewWorld()
	if err := Setup(w, v, testSizes()); err != nil {
		t.Fatalf("Setup(%s) = %v", id, err)
	}
	return w
}

func outcome(t *testing.T, w donburi.World) *sc.OutcomeData {
	t.Helper()
	_, o, ok := Run(w)
	if !ok {
		t.Fatal("world has no run singleton")
	}
	return o
}

func character(t *testing.T, w donburi.World) (*sc.SpriteData, *sc.CharacterData) {
	t.Helper()
	e, ok := Character(w)
	if !ok {
		t.Fatal("world has no character")
	}
	return sc.Sprite.Get(e), sc.Character.Get(e)
}

func finishLine(t *testing.T, w donburi.World) *sc.FinishLineData {
	t.Helper()
	e, ok := tags.FinishLine.First(w)
	if !ok {
		t.Fatal("world has no finish line")
	}
	return sc.FinishLine.Get(e)
}

// liftObstacles moves every obstacle far above the window so none can hit.
func liftObstacles(w donburi.World) {
	for _, e := range Obstacles(w) {
		sc.Sprite.Get(e).Pos.Y = -1000
	}
}

func TestSetupDasherLayout(t *testing.T) {
	w := newWorld(t, dashconfig.VariantDasher)

	sprite, _ := character(t, w)
	if sprite.Pos.X != 192 || sprite.Pos.Y != 252 {
		t.Errorf("character at %+v, want (192, 252)", sprite.Pos)
	}

	want := []float32{512, 812, 1112, 1412, 1712, 2012}
	obstacles := Obstacles(w)
	if len(obstacles) != len(want) {
		t.Fatalf("got %d obstacles, want %d", len(obstacles), len(want))
	}
	for i, e := range obstacles {
		s := sc.Sprite.Get(e)
		if s.Pos.X != want[i] {
			t.Errorf("obstacle %d x = %v, want %v", i, s.Pos.X, want[i])
		}
		if s.Pos.Y != 280 {
			t.Errorf("obstacle %d y = %v, want 280", i, s.Pos.Y)
		}
	}

	finish, ok := FinishLine(w)
	if !ok || finish != 2012 {
		t.Errorf("FinishLine() = %v, %v, want 2012, true", finish, ok)
	}

	layers := Layers(w)
	if len(layers) != 3 {
		t.Fatalf("got %d layers, want 3", len(layers))
	}
	for i, e := range layers {
		if got := sc.ScrollLayer.Get(e).Layer; got != dashconfig.LayerID(i) {
			t.Errorf("layer %d = %s", i, got)
		}
	}

	if o := outcome(t, w); o.State != sc.Playing || o.Collided {
		t.Errorf("initial outcome = %+v", o)
	}
	if _, ok := Space(w); !ok {
		t.Error("world has no collision space")
	}
}

func TestSetupJumpHasNoScenery(t *testing.T) {
	w := newWorld(t, dashconfig.VariantJump)

	if n := len(Obstacles(w)); n != 0 {
		t.Errorf("got %d obstacles, want 0", n)
	}
	if _, ok := FinishLine(w); ok {
		t.Error("jump variant has a finish line")
	}
	if n := len(Layers(w)); n != 0 {
		t.Errorf("got %d layers, want 0", n)
	}

	sprite, _ := character(t, w)
	if sprite.Pos.X != 336 || sprite.Pos.Y != 322 {
		t.Errorf("character at %+v, want (336, 322)", sprite.Pos)
	}
}

func TestSetupRejectsInvertedHitbox(t *testing.T) {
	v, _ := dashconfig.Preset(dashconfig.VariantDasher)
	v.HitboxPadding = 64
	err := Setup(donburi.NewWorld(), v, testSizes())
	if !errors.Is(err, dashconfig.ErrInvalidVariant) {
		t.Fatalf("Setup() = %v, want ErrInvalidVariant", err)
	}
}

func TestGroundedCharacterStaysPut(t *testing.T) {
	w := newWorld(t, dashconfig.VariantDasher)
	liftObstacles(w)

	for i := 0; i < 30; i++ {
		Step(w, frameDt, Input{})
		sprite, char := character(t, w)
		if char.Velocity != 0 || char.Airborne {
			t.Fatalf("step %d: velocity %v airborne %v", i, char.Velocity, char.Airborne)
		}
		if sprite.Pos.Y != 252 {
			t.Fatalf("step %d: y = %v, want 252", i, sprite.Pos.Y)
		}
	}
}

func TestJumpScenarioPerFrameUnits(t *testing.T) {
	w := newWorld(t, dashconfig.VariantJump)

	Step(w, frameDt, Input{Jump: true})
	sprite, char := character(t, w)
	if char.Velocity != -20 {
		t.Fatalf("velocity after jump = %v, want -20", char.Velocity)
	}
	if sprite.Pos.Y != 302 {
		t.Fatalf("y after jump = %v, want 302", sprite.Pos.Y)
	}

	for want := float32(-19); want <= 20; want++ {
		// Pressing jump in the air must not change anything.
		Step(w, frameDt, Input{Jump: want == -10})
		_, char = character(t, w)
		if char.Velocity != want {
			t.Fatalf("velocity = %v, want %v", char.Velocity, want)
		}
		if !char.Airborne {
			t.Fatalf("velocity %v: not airborne", want)
		}
	}

	sprite, _ = character(t, w)
	if sprite.Pos.Y != 322 {
		t.Fatalf("landing y = %v, want 322", sprite.Pos.Y)
	}

	Step(w, frameDt, Input{})
	_, char = character(t, w)
	if char.Velocity != 0 || char.Airborne {
		t.Fatalf("after landing: velocity %v airborne %v", char.Velocity, char.Airborne)
	}
	if o := outcome(t, w); o.Jumps != 1 {
		t.Errorf("Jumps = %d, want 1", o.Jumps)
	}
}

func TestCharacterAnimatesOnlyOnGround(t *testing.T) {
	w := newWorld(t, dashconfig.VariantDasher)
	liftObstacles(w)
	dt := float32(1.0 / 12.0)

	for k := 1; k <= 8; k++ {
		Step(w, dt, Input{})
		sprite, _ := character(t, w)
		if want := float32((k-1)%6) * 128; sprite.Source.X != want {
			t.Fatalf("step %d: source x = %v, want %v", k, sprite.Source.X, want)
		}
		if want := k % 6; sprite.Clock.Frame != want {
			t.Fatalf("step %d: frame = %d, want %d", k, sprite.Clock.Frame, want)
		}
	}

	Step(w, dt, Input{Jump: true})
	sprite, _ := character(t, w)
	frame := sprite.Clock.Frame
	Step(w, dt, Input{})
	sprite, char := character(t, w)
	if !char.Airborne {
		t.Fatal("character did not leave the ground")
	}
	if sprite.Clock.Frame != frame {
		t.Errorf("frame changed mid-air: %d -> %d", frame, sprite.Clock.Frame)
	}
}

func TestDodgeObstacleAnimationFrozen(t *testing.T) {
	w := newWorld(t, dashconfig.VariantDodge)

	for i := 0; i < 120; i++ {
		Step(w, frameDt, Input{})
	}
	for i, e := range Obstacles(w) {
		s := sc.Sprite.Get(e)
		if s.Clock.Frame != 0 || s.Source.X != 0 {
			t.Errorf("obstacle %d animated: frame %d source x %v", i, s.Clock.Frame, s.Source.X)
		}
	}
}

func TestDasherObstaclesAnimate(t *testing.T) {
	w := newWorld(t, dashconfig.VariantDasher)
	dt := float32(1.0 / 16.0)

	Step(w, dt, Input{})
	Step(w, dt, Input{})
	for i, e := range Obstacles(w) {
		s := sc.Sprite.Get(e)
		if s.Clock.Frame != 2 || s.Source.X != 100 {
			t.Errorf("obstacle %d: frame %d source x %v, want 2 and 100", i, s.Clock.Frame, s.Source.X)
		}
	}
}

func TestFinishLineTracksLastObstacle(t *testing.T) {
	w := newWorld(t, dashconfig.VariantDasher)

	for i := 0; i < 300; i++ {
		Step(w, frameDt, Input{})
		obstacles := Obstacles(w)
		last := sc.Sprite.Get(obstacles[len(obstacles)-1]).Pos.X
		finish, _ := FinishLine(w)
		if finish != last {
			t.Fatalf("step %d: finish %v != last obstacle %v", i, finish, last)
		}
		for j := 1; j < len(obstacles); j++ {
			if sc.Sprite.Get(obstacles[j-1]).Pos.X >= sc.Sprite.Get(obstacles[j]).Pos.X {
				t.Fatalf("step %d: obstacle order broken at %d", i, j)
			}
		}
	}
}

func TestCollisionLosesAndStays(t *testing.T) {
	w := newWorld(t, dashconfig.VariantDasher)

	lostAt := -1
	for i := 0; i < 400; i++ {
		Step(w, frameDt, Input{})
		o := outcome(t, w)
		if lostAt < 0 && o.Collided {
			lostAt = i
			if o.State != sc.Lost {
				t.Fatalf("collided but state = %s", o.State)
			}
			x := sc.Sprite.Get(Obstacles(w)[0]).Pos.X
			if x >= 260 {
				t.Fatalf("collided with obstacle at x %v, padded boxes do not overlap", x)
			}
		}
		if lostAt >= 0 && (!o.Collided || o.State != sc.Lost) {
			t.Fatalf("step %d: outcome changed after loss: %+v", i, o)
		}
	}
	if lostAt < 0 {
		t.Fatal("never collided with an obstacle running straight at the character")
	}
}

func TestNearMissIsForgiven(t *testing.T) {
	w := newWorld(t, dashconfig.VariantDasher)
	obstacles := Obstacles(w)

	// Sprite edges overlap by 50px, padded cores do not.
	sc.Sprite.Get(obstacles[0]).Pos.X = 192 + 128 - 50
	Step(w, 0, Input{})

	if o := outcome(t, w); o.Collided {
		t.Fatalf("near miss counted as collision: %+v", o)
	}
}

func TestWinWithoutCollision(t *testing.T) {
	w := newWorld(t, dashconfig.VariantDasher)
	liftObstacles(w)

	var elapsed float32
	won := false
	for i := 0; i < 700; i++ {
		Step(w, frameDt, Input{})
		o := outcome(t, w)
		if !won && o.State == sc.Won {
			won = true
			elapsed = o.Elapsed
			finish, _ := FinishLine(w)
			if finish > 192 {
				t.Fatalf("won with finish line still at %v", finish)
			}
		}
	}
	o := outcome(t, w)
	if !won || o.State != sc.Won {
		t.Fatalf("outcome = %+v, want Won", o)
	}
	if o.Collided {
		t.Fatal("won run reports a collision")
	}
	if o.Elapsed != elapsed {
		t.Errorf("run clock kept running after win: %v -> %v", elapsed, o.Elapsed)
	}
	if o.Frames != 700 {
		t.Errorf("Frames = %d, want 700", o.Frames)
	}
}

func TestCollisionAfterWinKeepsWin(t *testing.T) {
	w := newWorld(t, dashconfig.VariantDasher)
	liftObstacles(w)
	finish := finishLine(t, w)
	finish.X = 193

	Step(w, frameDt, Input{})
	if o := outcome(t, w); o.State != sc.Won {
		t.Fatalf("state = %s, want won", o.State)
	}

	s := sc.Sprite.Get(Obstacles(w)[0])
	s.Pos.X, s.Pos.Y = 200, 280
	Step(w, frameDt, Input{})

	o := outcome(t, w)
	if !o.Collided {
		t.Fatal("collision after win not flagged")
	}
	if o.State != sc.Won {
		t.Fatalf("state = %s, want won", o.State)
	}
}

func TestCollisionBeatsFinishOnSameStep(t *testing.T) {
	w := newWorld(t, dashconfig.VariantDasher)
	liftObstacles(w)
	finish := finishLine(t, w)
	finish.X = 193

	s := sc.Sprite.Get(Obstacles(w)[0])
	s.Pos.X, s.Pos.Y = 200, 280
	Step(w, frameDt, Input{})

	if o := outcome(t, w); o.State != sc.Lost {
		t.Fatalf("state = %s, want lost", o.State)
	}
}

func TestDodgeHasNoWin(t *testing.T) {
	w := newWorld(t, dashconfig.VariantDodge)
	liftObstacles(w)

	for i := 0; i < 1000; i++ {
		Step(w, frameDt, Input{})
	}
	if o := outcome(t, w); o.State != sc.Playing {
		t.Fatalf("state = %s, want playing", o.State)
	}
}

func TestScrollWraps(t *testing.T) {
	w := newWorld(t, dashconfig.VariantDasher)
	liftObstacles(w)

	wrapped := false
	for i := 0; i < 40; i++ {
		Step(w, 1, Input{})
		for _, e := range Layers(w) {
			l := sc.ScrollLayer.Get(e)
			if l.Offset <= -2*l.TextureWidth {
				t.Fatalf("step %d: %s offset %v past bound", i, l.Layer, l.Offset)
			}
		}
		far := sc.ScrollLayer.Get(Layers(w)[0])
		if i == 25 {
			wrapped = far.Offset == 0
		}
	}
	if !wrapped {
		t.Error("far layer did not reset to 0 after 26 seconds")
	}
}

func TestStepWithoutSetupIsNoop(t *testing.T) {
	w := donburi.NewWorld()
	Step(w, frameDt, Input{Jump: true})
	if _, _, ok := Run(w); ok {
		t.Fatal("Step created a run")
	}
}
