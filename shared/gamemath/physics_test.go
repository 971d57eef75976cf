package gamemath

import "testing"

const (
	testWindowHeight = 450
	testHeight       = 128
	testGround       = testWindowHeight - testHeight
)

func TestOnGround(t *testing.T) {
	tests := []struct {
		name string
		posY float32
		want bool
	}{
		{name: "exactly on ground", posY: testGround, want: true},
		{name: "below ground", posY: testGround + 3, want: true},
		{name: "one pixel above", posY: testGround - 1, want: false},
		{name: "top of window", posY: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OnGround(tt.posY, testHeight, testWindowHeight); got != tt.want {
				t.Errorf("OnGround(%v) = %v, want %v", tt.posY, got, tt.want)
			}
		})
	}
}

func TestGroundedVelocityIsZero(t *testing.T) {
	for _, dt := range []float32{0, 1.0 / 60, 0.5, 1} {
		b := IntegrateVertical(VerticalBody{PosY: testGround, Velocity: 37}, testHeight, testWindowHeight, 1000, -600, dt, false)
		if b.Velocity != 0 {
			t.Errorf("dt=%v: velocity = %v, want 0", dt, b.Velocity)
		}
		if b.Airborne {
			t.Errorf("dt=%v: grounded body reported airborne", dt)
		}
		if b.PosY != testGround {
			t.Errorf("dt=%v: posY = %v, want %v", dt, b.PosY, testGround)
		}
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	grounded := IntegrateVertical(VerticalBody{PosY: testGround}, testHeight, testWindowHeight, 1, -20, 1, true)
	if grounded.Velocity != -20 {
		t.Fatalf("jump from ground: velocity = %v, want -20", grounded.Velocity)
	}
	if grounded.PosY != testGround-20 {
		t.Fatalf("jump from ground: posY = %v, want %v", grounded.PosY, testGround-20)
	}

	air := VerticalBody{PosY: testGround - 50, Velocity: -5, Airborne: true}
	withJump := IntegrateVertical(air, testHeight, testWindowHeight, 1, -20, 1, true)
	without := IntegrateVertical(air, testHeight, testWindowHeight, 1, -20, 1, false)
	if withJump != without {
		t.Errorf("jump while airborne changed the step: %+v vs %+v", withJump, without)
	}
}

func TestPositionUsesVelocityAfterImpulse(t *testing.T) {
	b := VerticalBody{PosY: 100, Velocity: 10}
	got := IntegrateVertical(b, testHeight, testWindowHeight, 1000, -600, 0.25, false)
	wantVel := float32(10 + 1000*0.25)
	if got.Velocity != wantVel {
		t.Fatalf("velocity = %v, want %v", got.Velocity, wantVel)
	}
	if want := b.PosY + wantVel*0.25; got.PosY != want {
		t.Errorf("posY = %v, want %v", got.PosY, want)
	}
}

// Per-frame units: a single jump sets velocity to -20, velocity then grows
// by one per frame and the landing frame resets it to zero on the ground line.
func TestJumpArcInFrameUnits(t *testing.T) {
	b := IntegrateVertical(VerticalBody{PosY: testGround}, testHeight, testWindowHeight, 1, -20, 1, true)
	if b.Velocity != -20 {
		t.Fatalf("jump frame: velocity = %v, want -20", b.Velocity)
	}

	for want := float32(-19); want <= 20; want++ {
		b = IntegrateVertical(b, testHeight, testWindowHeight, 1, -20, 1, false)
		if b.Velocity != want {
			t.Fatalf("velocity = %v, want %v", b.Velocity, want)
		}
		if !b.Airborne {
			t.Fatalf("velocity %v: body should be airborne", want)
		}
	}
	if b.PosY != testGround {
		t.Fatalf("apex arc ended at %v, want ground %v", b.PosY, testGround)
	}

	b = IntegrateVertical(b, testHeight, testWindowHeight, 1, -20, 1, false)
	if b.Velocity != 0 || b.Airborne {
		t.Errorf("landing frame: %+v, want zero velocity on ground", b)
	}
}

func TestTranslate(t *testing.T) {
	if got := Translate(512, -200, 0.5); got != 412 {
		t.Errorf("Translate = %v, want 412", got)
	}
}
