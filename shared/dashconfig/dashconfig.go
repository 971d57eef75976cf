// Package dashconfig defines the gameplay tuning of every Dasher variant.
// It must have zero dependencies on ebiten or any graphics library so the
// simulation and its tests stay headless.
package dashconfig

import (
	"errors"
	"fmt"
)

// VariantID names one of the shipped game variants.
type VariantID string

const (
	VariantJump   VariantID = "jump"
	VariantDodge  VariantID = "dodge"
	VariantDasher VariantID = "dasher"
)

// LayerID identifies a parallax background layer, back to front.
type LayerID int

const (
	LayerFar LayerID = iota
	LayerBack
	LayerFore
)

func (l LayerID) String() string {
	switch l {
	case LayerFar:
		return "far"
	case LayerBack:
		return "back"
	case LayerFore:
		return "fore"
	}
	return fmt.Sprintf("layer(%d)", int(l))
}

// Texture paths, relative to the texture root.
const (
	CharacterTexture = "textures/scarfy.png"
	ObstacleTexture  = "textures/12_nebula_spritesheet.png"
	FarLayerTexture  = "textures/far-buildings.png"
	BackLayerTexture = "textures/back-buildings.png"
	ForeLayerTexture = "textures/foreground.png"
)

// TargetTPS is the fixed update rate every variant runs at.
const TargetTPS = 60

var (
	ErrUnknownVariant = errors.New("unknown variant")
	ErrInvalidVariant = errors.New("invalid variant")
)

// CharacterTuning configures the playable character.
type CharacterTuning struct {
	Frames     int     `yaml:"frames"`
	UpdateTime float32 `yaml:"update_time"`
}

// ObstacleTuning configures the nebula row.
type ObstacleTuning struct {
	Count      int     `yaml:"count"`
	FirstX     float32 `yaml:"first_x"` // negative means "at the right window edge"
	Spacing    float32 `yaml:"spacing"`
	Velocity   float32 `yaml:"velocity"`
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
	Frames     int     `yaml:"frames"`
	UpdateTime float32 `yaml:"update_time"`
}

// LayerTuning configures one parallax layer.
type LayerTuning struct {
	Layer   LayerID `yaml:"layer"`
	Texture string  `yaml:"texture"`
	Speed   float32 `yaml:"speed"`
}

// Variant is the full tuning of one game variant.
type Variant struct {
	ID          VariantID `yaml:"-"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`

	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`

	// Physics, in px/s² and px/s unless PhysicsStep is set, in which case
	// PhysicsStep replaces the frame delta and the units become per-frame.
	Gravity     float32 `yaml:"gravity"`
	JumpImpulse float32 `yaml:"jump_impulse"`
	PhysicsStep float32 `yaml:"physics_step"`

	Character CharacterTuning `yaml:"character"`
	Obstacles ObstacleTuning  `yaml:"obstacles"`

	// HitboxPadding shrinks both the character and obstacle rectangles on
	// every side before the overlap test.
	HitboxPadding float32 `yaml:"hitbox_padding"`

	// FinishLine places a finish line at the last obstacle.
	FinishLine bool `yaml:"finish_line"`

	Layers []LayerTuning `yaml:"layers"`
}

// ObstacleStartX returns the initial x of obstacle i.
func (v Variant) ObstacleStartX(i int) float32 {
	first := v.Obstacles.FirstX
	if first < 0 {
		first = float32(v.WindowWidth)
	}
	return first + float32(i)*v.Obstacles.Spacing
}

// HasObstacles reports whether the variant spawns any obstacle.
func (v Variant) HasObstacles() bool {
	return v.Obstacles.Count > 0
}

// Textures lists the texture paths the variant needs, character first.
func (v Variant) Textures() []string {
	paths := []string{CharacterTexture}
	if v.HasObstacles() {
		paths = append(paths, ObstacleTexture)
	}
	for _, l := range v.Layers {
		paths = append(paths, l.Texture)
	}
	return paths
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// TextureSizes carries the decoded texture dimensions the simulation lays
// the scene out from. Layers is keyed by texture path.
type TextureSizes struct {
	Character Size
	Obstacle  Size
	Layers    map[string]Size
}

// CharacterFrame returns the size of one character animation frame.
func (v Variant) CharacterFrame(s TextureSizes) (w, h float32) {
	return float32(s.Character.Width / v.Character.Frames), float32(s.Character.Height)
}

// ObstacleFrame returns the size of one obstacle animation frame.
func (v Variant) ObstacleFrame(s TextureSizes) (w, h float32) {
	return float32(s.Obstacle.Width / v.Obstacles.Columns), float32(s.Obstacle.Height / v.Obstacles.Rows)
}
