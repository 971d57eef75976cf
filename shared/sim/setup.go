// Package sim is the frame-update core of Dasher: physics, animation,
// obstacle translation, collision and the outcome state machine. It builds
// and steps a donburi world without touching ebiten, so every rule can be
// exercised from plain tests.
package sim

import (
	"fmt"

	"github.com/automoto/dasher/archetypes"
	"github.com/automoto/dasher/shared/dashconfig"
	"github.com/automoto/dasher/shared/gamemath"
	sc "github.com/automoto/dasher/shared/simcomponents"
	"github.com/automoto/dasher/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// spaceCellSize is the resolv cell edge used for the broad phase.
const spaceCellSize = 16

// Setup populates an empty world with one run of the variant: the
// character, the obstacle row, the finish line, the parallax layers and the
// run singletons. sizes carries the decoded texture dimensions.
func Setup(w donburi.World, v dashconfig.Variant, sizes dashconfig.TextureSizes) error {
	if err := v.ValidateSizes(sizes); err != nil {
		return fmt.Errorf("setup %s: %w", v.ID, err)
	}

	run := archetypes.Run.Spawn(w)
	sc.Variant.SetValue(run, sc.VariantData{Variant: v, Sizes: sizes})
	sc.Outcome.SetValue(run, sc.OutcomeData{State: sc.Playing})

	spaceEntry := archetypes.Space.Spawn(w)
	sc.Space.Set(spaceEntry, resolv.NewSpace(v.WindowWidth, v.WindowHeight, spaceCellSize, spaceCellSize))
	space := sc.Space.Get(spaceEntry)

	createCharacter(w, space, v, sizes)
	lastX := createObstacles(w, space, v, sizes)
	if v.FinishLine {
		createFinishLine(w, v, lastX)
	}
	createLayers(w, v, sizes)

	return nil
}

func createCharacter(w donburi.World, space *resolv.Space, v dashconfig.Variant, sizes dashconfig.TextureSizes) *donburi.Entry {
	e := archetypes.Character.Spawn(w)
	fw, fh := v.CharacterFrame(sizes)
	ww, wh := float32(v.WindowWidth), float32(v.WindowHeight)

	sc.Sprite.SetValue(e, sc.SpriteData{
		Texture: dashconfig.CharacterTexture,
		Source:  gamemath.Rect{Width: fw, Height: fh},
		Pos:     gamemath.Vec2{X: ww/2 - fw/2, Y: wh - fh},
		Clock: gamemath.FrameClock{
			FrameCount: v.Character.Frames,
			UpdateTime: v.Character.UpdateTime,
		},
	})
	sc.Character.SetValue(e, sc.CharacterData{})

	attachHitbox(space, e, v.HitboxPadding, tags.ResolvCharacter)
	return e
}

// createObstacles spawns the obstacle row and returns the x of the last one.
func createObstacles(w donburi.World, space *resolv.Space, v dashconfig.Variant, sizes dashconfig.TextureSizes) float32 {
	if !v.HasObstacles() {
		return 0
	}
	fw, fh := v.ObstacleFrame(sizes)
	wh := float32(v.WindowHeight)

	var lastX float32
	for i := 0; i < v.Obstacles.Count; i++ {
		e := archetypes.Obstacle.Spawn(w)
		x := v.ObstacleStartX(i)
		sc.Sprite.SetValue(e, sc.SpriteData{
			Texture: dashconfig.ObstacleTexture,
			Source:  gamemath.Rect{Width: fw, Height: fh},
			Pos:     gamemath.Vec2{X: x, Y: wh - fh},
			Clock: gamemath.FrameClock{
				FrameCount: v.Obstacles.Frames,
				UpdateTime: v.Obstacles.UpdateTime,
			},
		})
		sc.Obstacle.SetValue(e, sc.ObstacleData{Index: i, Velocity: v.Obstacles.Velocity})
		attachHitbox(space, e, v.HitboxPadding, tags.ResolvObstacle)
		lastX = x
	}
	return lastX
}

func createFinishLine(w donburi.World, v dashconfig.Variant, x float32) *donburi.Entry {
	e := archetypes.FinishLine.Spawn(w)
	sc.FinishLine.SetValue(e, sc.FinishLineData{X: x, Velocity: v.Obstacles.Velocity})
	return e
}

func createLayers(w donburi.World, v dashconfig.Variant, sizes dashconfig.TextureSizes) {
	for _, l := range v.Layers {
		e := archetypes.ScrollLayer.Spawn(w)
		sc.ScrollLayer.SetValue(e, sc.ScrollLayerData{
			Layer:        l.Layer,
			Texture:      l.Texture,
			Speed:        l.Speed,
			TextureWidth: float32(sizes.Layers[l.Texture].Width),
		})
	}
}

// attachHitbox mirrors the padded sprite bounds into a resolv object.
func attachHitbox(space *resolv.Space, e *donburi.Entry, padding float32, tag string) {
	box := sc.Sprite.Get(e).Bounds().Pad(padding)
	w := float64(box.Width) + 2*broadPhaseMargin
	h := float64(box.Height) + 2*broadPhaseMargin

	obj := resolv.NewObject(float64(box.X)-broadPhaseMargin, float64(box.Y)-broadPhaseMargin, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	space.Add(obj)

	sc.Object.SetValue(e, sc.ObjectData{Object: obj})
}
