package systems

import (
	"image"

	"github.com/automoto/dasher/assets"
	cfg "github.com/automoto/dasher/config"
	"github.com/automoto/dasher/shared/gamemath"
	"github.com/automoto/dasher/shared/sim"
	sc "github.com/automoto/dasher/shared/simcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground clears the frame and draws every parallax layer twice,
// back to front, at the background scale.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.RayWhite)

	for _, entry := range sim.Layers(e.World) {
		layer := sc.ScrollLayer.Get(entry)
		tex, err := assets.Loader().Texture(layer.Texture)
		if err != nil {
			continue
		}

		first, second := gamemath.TileOffsets(layer.Offset, layer.TextureWidth)
		for _, x := range [2]float32{first, second} {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Scale(gamemath.BackgroundScale, gamemath.BackgroundScale)
			drawOp.GeoM.Translate(float64(x), 0)
			screen.DrawImage(tex, drawOp)
		}
	}
}

// DrawSprites draws the obstacles and then the character while the run is
// still being played. Terminal outcomes leave the stage to the end screen.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	_, outcome, ok := sim.Run(e.World)
	if !ok || outcome.State.Terminal() {
		return
	}

	for _, entry := range sim.Obstacles(e.World) {
		drawSprite(screen, entry)
	}
	if entry, ok := sim.Character(e.World); ok {
		drawSprite(screen, entry)
	}
}

func drawSprite(screen *ebiten.Image, entry *donburi.Entry) {
	s := sc.Sprite.Get(entry)

	// Skip sprites entirely off-screen.
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	b := s.Bounds()
	if b.X+b.Width < 0 || b.X > float32(w) || b.Y+b.Height < 0 || b.Y > float32(h) {
		return
	}

	src := image.Rect(
		int(s.Source.X), int(s.Source.Y),
		int(s.Source.X+s.Source.Width), int(s.Source.Y+s.Source.Height),
	)
	img := assets.Loader().Frame(s.Texture, src)
	if img == nil {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(float64(s.Pos.X), float64(s.Pos.Y))
	screen.DrawImage(img, drawOp)
}
