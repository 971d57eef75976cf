package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/dasher/config"
	"github.com/automoto/dasher/shared/sim"
	"github.com/automoto/dasher/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space and prints the
// update and frame rates.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	if space, ok := sim.Space(ecs.World); ok {
		for _, obj := range space.Objects() {
			c := cfg.Cyan
			if obj.HasTags(tags.ResolvCharacter) {
				c = cfg.Blue
			} else if obj.HasTags(tags.ResolvObstacle) {
				c = cfg.Red
			}
			drawOutline(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c)
		}
	}

	msg := fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, msg, cfg.HUD.Margin, screen.Bounds().Dy()-cfg.HUD.Margin-16)
}

func drawOutline(screen *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
