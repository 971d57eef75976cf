package systems

import (
	"fmt"

	cfg "github.com/automoto/dasher/config"
	"github.com/automoto/dasher/fonts"
	"github.com/automoto/dasher/shared/sim"
	sc "github.com/automoto/dasher/shared/simcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face API matches the truetype faces
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the variant title, the run clock and, when the variant
// has one, the distance left to the finish line in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	variant, outcome, ok := sim.Run(ecs.World)
	if !ok {
		return
	}

	face := fonts.Small.Get()
	x := cfg.HUD.Margin
	y := cfg.HUD.Margin + face.Metrics().Ascent.Ceil()

	text.Draw(screen, fmt.Sprintf("%s  %.1fs", variant.Title, outcome.Elapsed), face, x, y, cfg.HUD.TextColor)

	finish, ok := sim.FinishLine(ecs.World)
	if !ok || outcome.State.Terminal() {
		return
	}
	char, ok := sim.Character(ecs.World)
	if !ok {
		return
	}

	left := finish - sc.Sprite.Get(char).Pos.X
	if left < 0 {
		left = 0
	}
	y += cfg.HUD.LineGap
	text.Draw(screen, fmt.Sprintf("finish in %.0fpx", left), face, x, y, cfg.HUD.TextColor)
}
