package systems

import (
	"image/color"

	"github.com/automoto/dasher/components"
	cfg "github.com/automoto/dasher/config"
	"github.com/automoto/dasher/fonts"
	"github.com/automoto/dasher/shared/sim"
	sc "github.com/automoto/dasher/shared/simcomponents"
	"github.com/automoto/dasher/shared/stats"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face API matches the truetype faces
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewUpdateEndScreen creates the system that watches for the end of a run.
// When the outcome turns terminal it starts the fade, records the run once
// and then waits for retry or menu input. Escape leaves the run at any time.
func NewUpdateEndScreen(sceneChanger SceneChanger, createRetryScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
			return
		}

		variant, outcome, ok := sim.Run(e.World)
		if !ok || !outcome.State.Terminal() {
			return
		}

		end := GetOrCreateEndScreen(e, variant.ID)
		if end.Fade == nil {
			end.Fade = gween.New(0, 1, cfg.EndScreen.FadeDuration, ease.OutQuad)
			log.Info("run finished",
				"variant", variant.ID,
				"outcome", outcome.State,
				"seconds", outcome.Elapsed,
				"jumps", outcome.Jumps,
			)
		}
		end.Alpha, _ = end.Fade.Update(float32(1) / float32(cfg.C.TPS))

		if end.Run.Record(Stats(), outcome.State == sc.Won, outcome.Elapsed, outcome.Jumps) {
			SaveStats()
		}

		if GetAction(input, cfg.ActionRestart).JustPressed {
			sceneChanger.ChangeScene(createRetryScene())
		}
	}
}

// DrawEndScreen renders the Game Over / You Win message over the cleared
// background once the run is over.
func DrawEndScreen(e *ecs.ECS, screen *ebiten.Image) {
	_, outcome, ok := sim.Run(e.World)
	if !ok || !outcome.State.Terminal() {
		return
	}
	entry, ok := components.EndScreen.First(e.World)
	if !ok {
		return
	}
	end := components.EndScreen.Get(entry)

	msg, clr := cfg.EndScreen.LoseText, cfg.EndScreen.LoseColor
	if outcome.State == sc.Won {
		msg, clr = cfg.EndScreen.WinText, cfg.EndScreen.WinColor
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	// Top-left of the message sits at a quarter width, half height.
	face := fonts.Large.Get()
	x := width / 4
	y := height/2 + face.Metrics().Ascent.Ceil()
	text.Draw(screen, msg, face, x, y, fade(clr, end.Alpha))

	hintFace := fonts.Small.Get()
	hint := getEndScreenHint(getOrCreateInput(e).LastInputMethod)
	hintX := centerTextX(hint, hintFace, float64(width))
	text.Draw(screen, hint, hintFace, hintX, height-cfg.HUD.Margin, fade(cfg.EndScreen.HintColor, end.Alpha))
}

// getEndScreenHint returns the retry/menu hint for the last used device
func getEndScreenHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "OPTIONS retry   CIRCLE menu"
	case components.InputXbox:
		return "START retry   B menu"
	}
	return cfg.EndScreen.Hint
}

// GetOrCreateEndScreen returns the singleton EndScreen component, creating if needed
func GetOrCreateEndScreen(e *ecs.ECS, variant cfg.VariantID) *components.EndScreenData {
	entry, ok := components.EndScreen.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.EndScreen))
		components.EndScreen.SetValue(entry, components.EndScreenData{
			Run: stats.Run{Variant: variant},
		})
	}
	return components.EndScreen.Get(entry)
}

func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	// Premultiplied, as ebiten expects.
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
