package components

import (
	"github.com/automoto/dasher/shared/stats"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EndScreenData drives the Game Over / You Win overlay.
type EndScreenData struct {
	Fade  *gween.Tween // nil until the run ends
	Alpha float32
	Run   stats.Run
}

var EndScreen = donburi.NewComponentType[EndScreenData]()
