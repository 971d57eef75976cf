package simcomponents

import (
	"github.com/automoto/dasher/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SpriteData is the animated sprite shared by the character and obstacles.
// Source is the sub-rectangle of the sheet drawn at Pos.
type SpriteData struct {
	Texture string
	Source  gamemath.Rect
	Pos     gamemath.Vec2
	Clock   gamemath.FrameClock
}

// Bounds returns the on-screen rectangle the sprite occupies.
func (s *SpriteData) Bounds() gamemath.Rect {
	return gamemath.NewRect(s.Pos, s.Source.Width, s.Source.Height)
}

var Sprite = donburi.NewComponentType[SpriteData]()
