package tags

import "github.com/yohamta/donburi"

var (
	Character   = donburi.NewTag().SetName("Character")
	Obstacle    = donburi.NewTag().SetName("Obstacle")
	FinishLine  = donburi.NewTag().SetName("FinishLine")
	ScrollLayer = donburi.NewTag().SetName("ScrollLayer")
)

// Resolv tags for the collision broad phase
const (
	ResolvCharacter = "character"
	ResolvObstacle  = "obstacle"
)
