package simcomponents

import "github.com/yohamta/donburi"

type ObstacleData struct {
	Index    int     // position in the initial left-to-right order
	Velocity float32 // horizontal, px per second
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

// FinishLineData is the invisible x coordinate the character must pass.
type FinishLineData struct {
	X        float32
	Velocity float32
}

var FinishLine = donburi.NewComponentType[FinishLineData]()
