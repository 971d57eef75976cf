package simcomponents

import "github.com/yohamta/donburi"

type CharacterData struct {
	Velocity float32 // vertical, positive is down
	Airborne bool
}

var Character = donburi.NewComponentType[CharacterData]()
