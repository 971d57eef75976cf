package simcomponents

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the broad-phase collision space (singleton).
var Space = donburi.NewComponentType[resolv.Space]()
