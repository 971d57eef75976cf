package simcomponents

import (
	"github.com/automoto/dasher/shared/dashconfig"
	"github.com/yohamta/donburi"
)

type ScrollLayerData struct {
	Layer        dashconfig.LayerID
	Texture      string
	Offset       float32
	Speed        float32
	TextureWidth float32
}

var ScrollLayer = donburi.NewComponentType[ScrollLayerData]()
