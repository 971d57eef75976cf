package simcomponents

import (
	"github.com/automoto/dasher/shared/dashconfig"
	"github.com/yohamta/donburi"
)

// VariantData is the singleton carrying the tuning the world was built from.
type VariantData struct {
	dashconfig.Variant
	Sizes dashconfig.TextureSizes
}

var Variant = donburi.NewComponentType[VariantData]()
