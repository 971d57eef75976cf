package components

import "github.com/yohamta/donburi"

// SettingsData holds per-scene toggles (singleton).
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
