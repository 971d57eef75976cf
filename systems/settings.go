package systems

import (
	"github.com/automoto/dasher/components"
	cfg "github.com/automoto/dasher/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from the CLI debug flags on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Hitboxes,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings toggles the debug overlay.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		log.Debug("debug overlay toggled", "on", settings.Debug)
	}
}
