package systems

import (
	"github.com/automoto/dasher/components"
	cfg "github.com/automoto/dasher/config"
	"github.com/automoto/dasher/shared/dashconfig"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// NewUpdateMenu creates an UpdateMenu system. onPick receives the selected
// option when the player confirms it.
func NewUpdateMenu(onPick func(components.MenuOption)) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around
		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			onPick(menu.Options[menu.SelectedIndex])
			return
		}

		// Allow back/escape to quit
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			onPick(components.MenuOption{})
		}
	}
}

// MenuOptions lists every variant preset followed by Quit.
func MenuOptions() []components.MenuOption {
	var opts []components.MenuOption
	for _, v := range dashconfig.Presets() {
		opts = append(opts, components.MenuOption{
			Variant:     v.ID,
			Title:       v.Title,
			Description: v.Description,
		})
	}
	return append(opts, components.MenuOption{Title: "Quit"})
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed.
// The selection starts on the current variant.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		opts := MenuOptions()
		selected := 0
		for i, o := range opts {
			if o.Variant == cfg.Current.ID {
				selected = i
			}
		}
		components.Menu.SetValue(entry, components.MenuData{
			SelectedIndex: selected,
			Options:       opts,
		})
	}
	return components.Menu.Get(entry)
}
