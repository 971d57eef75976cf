package components

import (
	cfg "github.com/automoto/dasher/config"
	"github.com/yohamta/donburi"
)

// MenuOption is one entry of the variant picker. A zero Variant means Quit.
type MenuOption struct {
	Variant     cfg.VariantID
	Title       string
	Description string
}

// IsQuit reports whether the option exits the game.
func (o MenuOption) IsQuit() bool {
	return o.Variant == ""
}

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int          // Current selection index in Options
	Options       []MenuOption // Variants in menu order, Quit last
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
