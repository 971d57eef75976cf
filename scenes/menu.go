package scenes

import (
	"sync"

	"github.com/automoto/dasher/components"
	cfg "github.com/automoto/dasher/config"
	"github.com/automoto/dasher/systems"
	"github.com/automoto/dasher/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene displays the variant picker using ebitenui
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	picked       *components.MenuOption
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update(systems.Stats())

	if ms.picked != nil {
		ms.start(*ms.picked)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	pick := func(opt components.MenuOption) {
		ms.picked = &opt
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(pick))

	ms.menuUI = ui.NewMenuUI(systems.GetOrCreateMenu(ms.ecs), pick)
}

func (ms *MenuScene) start(opt components.MenuOption) {
	if opt.IsQuit() {
		ms.sceneChanger.Quit()
		return
	}

	v, err := cfg.VariantByID(opt.Variant)
	if err != nil {
		log.Error("cannot start variant", "variant", opt.Variant, "err", err)
		ms.picked = nil
		return
	}
	ms.sceneChanger.ChangeScene(NewDasherScene(ms.sceneChanger, v))
}
