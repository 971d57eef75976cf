package scenes

import (
	"sync"

	cfg "github.com/automoto/dasher/config"
	"github.com/automoto/dasher/systems"
	"github.com/automoto/dasher/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DasherScene plays one run of a variant.
type DasherScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	variant      cfg.Variant
	once         sync.Once
}

// NewDasherScene creates a scene that runs the given variant
func NewDasherScene(sc SceneChanger, v cfg.Variant) *DasherScene {
	return &DasherScene{sceneChanger: sc, variant: v}
}

func (ds *DasherScene) Update() {
	ds.once.Do(ds.configure)
	if ds.ecs == nil {
		return
	}
	ds.ecs.Update()
}

func (ds *DasherScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.RayWhite)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DasherScene) configure() {
	cfg.UseVariant(ds.variant)
	ebiten.SetWindowSize(ds.variant.WindowWidth, ds.variant.WindowHeight)

	ecs := ecs.NewECS(donburi.NewWorld())

	createRetryScene := func() interface{} {
		return NewDasherScene(ds.sceneChanger, ds.variant)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(ds.sceneChanger)
	}

	// Input must be polled before the simulation reads it
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateSimulation)
	ecs.AddSystem(systems.NewUpdateEndScreen(ds.sceneChanger, createRetryScene, createMenuScene))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawEndScreen)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	if err := factory.CreateRun(ecs, ds.variant); err != nil {
		log.Error("could not start run", "variant", ds.variant.ID, "err", err)
		ds.sceneChanger.ChangeScene(NewMenuScene(ds.sceneChanger))
		return
	}

	log.Debug("run started", "variant", ds.variant.ID)
	ds.ecs = ecs
}
