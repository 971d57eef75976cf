package systems

import (
	cfg "github.com/automoto/dasher/config"
	"github.com/automoto/dasher/shared/sim"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation advances the run by one fixed frame.
func UpdateSimulation(e *ecs.ECS) {
	input := getOrCreateInput(e)
	dt := float32(1) / float32(cfg.C.TPS)

	sim.Step(e.World, dt, sim.Input{
		Jump: GetAction(input, cfg.ActionJump).JustPressed,
	})
}
