package factory

import (
	"fmt"

	"github.com/automoto/dasher/assets"
	cfg "github.com/automoto/dasher/config"
	"github.com/automoto/dasher/shared/sim"
	"github.com/yohamta/donburi/ecs"
)

// CreateRun builds a fresh run of the variant in the scene's world: the
// character, obstacles, finish line, parallax layers and collision space.
func CreateRun(ecs *ecs.ECS, v cfg.Variant) error {
	sizes, err := assets.Loader().LoadVariant(v)
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	return sim.Setup(ecs.World, v, sizes)
}
