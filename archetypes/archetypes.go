// Package archetypes lists the component sets of every entity kind the
// simulation spawns. It only depends on core donburi so headless code and
// tests can build worlds.
package archetypes

import (
	"github.com/automoto/dasher/shared/simcomponents"
	"github.com/automoto/dasher/tags"
	"github.com/yohamta/donburi"
)

var (
	Character = newArchetype(
		tags.Character,
		simcomponents.Character,
		simcomponents.Sprite,
		simcomponents.Object,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		simcomponents.Obstacle,
		simcomponents.Sprite,
		simcomponents.Object,
	)
	FinishLine = newArchetype(
		tags.FinishLine,
		simcomponents.FinishLine,
	)
	ScrollLayer = newArchetype(
		tags.ScrollLayer,
		simcomponents.ScrollLayer,
	)
	Space = newArchetype(
		simcomponents.Space,
	)
	Run = newArchetype(
		simcomponents.Variant,
		simcomponents.Outcome,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates the entity in w with any extra components appended.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
