package sim

import (
	"sort"

	sc "github.com/automoto/dasher/shared/simcomponents"
	"github.com/automoto/dasher/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Run returns the run singleton's variant and outcome.
func Run(w donburi.World) (*sc.VariantData, *sc.OutcomeData, bool) {
	e, ok := sc.Variant.First(w)
	if !ok {
		return nil, nil, false
	}
	return sc.Variant.Get(e), sc.Outcome.Get(e), true
}

// Character returns the character entity.
func Character(w donburi.World) (*donburi.Entry, bool) {
	return tags.Character.First(w)
}

// Obstacles returns the obstacle entities in their initial left-to-right
// order.
func Obstacles(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return sc.Obstacle.Get(out[i]).Index < sc.Obstacle.Get(out[j]).Index
	})
	return out
}

// FinishLine returns the finish line x, if the variant has one.
func FinishLine(w donburi.World) (float32, bool) {
	e, ok := tags.FinishLine.First(w)
	if !ok {
		return 0, false
	}
	return sc.FinishLine.Get(e).X, true
}

// Layers returns the scroll layers back to front.
func Layers(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.ScrollLayer.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return sc.ScrollLayer.Get(out[i]).Layer < sc.ScrollLayer.Get(out[j]).Layer
	})
	return out
}

// Space returns the broad-phase collision space.
func Space(w donburi.World) (*resolv.Space, bool) {
	e, ok := sc.Space.First(w)
	if !ok {
		return nil, false
	}
	return sc.Space.Get(e), true
}
