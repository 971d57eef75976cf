package sim

import (
	"github.com/automoto/dasher/shared/gamemath"
	sc "github.com/automoto/dasher/shared/simcomponents"
	"github.com/automoto/dasher/tags"
	"github.com/yohamta/donburi"
)

// broadPhaseMargin grows every resolv object past its hitbox so sub-pixel
// overlaps across a cell border still share a cell.
const broadPhaseMargin = 1

// syncHitbox moves the entity's resolv object onto its padded sprite bounds.
func syncHitbox(e *donburi.Entry, padding float32) gamemath.Rect {
	box := sc.Sprite.Get(e).Bounds().Pad(padding)
	obj := sc.Object.Get(e)
	obj.X = float64(box.X) - broadPhaseMargin
	obj.Y = float64(box.Y) - broadPhaseMargin
	obj.Update()
	return box
}

// detectCollision reports whether the character's padded hitbox overlaps
// any obstacle's. resolv narrows the candidates to obstacles sharing a cell
// with the character; the padded rectangles decide.
func detectCollision(w donburi.World, padding float32) bool {
	char, ok := tags.Character.First(w)
	if !ok {
		return false
	}

	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		syncHitbox(e, padding)
	})
	charBox := syncHitbox(char, padding)

	check := sc.Object.Get(char).Check(0, 0, tags.ResolvObstacle)
	if check == nil {
		return false
	}

	for _, obj := range check.ObjectsByTags(tags.ResolvObstacle) {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		box := sc.Sprite.Get(e).Bounds().Pad(padding)
		if charBox.Overlaps(box) {
			return true
		}
	}
	return false
}
