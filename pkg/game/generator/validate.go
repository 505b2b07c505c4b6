package generator

import (
	"github.com/zyedidia/generic/mapset"

	"turtledepths/pkg/engine/world"
	gameworld "turtledepths/pkg/game/world"
)

// Reachable returns every walkable position reachable from the level spawn
// moving N/E/S/W.
func Reachable(level *gameworld.Level) *mapset.Set[world.Point] {
	reachable := mapset.New[world.Point]()
	queue := []world.Point{level.Spawn}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if !level.IsWalkable(current) || reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, dir := range world.AllDirections() {
			n := current.Step(dir)
			if level.IsWalkable(n) && !reachable.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return &reachable
}

// IsFullyConnected reports whether every walkable tile can be reached from spawn.
func IsFullyConnected(level *gameworld.Level) bool {
	walkable := 0
	level.Grid.ForEachTile(func(_, _ int, t world.Tile) {
		if t.IsWalkable() {
			walkable++
		}
	})
	return Reachable(level).Size() == walkable
}
