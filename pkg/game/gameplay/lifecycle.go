// Package gameplay provides core game logic for diving, movement and tile effects.
package gameplay

import (
	"fmt"
	"time"

	"github.com/leonelquinteros/gotext"

	"turtledepths/pkg/engine/rng"
	"turtledepths/pkg/game/depth"
	"turtledepths/pkg/game/generator"
	"turtledepths/pkg/game/state"
	gameworld "turtledepths/pkg/game/world"
)

// Settings size the generated floors.
type Settings struct {
	Width  int
	Height int
	Rooms  generator.Params
}

// DefaultSettings returns the standard 25x18 floor with default rooms
func DefaultSettings() Settings {
	return Settings{
		Width:  generator.DefaultMapWidth,
		Height: generator.DefaultMapHeight,
		Rooms:  generator.DefaultParams,
	}
}

// GenerateLevel builds the floor at lvlDepth from seed. The same inputs
// always produce the same floor.
func GenerateLevel(s Settings, lvlDepth int, seed int64) *gameworld.Level {
	gen := generator.NewRoomGenerator(s.Rooms, rng.New(seed))
	return gen.Generate(s.Width, s.Height, lvlDepth)
}

// BuildDive creates a new dive with optional starting depth. seed drives the
// whole sequence of floors.
func BuildDive(s Settings, startDepth int, seed int64, now time.Time) *state.Dive {
	d := state.NewDive(rng.New(seed), now)

	// Set starting depth if specified (for developer testing)
	if startDepth > 1 {
		d.Depth = startDepth
		d.Stats.DeepestDepth = startDepth
	}

	enterLevel(s, d, d.Seeds.Int63())

	d.ClearMessages()
	logMessage(d, gotext.Get("WELCOME"))
	logMessage(d, fmt.Sprintf(gotext.Get("DEPTH_ENTERED"), d.Depth))
	logMessage(d, depth.FlavourText(d.Depth))

	return d
}

// Descend moves the dive one floor down onto a freshly generated level
func Descend(s Settings, d *state.Dive) {
	d.AdvanceDepth()
	enterLevel(s, d, d.Seeds.Int63())

	d.ClearMessages()
	logMessage(d, fmt.Sprintf(gotext.Get("DESCENDING"), d.Depth))
	logMessage(d, depth.FlavourText(d.Depth))
}

// ResetDepth regenerates the current floor from its stored seed, giving the
// same layout, and puts the player back at the spawn with full oxygen.
func ResetDepth(s Settings, d *state.Dive) {
	enterLevel(s, d, d.LevelSeed)
	d.RestoreOxygen()

	d.ClearMessages()
	logMessage(d, gotext.Get("DEPTH_RESET"))
	logMessage(d, fmt.Sprintf(gotext.Get("DEPTH_ENTERED"), d.Depth))
}

func enterLevel(s Settings, d *state.Dive, seed int64) {
	d.LevelSeed = seed
	d.Level = GenerateLevel(s, d.Depth, seed)
	d.Player = d.Level.Spawn
}
