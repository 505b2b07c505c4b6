// Package gameplay tests movement, tile effects and the dive lifecycle.
package gameplay

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/leonelquinteros/gotext"

	"turtledepths/pkg/engine/rng"
	"turtledepths/pkg/engine/world"
	"turtledepths/pkg/game/state"
	gameworld "turtledepths/pkg/game/world"
)

// makeCorridorDive creates a Dive on a one-row corridor at y=1 holding tiles
// from x=1, walled on every side, with the player on the first tile.
func makeCorridorDive(t *testing.T, tiles ...world.Tile) *state.Dive {
	t.Helper()
	grid := world.NewGrid(len(tiles)+2, 3)
	grid.ForEachTile(func(x, y int, _ world.Tile) {
		grid.Set(x, y, world.Wall)
	})
	for i, tile := range tiles {
		grid.Set(i+1, 1, tile)
	}

	d := state.NewDive(rng.New(1), time.Now())
	d.Level = &gameworld.Level{Grid: grid, Depth: 1, Spawn: world.Pt(1, 1)}
	d.Player = d.Level.Spawn
	return d
}

func TestMove_BlockedByWall(t *testing.T) {
	d := makeCorridorDive(t, world.Floor, world.Floor)
	if got := Move(DefaultSettings(), d, world.West); got != MoveBlocked {
		t.Errorf("Move(West) = %v, want Blocked", got)
	}
	if d.Player != world.Pt(1, 1) || d.Stats.Moves != 0 {
		t.Errorf("player %v moves %d after blocked move", d.Player, d.Stats.Moves)
	}
	if len(d.Messages) == 0 {
		t.Error("blocked move logged no message")
	}
}

func TestMove_Floor(t *testing.T) {
	d := makeCorridorDive(t, world.Floor, world.Floor)
	if got := Move(DefaultSettings(), d, world.East); got != MoveOK {
		t.Errorf("Move(East) = %v, want OK", got)
	}
	if d.Player != world.Pt(2, 1) || d.Oxygen != state.MaxOxygen {
		t.Errorf("player %v oxygen %d", d.Player, d.Oxygen)
	}
}

func TestMove_WaterDrainsOxygen(t *testing.T) {
	tests := []struct {
		name       string
		tile       world.Tile
		oxygen     int
		wantOxygen int
		wantHealth int
	}{
		{"water", world.Water, 100, 98, 100},
		{"deep water", world.DeepWater, 100, 96, 100},
		{"water drowning", world.Water, 1, 0, 95},
		{"deep water drowning", world.DeepWater, 3, 0, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := makeCorridorDive(t, world.Floor, tt.tile)
			d.Oxygen = tt.oxygen
			Move(DefaultSettings(), d, world.East)
			if d.Oxygen != tt.wantOxygen || d.Health != tt.wantHealth {
				t.Errorf("oxygen %d health %d, want %d and %d", d.Oxygen, d.Health, tt.wantOxygen, tt.wantHealth)
			}
		})
	}
}

func TestMove_AirPocketRefills(t *testing.T) {
	d := makeCorridorDive(t, world.Floor, world.AirPocket)
	d.Oxygen = 10
	Move(DefaultSettings(), d, world.East)
	if d.Oxygen != d.MaxOxygen {
		t.Errorf("Oxygen = %d, want %d", d.Oxygen, d.MaxOxygen)
	}
}

func TestMove_TreasurePaysOnce(t *testing.T) {
	d := makeCorridorDive(t, world.Floor, world.TreasureFloor, world.TreasureFloor)
	d.Depth = 3
	room := gameworld.NewRoom(world.Rect{X: 2, Y: 1, Width: 2, Height: 1})
	room.IsTreasureRoom = true
	d.Level.Rooms = []*gameworld.Room{room}

	Move(DefaultSettings(), d, world.East)
	Move(DefaultSettings(), d, world.East)
	Move(DefaultSettings(), d, world.West)

	if d.Gold != 75 {
		t.Errorf("Gold = %d, want 75", d.Gold)
	}
	if d.Stats.TreasureRoomsFound != 1 {
		t.Errorf("TreasureRoomsFound = %d, want 1", d.Stats.TreasureRoomsFound)
	}
}

func TestMove_MessagesFormatArguments(t *testing.T) {
	gotext.Configure("../../../locales", "en_GB", "default")

	d := makeCorridorDive(t, world.Floor, world.TreasureFloor, world.Water)
	d.Depth = 2
	room := gameworld.NewRoom(world.Rect{X: 2, Y: 1, Width: 1, Height: 1})
	room.IsTreasureRoom = true
	d.Level.Rooms = []*gameworld.Room{room}

	Move(DefaultSettings(), d, world.East)
	d.Oxygen = 0
	Move(DefaultSettings(), d, world.East)

	want := []string{
		"Treasure! You gather 50 gold.",
		fmt.Sprintf("Your lungs burn. You lose %d health.", WaterDrownDamage),
	}
	for _, w := range want {
		if !slices.Contains(d.Messages, w) {
			t.Errorf("Messages = %q, missing %q", d.Messages, w)
		}
	}
}

func TestMove_StairsDescend(t *testing.T) {
	d := makeCorridorDive(t, world.Floor, world.StairsDown)
	oldSeed := d.LevelSeed

	if got := Move(DefaultSettings(), d, world.East); got != MoveDescended {
		t.Fatalf("Move onto stairs = %v, want Descended", got)
	}
	if d.Depth != 2 || d.Level.Depth != 2 {
		t.Errorf("depth %d level depth %d, want 2", d.Depth, d.Level.Depth)
	}
	if d.Player != d.Level.Spawn {
		t.Errorf("player %v, want new spawn %v", d.Player, d.Level.Spawn)
	}
	if d.LevelSeed == oldSeed {
		t.Error("LevelSeed unchanged after descending")
	}
	if d.Level.Width() != DefaultSettings().Width {
		t.Errorf("new level width = %d", d.Level.Width())
	}
}

func TestMove_DeathEndsDive(t *testing.T) {
	d := makeCorridorDive(t, world.Floor, world.Water, world.Water)
	d.Oxygen = 0
	d.Health = 5

	if got := Move(DefaultSettings(), d, world.East); got != MoveDied {
		t.Fatalf("Move = %v, want Died", got)
	}
	if !d.Dead {
		t.Error("Dead = false")
	}
	if got := Move(DefaultSettings(), d, world.East); got != MoveRefused {
		t.Errorf("Move after death = %v, want Refused", got)
	}
}

func TestMove_MerchantGreeting(t *testing.T) {
	d := makeCorridorDive(t, world.Floor, world.Floor, world.Floor)
	room := gameworld.NewRoom(world.Rect{X: 2, Y: 1, Width: 2, Height: 1})
	room.IsMerchantRoom = true
	room.MerchantSpawn = world.Pt(3, 1)
	d.Level.Rooms = []*gameworld.Room{room}

	Move(DefaultSettings(), d, world.East)
	before := len(d.Messages)
	Move(DefaultSettings(), d, world.East)
	if len(d.Messages) != before+1 {
		t.Errorf("messages %d -> %d, want one greeting", before, len(d.Messages))
	}
}

func TestBuildDive_Deterministic(t *testing.T) {
	s := DefaultSettings()
	a := BuildDive(s, 1, 77, time.Now())
	b := BuildDive(s, 1, 77, time.Now())

	if a.LevelSeed != b.LevelSeed {
		t.Fatalf("level seeds differ: %d vs %d", a.LevelSeed, b.LevelSeed)
	}
	a.Level.Grid.ForEachTile(func(x, y int, tile world.Tile) {
		if b.Level.Grid.Get(x, y) != tile {
			t.Errorf("tile (%d,%d) differs", x, y)
		}
	})
	if a.Player != a.Level.Spawn {
		t.Errorf("player %v, want spawn %v", a.Player, a.Level.Spawn)
	}
	if len(a.Messages) == 0 {
		t.Error("no welcome messages")
	}
}

func TestBuildDive_StartDepth(t *testing.T) {
	d := BuildDive(DefaultSettings(), 4, 1, time.Now())
	if d.Depth != 4 || d.Level.Depth != 4 || d.Stats.DeepestDepth != 4 {
		t.Errorf("depth %d level %d deepest %d, want 4", d.Depth, d.Level.Depth, d.Stats.DeepestDepth)
	}
}

func TestResetDepth_SameLayout(t *testing.T) {
	s := DefaultSettings()
	d := BuildDive(s, 3, 12, time.Now())
	before := d.Level
	seed := d.LevelSeed
	d.Player = world.Pt(0, 0)
	d.Oxygen = 1

	ResetDepth(s, d)

	if d.LevelSeed != seed || d.Depth != 3 {
		t.Errorf("seed %d depth %d, want %d and 3", d.LevelSeed, d.Depth, seed)
	}
	if len(d.Level.Rooms) != len(before.Rooms) {
		t.Fatalf("rooms %d, want %d", len(d.Level.Rooms), len(before.Rooms))
	}
	before.Grid.ForEachTile(func(x, y int, tile world.Tile) {
		if d.Level.Grid.Get(x, y) != tile {
			t.Errorf("tile (%d,%d) changed on reset", x, y)
		}
	})
	if d.Player != d.Level.Spawn || d.Oxygen != d.MaxOxygen {
		t.Errorf("player %v oxygen %d after reset", d.Player, d.Oxygen)
	}
}

func TestDescend(t *testing.T) {
	s := DefaultSettings()
	d := BuildDive(s, 1, 5, time.Now())
	Descend(s, d)
	Descend(s, d)
	if d.Depth != 3 || d.Stats.DeepestDepth != 3 {
		t.Errorf("depth %d deepest %d, want 3", d.Depth, d.Stats.DeepestDepth)
	}
}
