// Package state holds the mutable state of one dive through the flooded ruins.
package state

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"turtledepths/pkg/engine/rng"
	"turtledepths/pkg/engine/world"
	gameworld "turtledepths/pkg/game/world"
)

// Player vitals.
const (
	MaxOxygen   = 100
	MaxHealth   = 100
	maxMessages = 5
)

// Stats are the per-dive records shown at the end.
type Stats struct {
	DeepestDepth       int
	TreasureRoomsFound int
	Moves              int
}

// Dive represents the game state of a single dive
type Dive struct {
	Depth int // current floor, 1-based
	Level *gameworld.Level

	Player world.Point

	Oxygen    int
	MaxOxygen int
	Health    int
	MaxHealth int
	Gold      int

	// LevelSeed regenerates the current floor on reset.
	LevelSeed int64
	// Seeds draws the seed of each new floor.
	Seeds rng.Source

	// VisitedTreasure records the bounds of treasure rooms already looted on
	// this floor. Bounds survive a reset, which regenerates the same rooms.
	VisitedTreasure mapset.Set[world.Rect]

	Messages []string
	Stats    Stats

	StartedAt time.Time
	Dead      bool
}

// NewDive creates a dive at depth 1 with full vitals. seeds supplies the
// per-floor seeds.
func NewDive(seeds rng.Source, now time.Time) *Dive {
	return &Dive{
		Depth:           1,
		Oxygen:          MaxOxygen,
		MaxOxygen:       MaxOxygen,
		Health:          MaxHealth,
		MaxHealth:       MaxHealth,
		Seeds:           seeds,
		VisitedTreasure: mapset.New[world.Rect](),
		Messages:        make([]string, 0),
		Stats:           Stats{DeepestDepth: 1},
		StartedAt:       now,
	}
}

// AddMessage adds a message to the dive's message log
func (d *Dive) AddMessage(msg string) {
	d.Messages = append(d.Messages, msg)

	// Keep only the last maxMessages
	if len(d.Messages) > maxMessages {
		d.Messages = d.Messages[len(d.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (d *Dive) ClearMessages() {
	d.Messages = make([]string, 0)
}

// AdvanceDepth increments the depth and resets floor-specific state
func (d *Dive) AdvanceDepth() {
	d.Depth++
	if d.Depth > d.Stats.DeepestDepth {
		d.Stats.DeepestDepth = d.Depth
	}
	d.VisitedTreasure = mapset.New[world.Rect]()
}

// RestoreOxygen refills the oxygen tank
func (d *Dive) RestoreOxygen() {
	d.Oxygen = d.MaxOxygen
}

// UseOxygen drains n oxygen, not below zero
func (d *Dive) UseOxygen(n int) {
	d.Oxygen = max(0, d.Oxygen-n)
}

// TakeDamage lowers health by n and marks the dive dead at zero.
func (d *Dive) TakeDamage(n int) {
	d.Health = max(0, d.Health-n)
	if d.Health == 0 {
		d.Dead = true
	}
}

// SecondsAlive returns whole seconds since the dive started
func (d *Dive) SecondsAlive(now time.Time) int {
	if now.Before(d.StartedAt) {
		return 0
	}
	return int(now.Sub(d.StartedAt) / time.Second)
}

// Score is depth*1000 + gold*10 + seconds alive.
func (d *Dive) Score(now time.Time) int {
	return d.Depth*1000 + d.Gold*10 + d.SecondsAlive(now)
}
