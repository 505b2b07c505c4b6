package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"turtledepths/pkg/engine/world"
	"turtledepths/pkg/game/state"
)

// MoveResult is the outcome of one step.
type MoveResult int

const (
	MoveBlocked MoveResult = iota
	MoveOK
	MoveDescended
	MoveDied
	MoveRefused // the dive is already over
)

func (r MoveResult) String() string {
	switch r {
	case MoveBlocked:
		return "Blocked"
	case MoveOK:
		return "OK"
	case MoveDescended:
		return "Descended"
	case MoveDied:
		return "Died"
	case MoveRefused:
		return "Refused"
	default:
		return "Unknown"
	}
}

// Tile effect values.
const (
	WaterOxygenCost      = 2
	DeepWaterOxygenCost  = 4
	WaterDrownDamage     = 5
	DeepDrownDamage      = 10
	TreasureGoldPerDepth = 25
)

// Move steps the player one tile in dir and applies the effect of the tile
// stepped onto.
func Move(s Settings, d *state.Dive, dir world.Direction) MoveResult {
	if d.Dead {
		return MoveRefused
	}

	target := d.Player.Step(dir)
	if !d.Level.IsWalkable(target) {
		logMessage(d, gotext.Get("BLOCKED"))
		return MoveBlocked
	}

	d.Player = target
	d.Stats.Moves++

	return applyTileEffects(s, d)
}

func applyTileEffects(s Settings, d *state.Dive) MoveResult {
	switch d.Level.Grid.At(d.Player) {
	case world.StairsDown:
		Descend(s, d)
		return MoveDescended
	case world.Water:
		handleWater(d, WaterOxygenCost, WaterDrownDamage)
	case world.DeepWater:
		handleWater(d, DeepWaterOxygenCost, DeepDrownDamage)
	case world.AirPocket:
		d.RestoreOxygen()
		logMessage(d, gotext.Get("AIR_POCKET"))
	case world.TreasureFloor:
		handleTreasure(d)
	}

	if room := d.Level.RoomAt(d.Player); room != nil && room.IsMerchantRoom && room.MerchantSpawn == d.Player {
		logMessage(d, gotext.Get("MERCHANT_GREETING"))
	}

	if d.Dead {
		logMessage(d, gotext.Get("GAME_OVER"))
		return MoveDied
	}
	return MoveOK
}

// handleWater drains oxygen and, once the tank is empty, deals drowning damage.
func handleWater(d *state.Dive, cost, damage int) {
	d.UseOxygen(cost)
	if d.Oxygen == 0 {
		d.TakeDamage(damage)
		logMessage(d, fmt.Sprintf(gotext.Get("DROWNING"), damage))
	}
}

// handleTreasure pays out the first time the player enters a treasure room.
func handleTreasure(d *state.Dive) {
	room := d.Level.RoomAt(d.Player)
	if room == nil || !room.IsTreasureRoom || d.VisitedTreasure.Has(room.Rect) {
		return
	}
	d.VisitedTreasure.Put(room.Rect)

	gold := TreasureGoldPerDepth * d.Depth
	d.Gold += gold
	d.Stats.TreasureRoomsFound++
	logMessage(d, fmt.Sprintf(gotext.Get("TREASURE_FOUND"), gold))
}

// logMessage adds a message to the dive log
func logMessage(d *state.Dive, msg string) {
	d.AddMessage(msg)
}
