package input

import (
	"sort"
	"strings"

	"turtledepths/pkg/engine/world"
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Meta
	ActionHelp
	ActionQuit
	ActionResetLevel
	ActionDumpMap
)

// bindings maps raw codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, NSEW, Vim)
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"n":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"w":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"e":           ActionMoveEast,
	"l":           ActionMoveEast,

	"?":    ActionHelp,
	"help": ActionHelp,

	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,

	"reset": ActionResetLevel,
	"r":     ActionResetLevel,

	"dump": ActionDumpMap,
}

// MapToAction applies the bindings to a raw code. Codes are matched
// case-insensitively after trimming.
func MapToAction(code string) Action {
	if act, ok := bindings[strings.ToLower(strings.TrimSpace(code))]; ok {
		return act
	}
	return ActionNone
}

// Direction returns the movement direction of a move action.
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	case ActionMoveEast:
		return world.East, true
	}
	return world.North, false
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionResetLevel:
		return "Reset Depth"
	case ActionDumpMap:
		return "Dump Map"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help output doesn't shuffle.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
