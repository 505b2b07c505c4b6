package generator

import (
	gameworld "turtledepths/pkg/game/world"
)

// LevelGenerator is an interface for level generation algorithms
type LevelGenerator interface {
	Generate(width, height, depth int) *gameworld.Level
	Name() string
}

// Default map and room dimensions.
const (
	DefaultMapWidth  = 25
	DefaultMapHeight = 18
)

// DefaultParams are the room tuning values the flooded ruins are built with.
var DefaultParams = Params{
	RoomMinSize: 3,
	RoomMaxSize: 8,
	MaxRooms:    8,
}
