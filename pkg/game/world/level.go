// Package world provides game-specific world extensions for Turtle Depths.
// It extends the generic engine/world primitives with rooms and levels.
package world

import (
	"turtledepths/pkg/engine/world"
)

// Room is a placed rectangular room. Its geometry never changes after
// placement; feature passes only set the flags.
type Room struct {
	world.Rect

	IsTreasureRoom bool
	IsMerchantRoom bool

	// MerchantSpawn is only meaningful when IsMerchantRoom is set.
	MerchantSpawn world.Point
}

// NewRoom creates an unflagged room covering r
func NewRoom(r world.Rect) *Room {
	return &Room{Rect: r}
}

// Level is one generated floor of the dungeon.
type Level struct {
	Grid  *world.Grid
	Rooms []*Room // generation order == connection order
	Depth int

	Stairs    world.Point
	HasStairs bool

	Spawn world.Point
}

// Width returns the width of the level grid
func (l *Level) Width() int {
	return l.Grid.Width()
}

// Height returns the height of the level grid
func (l *Level) Height() int {
	return l.Grid.Height()
}

// RoomAt returns the first room containing p, or nil
func (l *Level) RoomAt(p world.Point) *Room {
	for _, r := range l.Rooms {
		if r.Contains(p) {
			return r
		}
	}
	return nil
}

// TreasureRoom returns the treasure room, or nil
func (l *Level) TreasureRoom() *Room {
	for _, r := range l.Rooms {
		if r.IsTreasureRoom {
			return r
		}
	}
	return nil
}

// MerchantRoom returns the merchant room, or nil
func (l *Level) MerchantRoom() *Room {
	for _, r := range l.Rooms {
		if r.IsMerchantRoom {
			return r
		}
	}
	return nil
}

// IsWalkable reports whether p is inside the grid and walkable.
func (l *Level) IsWalkable(p world.Point) bool {
	return l.Grid.At(p).IsWalkable()
}
