// Package ebiten provides an Ebiten-based 2D graphical renderer for Turtle Depths.
package ebiten

import (
	"image/color"

	"turtledepths/pkg/engine/world"
)

// Color palette for the map
var (
	colorBackground = color.RGBA{8, 20, 40, 255}     // Deep navy
	colorWall       = color.RGBA{70, 80, 100, 255}   // Slate
	colorFloor      = color.RGBA{150, 140, 110, 255} // Sand
	colorWater      = color.RGBA{40, 120, 200, 255}  // Shallow blue
	colorDeepWater  = color.RGBA{15, 50, 130, 255}   // Dark blue
	colorAirPocket  = color.RGBA{180, 240, 255, 255} // Pale cyan
	colorTreasure   = color.RGBA{255, 210, 60, 255}  // Gold
	colorStairs     = color.RGBA{100, 255, 100, 255} // Bright green
	colorMerchant   = color.RGBA{220, 120, 255, 255} // Purple
	colorPlayer     = color.RGBA{40, 200, 120, 255}  // Turtle green
	colorOxygenLow  = color.RGBA{255, 100, 100, 255} // Bright red
)

// Window and tile sizing
const (
	DefaultTileSize = 24
	hudHeight       = 48
	tileGap         = 1
)

var tileColors = map[world.Tile]color.RGBA{
	world.Floor:         colorFloor,
	world.Wall:          colorWall,
	world.StairsDown:    colorStairs,
	world.Water:         colorWater,
	world.DeepWater:     colorDeepWater,
	world.AirPocket:     colorAirPocket,
	world.TreasureFloor: colorTreasure,
}

// tileColor returns the fill colour for a tile; false for tiles left undrawn
func tileColor(t world.Tile) (color.RGBA, bool) {
	c, ok := tileColors[t]
	return c, ok
}
