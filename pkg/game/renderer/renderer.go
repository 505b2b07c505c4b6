// Package renderer maps level contents to glyphs and styles, and holds the
// active rendering backend.
package renderer

import (
	"turtledepths/pkg/engine/world"
	gameworld "turtledepths/pkg/game/world"
)

// Glyphs drawn on top of the tile layer.
const (
	GlyphPlayer   = '@'
	GlyphMerchant = 'M'
)

var tileGlyphs = map[world.Tile]rune{
	world.Void:          ' ',
	world.Floor:         '.',
	world.Wall:          '#',
	world.StairsDown:    '>',
	world.Water:         '~',
	world.DeepWater:     '≈',
	world.AirPocket:     'o',
	world.TreasureFloor: '$',
}

var tileStyles = map[world.Tile]TextStyle{
	world.Floor:         StyleFloor,
	world.Wall:          StyleWall,
	world.StairsDown:    StyleStairs,
	world.Water:         StyleWater,
	world.DeepWater:     StyleDeepWater,
	world.AirPocket:     StyleAirPocket,
	world.TreasureFloor: StyleTreasure,
}

// Glyph returns the character used for a tile
func Glyph(t world.Tile) rune {
	if g, ok := tileGlyphs[t]; ok {
		return g
	}
	return '?'
}

// StyleFor returns the text style used for a tile
func StyleFor(t world.Tile) TextStyle {
	if s, ok := tileStyles[t]; ok {
		return s
	}
	return StyleNormal
}

// CellAt resolves what is drawn at p: the player if player is non-nil and
// stands there, then the merchant, then the tile itself.
func CellAt(level *gameworld.Level, p world.Point, player *world.Point) (rune, TextStyle) {
	if player != nil && *player == p {
		return GlyphPlayer, StylePlayer
	}
	if m := level.MerchantRoom(); m != nil && m.MerchantSpawn == p {
		return GlyphMerchant, StyleMerchant
	}
	t := level.Grid.At(p)
	return Glyph(t), StyleFor(t)
}

// LegendEntry describes one glyph for map legends
type LegendEntry struct {
	Glyph rune
	Name  string
}

// Legend lists the glyphs a rendered level may contain, in display order.
func Legend() []LegendEntry {
	return []LegendEntry{
		{GlyphPlayer, "Player"},
		{Glyph(world.Wall), "Wall"},
		{Glyph(world.Floor), "Floor"},
		{Glyph(world.Water), "Water"},
		{Glyph(world.DeepWater), "Deep water"},
		{Glyph(world.AirPocket), "Air pocket"},
		{Glyph(world.TreasureFloor), "Treasure"},
		{GlyphMerchant, "Merchant"},
		{Glyph(world.StairsDown), "Stairs down"},
	}
}
