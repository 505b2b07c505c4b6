// Package world provides generic 2D tile-grid primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Grid is a fixed-size tile map indexed [x][y].
type Grid struct {
	tiles  [][]Tile
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions, every tile Void
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.tiles = make([][]Tile, width)
	for x := range g.tiles {
		g.tiles[x] = make([]Tile, height)
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the tile at the given position, or Void if out of bounds
func (g *Grid) Get(x, y int) Tile {
	if !g.IsValidPosition(x, y) {
		return Void
	}
	return g.tiles[x][y]
}

// At is Get for a Point
func (g *Grid) At(p Point) Tile {
	return g.Get(p.X, p.Y)
}

// Set writes a tile. Returns false if out of bounds.
func (g *Grid) Set(x, y int, t Tile) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.tiles[x][y] = t
	return true
}

// Replace sets the tile at (x, y) to to only if it currently holds from.
func (g *Grid) Replace(x, y int, from, to Tile) bool {
	if g.Get(x, y) != from || !g.IsValidPosition(x, y) {
		return false
	}
	g.tiles[x][y] = to
	return true
}

// HasNeighbor8 reports whether any of the eight tiles around (x, y) is t.
func (g *Grid) HasNeighbor8(x, y int, t Tile) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.IsValidPosition(x+dx, y+dy) && g.tiles[x+dx][y+dy] == t {
				return true
			}
		}
	}
	return false
}

// ForEachTile iterates over all tiles in the grid, row by row
func (g *Grid) ForEachTile(fn func(x, y int, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.tiles[x][y])
		}
	}
}

// Count returns how many tiles of type t the grid holds
func (g *Grid) Count(t Tile) int {
	n := 0
	g.ForEachTile(func(_, _ int, tile Tile) {
		if tile == t {
			n++
		}
	})
	return n
}

// Find returns the positions of every tile of type t
func (g *Grid) Find(t Tile) []Point {
	var found []Point
	g.ForEachTile(func(x, y int, tile Tile) {
		if tile == t {
			found = append(found, Point{X: x, Y: y})
		}
	})
	return found
}
