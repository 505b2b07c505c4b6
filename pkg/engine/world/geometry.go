package world

import "fmt"

// Point is an integer grid position.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{x, y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Step returns the neighbouring point in the given direction
func (p Point) Step(dir Direction) Point {
	dx, dy := dir.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle of tiles covering
// [X, X+Width) × [Y, Y+Height).
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Center returns (X + Width/2, Y + Height/2) using integer division.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Expand grows the rectangle by n tiles on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// Intersects reports whether the two rectangles share at least one tile.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// ForEach calls fn for every tile position inside the rectangle, column by column.
func (r Rect) ForEach(fn func(p Point)) {
	for x := r.X; x < r.X+r.Width; x++ {
		for y := r.Y; y < r.Y+r.Height; y++ {
			fn(Point{X: x, Y: y})
		}
	}
}
