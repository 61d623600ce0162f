package core

// Point is a cell coordinate on the playfield
type Point struct {
	X, Y int
}

// Add returns the point moved one step along h
func (p Point) Add(h Heading) Point {
	return Point{X: p.X + h.DX, Y: p.Y + h.DY}
}

// Heading is a unit step on the grid
type Heading struct {
	DX, DY int
}

// Cardinal headings, screen coordinates (y grows downward)
var (
	HeadingUp    = Heading{DX: 0, DY: -1}
	HeadingDown  = Heading{DX: 0, DY: 1}
	HeadingLeft  = Heading{DX: -1, DY: 0}
	HeadingRight = Heading{DX: 1, DY: 0}
)

// Opposite returns the reversed heading
func (h Heading) Opposite() Heading {
	return Heading{DX: -h.DX, DY: -h.DY}
}

// IsZero reports whether h carries no movement
func (h Heading) IsZero() bool {
	return h.DX == 0 && h.DY == 0
}

// Grid is the playfield size, cells span [0,Width) x [0,Height)
type Grid struct {
	Width, Height int
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area returns the number of cells
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center returns the cell the snake spawns on
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}
