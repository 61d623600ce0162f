package engine

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/parameter"
)

// ErrGridFull is returned when no free cell is left for a placement
var ErrGridFull = errors.New("no free cell left on grid")

// Occupancy is the set of cells a new item may not be placed on
type Occupancy struct {
	cells mapset.Set[core.Point]
}

// NewOccupancy creates an occupancy set seeded with the given cells
func NewOccupancy(points ...core.Point) *Occupancy {
	o := &Occupancy{cells: mapset.New[core.Point]()}
	o.Mark(points...)
	return o
}

// Mark adds cells to the set
func (o *Occupancy) Mark(points ...core.Point) {
	for _, p := range points {
		o.cells.Put(p)
	}
}

// Has reports whether p is taken
func (o *Occupancy) Has(p core.Point) bool {
	return o.cells.Has(p)
}

// Size returns the number of distinct taken cells
func (o *Occupancy) Size() int {
	return o.cells.Size()
}

// placeFree rejection-samples a free cell
// Falls back to a row-major scan once the attempt budget runs out so a crowded grid still terminates
func placeFree(rng Rand, grid core.Grid, occ *Occupancy) (core.Point, error) {
	for i := 0; i < parameter.MaxPlacementAttempts; i++ {
		p := core.Point{X: rng.IntN(grid.Width), Y: rng.IntN(grid.Height)}
		if !occ.Has(p) {
			return p, nil
		}
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := core.Point{X: x, Y: y}
			if !occ.Has(p) {
				return p, nil
			}
		}
	}
	return core.Point{}, ErrGridFull
}
