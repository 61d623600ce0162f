package engine

import "github.com/lixenwraith/term-snake/core"

// FoodSet holds up to capacity food cells, each unique
type FoodSet struct {
	cells    []core.Point
	capacity int
}

// NewFoodSet creates an empty set
func NewFoodSet(capacity int) *FoodSet {
	return &FoodSet{
		cells:    make([]core.Point, 0, capacity),
		capacity: capacity,
	}
}

// SpawnOne places one food on a free cell and marks it in occ; no-op at capacity
func (f *FoodSet) SpawnOne(rng Rand, grid core.Grid, occ *Occupancy) error {
	if len(f.cells) >= f.capacity {
		return nil
	}
	p, err := placeFree(rng, grid, occ)
	if err != nil {
		return err
	}
	f.cells = append(f.cells, p)
	occ.Mark(p)
	return nil
}

// FillToCapacity spawns until the set is full
func (f *FoodSet) FillToCapacity(rng Rand, grid core.Grid, occ *Occupancy) error {
	for len(f.cells) < f.capacity {
		if err := f.SpawnOne(rng, grid, occ); err != nil {
			return err
		}
	}
	return nil
}

// ConsumeAt removes the food at p and reports whether there was one
// The caller owes exactly one replacement spawn
func (f *FoodSet) ConsumeAt(p core.Point) bool {
	for i, c := range f.cells {
		if c == p {
			f.cells = append(f.cells[:i], f.cells[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether food sits on p
func (f *FoodSet) Contains(p core.Point) bool {
	for _, c := range f.cells {
		if c == p {
			return true
		}
	}
	return false
}

func (f *FoodSet) Len() int      { return len(f.cells) }
func (f *FoodSet) Capacity() int { return f.capacity }

// Positions returns the food cells; callers must not modify it
func (f *FoodSet) Positions() []core.Point {
	return f.cells
}
