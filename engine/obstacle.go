package engine

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/parameter"
)

// Obstacles is the static wall field of a round, immutable once generated
type Obstacles struct {
	positions []core.Point
	index     mapset.Set[core.Point]
}

// GenerateObstacles samples area/50 cells and keeps those clear of the spawn on both axes
// Duplicates are kept as drawn; the field behaves the same either way
func GenerateObstacles(rng Rand, grid core.Grid, snakeStart core.Point) *Obstacles {
	o := &Obstacles{index: mapset.New[core.Point]()}

	samples := grid.Area() / parameter.ObstacleCellsPerSample
	for i := 0; i < samples; i++ {
		p := core.Point{X: rng.IntN(grid.Width), Y: rng.IntN(grid.Height)}
		if abs(p.X-snakeStart.X) > parameter.ObstacleSpawnClearance &&
			abs(p.Y-snakeStart.Y) > parameter.ObstacleSpawnClearance {
			o.add(p)
		}
	}
	return o
}

// NewObstacles builds a field from fixed positions
func NewObstacles(points ...core.Point) *Obstacles {
	o := &Obstacles{index: mapset.New[core.Point]()}
	for _, p := range points {
		o.add(p)
	}
	return o
}

func (o *Obstacles) add(p core.Point) {
	o.positions = append(o.positions, p)
	o.index.Put(p)
}

// Contains reports whether p is an obstacle cell
func (o *Obstacles) Contains(p core.Point) bool {
	return o.index.Has(p)
}

// Positions returns the generated cells, duplicates included; callers must not modify it
func (o *Obstacles) Positions() []core.Point {
	return o.positions
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
