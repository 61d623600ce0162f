package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/parameter"
)

// zeroRand always draws the origin
type zeroRand struct{}

func (zeroRand) IntN(int) int { return 0 }

func TestGenerateObstaclesClearance(t *testing.T) {
	grid := core.Grid{Width: 40, Height: 25}
	start := grid.Center()

	for seed := uint64(1); seed <= 20; seed++ {
		o := GenerateObstacles(NewRand(seed), grid, start)

		if len(o.Positions()) > grid.Area()/parameter.ObstacleCellsPerSample {
			t.Fatalf("Seed %d: %d obstacles exceeds sample count", seed, len(o.Positions()))
		}
		for _, p := range o.Positions() {
			if !grid.Contains(p) {
				t.Errorf("Seed %d: obstacle %+v outside grid", seed, p)
			}
			if abs(p.X-start.X) <= parameter.ObstacleSpawnClearance || abs(p.Y-start.Y) <= parameter.ObstacleSpawnClearance {
				t.Errorf("Seed %d: obstacle %+v inside spawn clearance", seed, p)
			}
			if !o.Contains(p) {
				t.Errorf("Seed %d: Contains(%+v) false for generated cell", seed, p)
			}
		}
	}
}

func TestGenerateObstaclesDeterministic(t *testing.T) {
	grid := core.Grid{Width: 40, Height: 25}
	a := GenerateObstacles(NewRand(7), grid, grid.Center())
	b := GenerateObstacles(NewRand(7), grid, grid.Center())

	if len(a.Positions()) != len(b.Positions()) {
		t.Fatalf("Same seed produced %d and %d obstacles", len(a.Positions()), len(b.Positions()))
	}
	for i := range a.Positions() {
		if a.Positions()[i] != b.Positions()[i] {
			t.Errorf("Obstacle %d differs: %+v vs %+v", i, a.Positions()[i], b.Positions()[i])
		}
	}
}

func TestFoodSpawnAvoidsOccupied(t *testing.T) {
	grid := core.Grid{Width: 20, Height: 20}
	snake := NewSnake(grid.Center())
	obstacles := NewObstacles(core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 2})

	for seed := uint64(1); seed <= 50; seed++ {
		foods := NewFoodSet(3)
		occ := NewOccupancy(snake.Body()...)
		occ.Mark(obstacles.Positions()...)

		if err := foods.FillToCapacity(NewRand(seed), grid, occ); err != nil {
			t.Fatalf("FillToCapacity: %v", err)
		}
		if foods.Len() != 3 {
			t.Fatalf("Expected 3 foods, got %d", foods.Len())
		}

		seen := make(map[core.Point]bool)
		for _, p := range foods.Positions() {
			if seen[p] {
				t.Errorf("Seed %d: duplicate food at %+v", seed, p)
			}
			seen[p] = true
			if snake.Occupies(p) || obstacles.Contains(p) {
				t.Errorf("Seed %d: food on occupied cell %+v", seed, p)
			}
		}
	}
}

func TestFoodSpawnNoopAtCapacity(t *testing.T) {
	grid := core.Grid{Width: 20, Height: 20}
	foods := NewFoodSet(1)
	occ := NewOccupancy()

	if err := foods.SpawnOne(NewRand(1), grid, occ); err != nil {
		t.Fatalf("SpawnOne: %v", err)
	}
	if err := foods.SpawnOne(NewRand(2), grid, occ); err != nil {
		t.Fatalf("SpawnOne at capacity: %v", err)
	}
	if foods.Len() != 1 {
		t.Errorf("Expected capacity respected, got %d", foods.Len())
	}
}

func TestFoodConsumeAt(t *testing.T) {
	foods := NewFoodSet(3)
	foods.cells = []core.Point{{1, 1}, {2, 2}, {3, 3}}

	if foods.ConsumeAt(core.Point{X: 5, Y: 5}) {
		t.Error("Consumed food from empty cell")
	}
	if !foods.ConsumeAt(core.Point{X: 2, Y: 2}) {
		t.Error("Expected food at (2,2)")
	}
	if foods.Contains(core.Point{X: 2, Y: 2}) {
		t.Error("Food still present after consume")
	}
	if foods.Len() != 2 {
		t.Errorf("Expected 2 foods left, got %d", foods.Len())
	}
}

func TestPlacementFallsBackToScan(t *testing.T) {
	grid := core.Grid{Width: 3, Height: 2}
	occ := NewOccupancy(core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0}, core.Point{X: 2, Y: 0})

	p, err := placeFree(zeroRand{}, grid, occ)
	if err != nil {
		t.Fatalf("placeFree: %v", err)
	}
	if p != (core.Point{X: 0, Y: 1}) {
		t.Errorf("Expected scan to find (0,1), got %+v", p)
	}
}

func TestPlacementGridFull(t *testing.T) {
	grid := core.Grid{Width: 2, Height: 1}
	occ := NewOccupancy(core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0})

	foods := NewFoodSet(1)
	err := foods.SpawnOne(zeroRand{}, grid, occ)
	if !errors.Is(err, ErrGridFull) {
		t.Errorf("Expected ErrGridFull, got %v", err)
	}
	if foods.Len() != 0 {
		t.Errorf("Expected no food placed, got %d", foods.Len())
	}
}

func TestPowerUpSpawnEvictsOldest(t *testing.T) {
	grid := core.Grid{Width: 20, Height: 20}
	rng := NewRand(3)
	set := NewPowerUps(3)
	occ := NewOccupancy()

	for i := 0; i < 3; i++ {
		if err := set.SpawnOne(rng, grid, occ); err != nil {
			t.Fatalf("SpawnOne: %v", err)
		}
	}
	second := set.Items()[1]

	if err := set.SpawnOne(rng, grid, occ); err != nil {
		t.Fatalf("SpawnOne: %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("Expected cap 3, got %d", set.Len())
	}
	if set.Items()[0] != second {
		t.Errorf("Expected oldest evicted, head is now %+v, want %+v", set.Items()[0], second)
	}
}

func TestPowerUpSpawnState(t *testing.T) {
	grid := core.Grid{Width: 20, Height: 20}
	set := NewPowerUps(3)
	occ := NewOccupancy()

	if err := set.SpawnOne(NewRand(9), grid, occ); err != nil {
		t.Fatalf("SpawnOne: %v", err)
	}
	pu := set.Items()[0]
	if !pu.Active {
		t.Error("Expected new power-up active")
	}
	if pu.RemainingTime != 0 {
		t.Errorf("Expected no effect time while placed, got %d", pu.RemainingTime)
	}
	if pu.Effect == nil {
		t.Error("Expected an effect kind")
	}
	if !occ.Has(pu.Pos) {
		t.Error("Expected spawn cell marked occupied")
	}
}

func TestPowerUpCollectOnce(t *testing.T) {
	set := NewPowerUps(3)
	set.items = []PowerUp{
		{Pos: core.Point{X: 4, Y: 4}, Effect: Shrink{}, Active: true},
		{Pos: core.Point{X: 4, Y: 4}, Effect: SpeedBoost{}, Active: true},
	}

	first := set.Collect(core.Point{X: 4, Y: 4})
	if first == nil || first.Effect != (Shrink{}) {
		t.Fatalf("Expected first match in scan order, got %+v", first)
	}
	if first.Active {
		t.Error("Expected collected power-up deactivated")
	}
	if !set.ActiveAt(core.Point{X: 4, Y: 4}) {
		t.Error("Expected the second power-up untouched")
	}
	if set.Collect(core.Point{X: 9, Y: 9}) != nil {
		t.Error("Collected from an empty cell")
	}
}

func TestEffectSymbols(t *testing.T) {
	want := map[rune]string{
		'S': "Speed Boost",
		'L': "Slow Motion",
		'D': "Double Score",
		'I': "Invincibility",
		'R': "Shrink",
	}
	if len(Effects()) != len(want) {
		t.Fatalf("Expected %d kinds, got %d", len(want), len(Effects()))
	}
	for _, e := range Effects() {
		if want[e.Symbol()] != e.Name() {
			t.Errorf("Symbol %c mapped to %q", e.Symbol(), e.Name())
		}
	}
}
