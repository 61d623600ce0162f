package engine

import "github.com/lixenwraith/term-snake/core"

// PowerUp is a collectible item
// Active means it is still on the grid; RemainingTime counts its effect after collection
type PowerUp struct {
	Pos           core.Point
	Effect        Effect
	Active        bool
	RemainingTime int
}

// PowerUps is the living set, insertion ordered
type PowerUps struct {
	items []PowerUp
	max   int
}

// NewPowerUps creates an empty set holding at most max entries
func NewPowerUps(max int) *PowerUps {
	return &PowerUps{
		items: make([]PowerUp, 0, max+1),
		max:   max,
	}
}

// SpawnOne places a random kind on a free cell and marks it in occ
// Exceeding the cap evicts the oldest entry, collected or not
func (s *PowerUps) SpawnOne(rng Rand, grid core.Grid, occ *Occupancy) error {
	p, err := placeFree(rng, grid, occ)
	if err != nil {
		return err
	}
	s.items = append(s.items, PowerUp{
		Pos:    p,
		Effect: effectKinds[rng.IntN(len(effectKinds))],
		Active: true,
	})
	occ.Mark(p)

	if len(s.items) > s.max {
		n := copy(s.items, s.items[1:])
		s.items = s.items[:n]
	}
	return nil
}

// Collect deactivates the first active power-up at p and returns it, nil when none
func (s *PowerUps) Collect(p core.Point) *PowerUp {
	for i := range s.items {
		pu := &s.items[i]
		if pu.Active && pu.Pos == p {
			pu.Active = false
			return pu
		}
	}
	return nil
}

// Tick counts down every running effect timer
func (s *PowerUps) Tick() {
	for i := range s.items {
		if s.items[i].RemainingTime > 0 {
			s.items[i].RemainingTime--
		}
	}
}

// AnyEffectRunning reports whether some entry still has effect time left
func (s *PowerUps) AnyEffectRunning() bool {
	for i := range s.items {
		if s.items[i].RemainingTime > 0 {
			return true
		}
	}
	return false
}

// ActiveAt reports whether an uncollected power-up sits on p
func (s *PowerUps) ActiveAt(p core.Point) bool {
	for i := range s.items {
		if s.items[i].Active && s.items[i].Pos == p {
			return true
		}
	}
	return false
}

func (s *PowerUps) Len() int { return len(s.items) }

// Items returns the set in insertion order; callers must not modify it
func (s *PowerUps) Items() []PowerUp {
	return s.items
}
