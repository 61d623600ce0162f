package engine

import (
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/parameter"
)

// Snake is the player body, head first
// Heading changes are staged in pending and committed on Advance so a double keypress
// inside one tick cannot reverse into the neck
type Snake struct {
	body    []core.Point
	heading core.Heading
	pending core.Heading
	growing bool
}

// NewSnake creates a three-cell snake at start, tail trailing left, moving right
func NewSnake(start core.Point) *Snake {
	body := make([]core.Point, parameter.SnakeMinLength, 64)
	for i := range body {
		body[i] = core.Point{X: start.X - i, Y: start.Y}
	}
	return &Snake{
		body:    body,
		heading: core.HeadingRight,
		pending: core.HeadingRight,
	}
}

// SetHeading stages h for the next advance; the exact reverse of the current heading is ignored
func (s *Snake) SetHeading(h core.Heading) {
	if h.IsZero() || h == s.heading.Opposite() {
		return
	}
	s.pending = h
}

// Advance commits the pending heading and moves one cell
func (s *Snake) Advance() {
	s.heading = s.pending
	head := s.body[0].Add(s.heading)

	// Prepend in place
	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if s.growing {
		s.growing = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// MarkGrowing makes the next advance keep the tail
func (s *Snake) MarkGrowing() {
	s.growing = true
}

// ShrinkTail drops the tail segment unless that would go below the minimum length
func (s *Snake) ShrinkTail() bool {
	if len(s.body) <= parameter.SnakeMinLength {
		return false
	}
	s.body = s.body[:len(s.body)-1]
	return true
}

// HasSelfCollision reports whether the head overlaps any other segment
func (s *Snake) HasSelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment is on p
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

func (s *Snake) Head() core.Point      { return s.body[0] }
func (s *Snake) Len() int              { return len(s.body) }
func (s *Snake) Heading() core.Heading { return s.heading }
func (s *Snake) Pending() core.Heading { return s.pending }
func (s *Snake) Growing() bool         { return s.growing }

// Body returns the segments head first; callers must not modify it
func (s *Snake) Body() []core.Point {
	return s.body
}
