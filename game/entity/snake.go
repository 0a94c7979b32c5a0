package entity

import (
	"tile-snake/game/grid"
	"tile-snake/game/types"
)

// FoodSource is the pending feed effect, consumed on the next step.
type FoodSource int

const (
	FoodNone FoodSource = iota
	FoodGrow
	FoodShrink
)

func (f FoodSource) String() string {
	switch f {
	case FoodGrow:
		return "grow"
	case FoodShrink:
		return "shrink"
	default:
		return "none"
	}
}

// Segment is one body unit. Direction is the way it faced when it was last
// the head.
type Segment struct {
	Point     grid.Point
	Direction grid.Direction
}

// stepEpsilon absorbs float rounding so frame times summing to one tile
// step on the frame that completes it.
const stepEpsilon = 1e-9

type Snake struct {
	segments   []Segment // head first
	direction  grid.Direction
	foodSource FoodSource
	distance   float64
	velocity   float64
}

// NewSnake lays out InitialLength segments facing right, head at start and
// the rest trailing to the left.
func NewSnake(g grid.Grid, start grid.Point, velocity float64) *Snake {
	segments := make([]Segment, 0, types.InitialLength)
	for i := 0; i < types.InitialLength; i++ {
		segments = append(segments, Segment{
			Point:     g.TileAt(start.X()-i, start.Y()),
			Direction: grid.Right,
		})
	}
	return &Snake{
		segments:  segments,
		direction: grid.Right,
		velocity:  velocity,
	}
}

func (s *Snake) Head() Segment { return s.segments[0] }
func (s *Snake) Len() int      { return len(s.segments) }

// Segments returns a copy of the chain, head first.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Direction is the pending direction used by the next step.
func (s *Snake) Direction() grid.Direction { return s.direction }
func (s *Snake) FoodSource() FoodSource    { return s.foodSource }
func (s *Snake) Distance() float64         { return s.distance }
func (s *Snake) Velocity() float64         { return s.velocity }

// Turn latches d as the pending direction. It is rejected when d reverses
// either the pending direction or the way the head is facing.
func (s *Snake) Turn(d grid.Direction) bool {
	if d == s.direction.Opposite() || d == s.Head().Direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// Feed sets the pending effect. Effects don't stack: it is rejected while
// another one is still pending.
func (s *Snake) Feed(f FoodSource) bool {
	if f == FoodNone || s.foodSource != FoodNone {
		return false
	}
	s.foodSource = f
	return true
}

// HandleInput folds one frame of pressed keys into the pending state.
func (s *Snake) HandleInput(in types.Input) {
	if in.Up {
		s.Turn(grid.Up)
	}
	if in.Down {
		s.Turn(grid.Down)
	}
	if in.Left {
		s.Turn(grid.Left)
	}
	if in.Right {
		s.Turn(grid.Right)
	}
	if in.Grow {
		s.Feed(FoodGrow)
	}
	if in.Shrink {
		s.Feed(FoodShrink)
	}
}

// Update adds elapsed seconds of travel and steps one tile once a full tile
// has been covered. The overshoot carries into the next update. It reports
// whether a step happened.
func (s *Snake) Update(g grid.Grid, elapsed float64) bool {
	s.distance += elapsed * s.velocity
	if s.distance+stepEpsilon < grid.TileSize {
		return false
	}
	s.distance = max(s.distance-grid.TileSize, 0)
	s.step(g)
	return true
}

func (s *Snake) step(g grid.Grid) {
	newHead := Segment{
		Point:     g.Advance(s.Head().Point, s.direction),
		Direction: s.direction,
	}

	// The old head becomes the neck; it keeps the new facing so the turn
	// is drawn as a corner.
	if s.segments[0].Direction != newHead.Direction {
		s.segments[0].Direction = newHead.Direction
	}

	s.handleEating()
	s.segments = append(s.segments, Segment{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = newHead
}

func (s *Snake) handleEating() {
	switch s.foodSource {
	case FoodNone:
		s.removeTail()
	case FoodGrow:
		s.foodSource = FoodNone
	case FoodShrink:
		s.removeTail()
		if len(s.segments) >= 3 {
			s.removeTail()
		}
		s.foodSource = FoodNone
	}
}

func (s *Snake) removeTail() {
	if len(s.segments) > 0 {
		s.segments = s.segments[:len(s.segments)-1]
	}
}
