package game

import (
	"math"

	"tile-snake/game/grid"
)

// Role selects the texture a segment is drawn with.
type Role int

const (
	RoleHead Role = iota
	RoleNeck
	RoleBody
	RoleTail
)

func (r Role) String() string {
	switch r {
	case RoleHead:
		return "head"
	case RoleNeck:
		return "neck"
	case RoleBody:
		return "body"
	default:
		return "tail"
	}
}

// Renderable is one segment as the renderer sees it.
type Renderable struct {
	X, Y   float32
	Facing grid.Direction
	Role   Role
}

// Rotation returns the clockwise texture rotation in radians for a facing.
// Textures are drawn pointing right.
func Rotation(d grid.Direction) float32 {
	switch d {
	case grid.Down:
		return math.Pi / 2
	case grid.Left:
		return math.Pi
	case grid.Up:
		return 3 * math.Pi / 2
	default:
		return 0
	}
}

// RoleAt returns the role of index i in a chain of length n. The head wins
// over the tail, and the tail over the neck, on chains too short to have
// all four parts.
func RoleAt(i, n int) Role {
	switch {
	case i == 0:
		return RoleHead
	case i == n-1:
		return RoleTail
	case i == 1:
		return RoleNeck
	default:
		return RoleBody
	}
}

// Renderables returns the chain head first, ready to draw.
func (g *Game) Renderables() []Renderable {
	segments := g.Snake.Segments()
	out := make([]Renderable, len(segments))
	for i, seg := range segments {
		out[i] = Renderable{
			X:      seg.Point.PixelX(),
			Y:      seg.Point.PixelY(),
			Facing: seg.Direction,
			Role:   RoleAt(i, len(segments)),
		}
	}
	return out
}
