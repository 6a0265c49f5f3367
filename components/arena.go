package components

import (
	"github.com/automoto/pong-royale/shared/gamemath"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

// ArenaData is the square playfield. It is fixed for the life of a match.
type ArenaData struct {
	Field  gamemath.Rect // full field the arena is centred in
	Bounds gamemath.Rect // playable square
	Side   float64
	Margin float64
	Wall   float64 // thickness of a wall standing on an undefended edge
}

var Arena = donburi.NewComponentType[ArenaData]()

// NewArena centres the largest square that fits inside the field after
// leaving a margin on every side.
func NewArena(r tuning.ArenaRules) ArenaData {
	short := min(r.FieldWidth, r.FieldHeight)
	margin := short * r.MarginRatio
	side := short - 2*margin
	return ArenaData{
		Field: gamemath.Rect{W: r.FieldWidth, H: r.FieldHeight},
		Bounds: gamemath.Rect{
			X: (r.FieldWidth - side) / 2,
			Y: (r.FieldHeight - side) / 2,
			W: side,
			H: side,
		},
		Side:   side,
		Margin: margin,
		Wall:   side * r.WallRatio,
	}
}

func (a *ArenaData) Center() gamemath.Vec2 {
	return a.Bounds.Center()
}

// Contains reports whether p is inside the playable square.
func (a *ArenaData) Contains(p gamemath.Vec2) bool {
	return a.Bounds.Contains(p)
}

// EdgeCoord returns the boundary coordinate of an edge: a y value for top and
// bottom, an x value for left and right.
func (a *ArenaData) EdgeCoord(edge int) float64 {
	switch edge {
	case tuning.EdgeTop:
		return a.Bounds.Y
	case tuning.EdgeRight:
		return a.Bounds.Right()
	case tuning.EdgeBottom:
		return a.Bounds.Bottom()
	default:
		return a.Bounds.X
	}
}

// TravelRange returns the span a paddle of the given length may start at
// along its edge.
func (a *ArenaData) TravelRange(edge int, length float64) (lo, hi float64) {
	if IsHorizontal(edge) {
		return a.Bounds.X, a.Bounds.Right() - length
	}
	return a.Bounds.Y, a.Bounds.Bottom() - length
}

// Midpoint is the paddle start position that centres it on its edge.
func (a *ArenaData) Midpoint(edge int, length float64) float64 {
	if IsHorizontal(edge) {
		return a.Bounds.X + (a.Side-length)/2
	}
	return a.Bounds.Y + (a.Side-length)/2
}

// WallRect is the solid strip that replaces an undefended edge.
func (a *ArenaData) WallRect(edge int) gamemath.Rect {
	b := a.Bounds
	switch edge {
	case tuning.EdgeTop:
		return gamemath.Rect{X: b.X, Y: b.Y, W: b.W, H: a.Wall}
	case tuning.EdgeRight:
		return gamemath.Rect{X: b.Right() - a.Wall, Y: b.Y, W: a.Wall, H: b.H}
	case tuning.EdgeBottom:
		return gamemath.Rect{X: b.X, Y: b.Bottom() - a.Wall, W: b.W, H: a.Wall}
	default:
		return gamemath.Rect{X: b.X, Y: b.Y, W: a.Wall, H: b.H}
	}
}

// IsHorizontal reports whether an edge runs along the x axis.
func IsHorizontal(edge int) bool {
	return edge == tuning.EdgeTop || edge == tuning.EdgeBottom
}

// Inward is the unit normal pointing from an edge into the field.
func Inward(edge int) gamemath.Vec2 {
	switch edge {
	case tuning.EdgeTop:
		return gamemath.Vec2{Y: 1}
	case tuning.EdgeRight:
		return gamemath.Vec2{X: -1}
	case tuning.EdgeBottom:
		return gamemath.Vec2{Y: -1}
	default:
		return gamemath.Vec2{X: 1}
	}
}

// Along is the unit vector of increasing paddle position on an edge.
func Along(edge int) gamemath.Vec2 {
	if IsHorizontal(edge) {
		return gamemath.Vec2{X: 1}
	}
	return gamemath.Vec2{Y: 1}
}
