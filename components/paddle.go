package components

import (
	"github.com/automoto/pong-royale/shared/gamemath"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

// MoveDir is a latched paddle movement.
type MoveDir int

const (
	MoveNone MoveDir = iota
	MoveTowardStart
	MoveTowardEnd
)

// PaddleData is the paddle guarding one edge. Position is the paddle's start
// coordinate along the edge.
type PaddleData struct {
	Edge        int
	Position    float64
	Length      float64
	Thickness   float64
	Inset       float64
	HitDistance float64
	HitDuration int
	HitTimer    int
	Speed       float64
	Moving      MoveDir
}

var Paddle = donburi.NewComponentType[PaddleData]()

// NewPaddle sizes a paddle for the arena and centres it on its edge.
func NewPaddle(edge int, a *ArenaData, r tuning.PaddleRules) PaddleData {
	p := PaddleData{
		Edge:        edge,
		Length:      a.Side * r.LengthRatio,
		Thickness:   a.Side * r.ThicknessRatio,
		Inset:       a.Side * r.InsetRatio,
		HitDistance: a.Side * r.HitDistanceRatio,
		HitDuration: r.HitDuration,
		Speed:       a.Side * r.SpeedRatio,
	}
	p.Recenter(a)
	return p
}

// Move shifts the paddle along its edge, clamped to the travel range.
func (p *PaddleData) Move(dir MoveDir, amount float64, a *ArenaData) {
	switch dir {
	case MoveTowardStart:
		p.Position -= amount
	case MoveTowardEnd:
		p.Position += amount
	default:
		return
	}
	p.Clamp(a)
}

// Clamp restores the position invariant.
func (p *PaddleData) Clamp(a *ArenaData) {
	lo, hi := a.TravelRange(p.Edge, p.Length)
	p.Position = gamemath.Clamp(p.Position, lo, hi)
}

// Recenter puts the paddle back on the edge midpoint and cancels any lunge.
func (p *PaddleData) Recenter(a *ArenaData) {
	p.Position = a.Midpoint(p.Edge, p.Length)
	p.HitTimer = 0
	p.Moving = MoveNone
}

// ActivateHit starts a lunge unless one is already running.
func (p *PaddleData) ActivateHit() bool {
	if p.HitTimer > 0 {
		return false
	}
	p.HitTimer = p.HitDuration
	return true
}

func (p *PaddleData) Tick() {
	p.HitTimer = gamemath.ApproachZero(p.HitTimer)
}

func (p *PaddleData) Lunging() bool {
	return p.HitTimer > 0
}

// LungeOffset is how far the paddle currently reaches past its resting
// face toward the field.
func (p *PaddleData) LungeOffset() float64 {
	if p.HitTimer <= 0 || p.HitDuration <= 0 {
		return 0
	}
	return p.HitDistance * float64(p.HitTimer) / float64(p.HitDuration)
}

// Bounds is the paddle's collision rectangle. The face toward the edge
// never moves; a lunge thickens the paddle toward the field.
func (p *PaddleData) Bounds(a *ArenaData) gamemath.Rect {
	depth := p.Thickness + p.LungeOffset()
	b := a.Bounds
	switch p.Edge {
	case tuning.EdgeTop:
		return gamemath.Rect{X: p.Position, Y: b.Y + p.Inset, W: p.Length, H: depth}
	case tuning.EdgeRight:
		return gamemath.Rect{X: b.Right() - p.Inset - depth, Y: p.Position, W: depth, H: p.Length}
	case tuning.EdgeBottom:
		return gamemath.Rect{X: p.Position, Y: b.Bottom() - p.Inset - depth, W: p.Length, H: depth}
	default:
		return gamemath.Rect{X: b.X + p.Inset, Y: p.Position, W: depth, H: p.Length}
	}
}
