package systems

import (
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

// UpdateBoundaries bounces the ball off walls and charges a life when it
// leaves through a defended edge. At most one life is lost per tick.
func UpdateBoundaries(w donburi.World) {
	t, ok := tableOf(w)
	if !ok || !t.live() {
		return
	}
	e, ok := components.Ball.First(w)
	if !ok {
		return
	}
	b := components.Ball.Get(e)
	if b.CoolingDown() {
		return
	}

	edge := checkBoundaries(t, b)
	syncBallObject(e, b)

	if edge == escapedEdge {
		RelaunchBall(w, LaunchKeep)
		return
	}
	if edge >= 0 {
		HandleEdgeStruck(w, edge)
	}
}

const (
	noEdge      = -1
	escapedEdge = -2
)

// checkBoundaries walks the edges in order. Undefended edges are solid
// walls; the first defended edge the ball has crossed is returned. A ball
// found well outside the arena reports escapedEdge.
func checkBoundaries(t table, b *components.BallData) int {
	a := t.arena.Bounds
	slack := b.Radius * t.rules.Ball.EscapeRadii
	if b.Pos.Y < a.Y-slack || b.Pos.Y > a.Bottom()+slack ||
		b.Pos.X < a.X-slack || b.Pos.X > a.Right()+slack {
		return escapedEdge
	}

	wall := t.arena.Wall
	r := b.Radius
	for edge := 0; edge < tuning.EdgeCount; edge++ {
		defended := t.match.Slots[edge].Alive
		switch edge {
		case tuning.EdgeTop:
			if defended {
				if b.Pos.Y-r < a.Y {
					return edge
				}
			} else if b.Pos.Y-r < a.Y+wall {
				b.Pos.Y = a.Y + wall + r
				if b.Dir.Y < 0 {
					b.Dir.Y = -b.Dir.Y
				}
				t.emit(components.EventWallBounce, edge)
			}
		case tuning.EdgeRight:
			if defended {
				if b.Pos.X+r > a.Right() {
					return edge
				}
			} else if b.Pos.X+r > a.Right()-wall {
				b.Pos.X = a.Right() - wall - r
				if b.Dir.X > 0 {
					b.Dir.X = -b.Dir.X
				}
				t.emit(components.EventWallBounce, edge)
			}
		case tuning.EdgeBottom:
			if defended {
				if b.Pos.Y+r > a.Bottom() {
					return edge
				}
			} else if b.Pos.Y+r > a.Bottom()-wall {
				b.Pos.Y = a.Bottom() - wall - r
				if b.Dir.Y > 0 {
					b.Dir.Y = -b.Dir.Y
				}
				t.emit(components.EventWallBounce, edge)
			}
		case tuning.EdgeLeft:
			if defended {
				if b.Pos.X-r < a.X {
					return edge
				}
			} else if b.Pos.X-r < a.X+wall {
				b.Pos.X = a.X + wall + r
				if b.Dir.X < 0 {
					b.Dir.X = -b.Dir.X
				}
				t.emit(components.EventWallBounce, edge)
			}
		}
	}
	return noEdge
}
