package systems

import (
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/gamemath"
	"github.com/automoto/pong-royale/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// placeObject moves a collision object onto r and refreshes its cells.
func placeObject(obj *resolv.Object, r gamemath.Rect) {
	obj.X, obj.Y = r.X, r.Y
	obj.W, obj.H = r.W, r.H
	obj.Update()
}

func syncPaddleObject(e *donburi.Entry, p *components.PaddleData, arena *components.ArenaData) {
	placeObject(components.Object.Get(e).Object, p.Bounds(arena))
}

// syncBallObject keeps the ball's broad-phase box one cell wider than the
// ball on every side.
func syncBallObject(e *donburi.Entry, b *components.BallData) {
	pad := b.Radius + factory.BroadphaseCell
	placeObject(components.Object.Get(e).Object, gamemath.Rect{
		X: b.Pos.X - pad,
		Y: b.Pos.Y - pad,
		W: 2 * pad,
		H: 2 * pad,
	})
}

// entryOf resolves a collision object back to its entity.
func entryOf(obj *resolv.Object) (*donburi.Entry, bool) {
	e, ok := obj.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil, false
	}
	return e, true
}
