package systems

import (
	"math"

	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/gamemath"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/automoto/pong-royale/tags"
	"github.com/yohamta/donburi"
)

// UpdatePaddleCollision bounces the ball off the first alive paddle it
// touches, in edge order. Broad phase comes from the resolv space; the
// narrow phase tests the ball centre against the paddle grown by the radius.
func UpdatePaddleCollision(w donburi.World) {
	t, ok := tableOf(w)
	if !ok || !t.live() {
		return
	}
	ballEntry, ok := components.Ball.First(w)
	if !ok {
		return
	}
	b := components.Ball.Get(ballEntry)
	if b.CoolingDown() {
		return
	}

	obj := components.Object.Get(ballEntry)
	check := obj.Check(0, 0, tags.ResolvPaddle)
	if check == nil {
		return
	}

	var hit *components.PaddleData
	for _, o := range check.ObjectsByTags(tags.ResolvPaddle) {
		e, ok := entryOf(o)
		if !ok {
			continue
		}
		p := components.Paddle.Get(e)
		if !t.match.Slots[p.Edge].Alive {
			continue
		}
		// Already heading back into the field.
		if b.Dir.Dot(components.Inward(p.Edge)) > 0 {
			continue
		}
		if !p.Bounds(t.arena).Inflate(b.Radius).Contains(b.Pos) {
			continue
		}
		if hit == nil || p.Edge < hit.Edge {
			hit = p
		}
	}
	if hit == nil {
		return
	}

	deflect(b, hit, t.arena, t.rules.Ball)
	syncBallObject(ballEntry, b)
	t.emit(components.EventPaddleHit, hit.Edge)
}

// deflect sends the ball back into the field. Where it struck along the
// paddle picks the angle; a lunging paddle adds more speed than a resting one.
func deflect(b *components.BallData, p *components.PaddleData, arena *components.ArenaData, r tuning.BallRules) {
	rect := p.Bounds(arena)

	var rel float64
	if components.IsHorizontal(p.Edge) {
		rel = (b.Pos.X - rect.X) / rect.W
	} else {
		rel = (b.Pos.Y - rect.Y) / rect.H
	}
	arc := r.DeflectionArc * math.Pi / 180
	b.Dir = gamemath.Deflect(rel, arc, components.Along(p.Edge), components.Inward(p.Edge))

	switch p.Edge {
	case tuning.EdgeTop:
		b.Pos.Y = rect.Bottom() + b.Radius
	case tuning.EdgeRight:
		b.Pos.X = rect.X - b.Radius
	case tuning.EdgeBottom:
		b.Pos.Y = rect.Y - b.Radius
	case tuning.EdgeLeft:
		b.Pos.X = rect.Right() + b.Radius
	}

	if p.Lunging() {
		b.HitBoost = gamemath.ScaleBoost(b.HitBoost, r.LungeBoost, r.LungeBoostCap)
	} else {
		b.HitBoost = gamemath.ScaleBoost(b.HitBoost, r.PassiveBoost, r.PassiveBoostCap)
	}
	b.LastHitter = p.Edge
}
