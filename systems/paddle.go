package systems

import (
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

// UpdatePaddles applies each paddle's latched movement, then runs its lunge
// timer. Paddles move during the countdown as well as in live play.
func UpdatePaddles(w donburi.World) {
	t, ok := tableOf(w)
	if !ok {
		return
	}
	switch t.match.State {
	case tuning.MatchStateCountdown, tuning.MatchStateActive:
	default:
		return
	}

	for e := range components.Paddle.Iter(w) {
		p := components.Paddle.Get(e)
		if t.match.Slots[p.Edge].Alive {
			p.Move(p.Moving, p.Speed, t.arena)
		}
		if p.HitDuration > 0 && p.HitTimer == p.HitDuration {
			t.emit(components.EventPaddleLunge, p.Edge)
		}
		p.Tick()
		p.Clamp(t.arena)
		syncPaddleObject(e, p, t.arena)
	}
}

// ResetPaddle re-centres the paddle on edge and cancels its lunge.
func ResetPaddle(w donburi.World, edge int) {
	t, ok := tableOf(w)
	if !ok {
		return
	}
	e, ok := paddleFor(w, edge)
	if !ok {
		return
	}
	p := components.Paddle.Get(e)
	p.Recenter(t.arena)
	syncPaddleObject(e, p, t.arena)
}
