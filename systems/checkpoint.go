package systems

import (
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

// Checkpoint is a copy of the mutable match state. The RNG is not part of
// it: a restored world keeps drawing from where the stream stopped.
type Checkpoint struct {
	match   components.MatchData
	ball    components.BallData
	fever   components.FeverData
	paddles [tuning.EdgeCount]components.PaddleData
}

// Save copies the current state.
func Save(w donburi.World) (Checkpoint, bool) {
	t, ok := tableOf(w)
	if !ok {
		return Checkpoint{}, false
	}
	cp := Checkpoint{match: *t.match}
	if e, ok := components.Ball.First(w); ok {
		cp.ball = *components.Ball.Get(e)
	}
	if e, ok := components.Fever.First(w); ok {
		cp.fever = *components.Fever.Get(e)
	}
	for e := range components.Paddle.Iter(w) {
		p := components.Paddle.Get(e)
		cp.paddles[p.Edge] = *p
	}
	return cp, true
}

// Restore puts a checkpoint back, clears the tick's events and moves the
// collision objects to match.
func Restore(w donburi.World, cp Checkpoint) {
	t, ok := tableOf(w)
	if !ok {
		return
	}
	*t.match = cp.match
	components.Events.Get(t.entry).Events = nil

	for e := range components.Paddle.Iter(w) {
		p := components.Paddle.Get(e)
		*p = cp.paddles[p.Edge]
		syncPaddleObject(e, p, t.arena)
	}
	if e, ok := components.Ball.First(w); ok {
		b := components.Ball.Get(e)
		*b = cp.ball
		syncBallObject(e, b)
	}
	if e, ok := components.Fever.First(w); ok {
		f := components.Fever.Get(e)
		// Drop the orb first so removeOrb sees it as active.
		f.OrbActive = true
		removeOrb(w, e, f)
		*f = cp.fever
		if f.OrbActive {
			placeOrb(w, e, f)
		}
	}
}
