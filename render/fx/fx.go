// Package fx drives the short client-side tweens layered over a match:
// countdown pulses, life-lost flashes and walls fading in.
package fx

import (
	"github.com/automoto/pong-royale/engine"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Timings are tween lengths in seconds. CountdownScale is the size a
// countdown digit starts at before settling to 1.
type Timings struct {
	CountdownPulse float32
	CountdownScale float32
	LifeLostFlash  float32
	WallFadeIn     float32
	PaddleHitFlash float32
	ResultFadeIn   float32
}

type track struct {
	tween *gween.Tween
	value float32
}

func (t *track) start(tw *gween.Tween) {
	t.tween = tw
	t.value, _ = tw.Update(0)
}

func (t *track) update(dt float32) {
	if t.tween == nil {
		return
	}
	v, done := t.tween.Update(dt)
	t.value = v
	if done {
		t.tween = nil
	}
}

// Effects holds the current value of every running tween.
type Effects struct {
	timings   Timings
	countdown track
	result    track
	flash     [tuning.EdgeCount]track
	wall      [tuning.EdgeCount]track
	hit       [tuning.EdgeCount]track
}

func New(t Timings) *Effects {
	fx := &Effects{timings: t}
	fx.Reset()
	return fx
}

// Reset drops every running tween and restores resting values.
func (fx *Effects) Reset() {
	fx.countdown = track{value: 1}
	fx.result = track{}
	for i := range fx.flash {
		fx.flash[i] = track{}
		fx.wall[i] = track{value: 1}
		fx.hit[i] = track{}
	}
}

// Observe starts the tweens triggered by a tick's events.
func (fx *Effects) Observe(events []engine.Event) {
	t := fx.timings
	for _, ev := range events {
		switch ev.Kind {
		case engine.EventCountdown, engine.EventMatchStarted:
			fx.countdown.start(gween.New(t.CountdownScale, 1, t.CountdownPulse, ease.OutBack))
		case engine.EventMatchOver:
			fx.result.start(gween.New(0, 1, t.ResultFadeIn, ease.OutQuad))
		}
		if ev.Edge < 0 || ev.Edge >= tuning.EdgeCount {
			continue
		}
		switch ev.Kind {
		case engine.EventLifeLost:
			fx.flash[ev.Edge].start(gween.New(1, 0, t.LifeLostFlash, ease.OutQuad))
		case engine.EventEliminated:
			fx.wall[ev.Edge].start(gween.New(0, 1, t.WallFadeIn, ease.InOutQuad))
		case engine.EventPaddleHit, engine.EventPaddleLunge:
			fx.hit[ev.Edge].start(gween.New(1, 0, t.PaddleHitFlash, ease.Linear))
		}
	}
}

// Update advances every tween by dt seconds.
func (fx *Effects) Update(dt float32) {
	fx.countdown.update(dt)
	fx.result.update(dt)
	for i := range fx.flash {
		fx.flash[i].update(dt)
		fx.wall[i].update(dt)
		fx.hit[i].update(dt)
	}
}

func (fx *Effects) CountdownScale() float32 { return fx.countdown.value }
func (fx *Effects) ResultAlpha() float32 { return fx.result.value }
func (fx *Effects) Flash(edge int) float32 { return fx.flash[edge].value }
func (fx *Effects) WallAlpha(edge int) float32 { return fx.wall[edge].value }
func (fx *Effects) HitFlash(edge int) float32 { return fx.hit[edge].value }
