package systems

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/gamemath"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

// LaunchDirection picks a uniformly random heading and pushes it out of the
// band around each axis so the ball never travels nearly parallel to an edge.
func LaunchDirection(rng *rand.Rand, bandDegrees float64) gamemath.Vec2 {
	angle := rng.Float64() * 2 * math.Pi
	band := bandDegrees * math.Pi / 180
	return gamemath.FromAngle(gamemath.NudgeFromAxes(angle, band))
}

// LaunchMode selects how a relaunch treats the ball's base speed.
type LaunchMode int

const (
	LaunchFresh    LaunchMode = iota // back to the starting speed
	LaunchEscalate                   // one increment faster, capped
	LaunchKeep                       // unchanged
)

// RelaunchBall puts the ball back at the centre, frozen for the reset
// cooldown, with a new direction and no hit boost.
func RelaunchBall(w donburi.World, mode LaunchMode) {
	t, ok := tableOf(w)
	if !ok {
		return
	}
	e, ok := components.Ball.First(w)
	if !ok {
		return
	}
	b := components.Ball.Get(e)
	launch(b, t.arena, t.rules.Ball, t.rng().Rand, mode)
	syncBallObject(e, b)
	t.emit(components.EventBallLaunched, -1)
}

func launch(b *components.BallData, arena *components.ArenaData, r tuning.BallRules, rng *rand.Rand, mode LaunchMode) {
	switch mode {
	case LaunchFresh:
		b.BaseSpeed = b.StartSpeed
	case LaunchEscalate:
		b.BaseSpeed = math.Min(b.BaseSpeed+b.Increment, b.MaxSpeed)
	}
	b.Pos = arena.Center()
	b.HitBoost = 1
	b.ResetTimer = r.ResetDuration
	b.LastHitter = -1
	b.Dir = LaunchDirection(rng, r.AxisBandDegrees)
}

// UpdateBall moves the ball one tick along its heading. A ball in its
// post-launch cooldown only counts down.
func UpdateBall(w donburi.World) {
	t, ok := tableOf(w)
	if !ok || !t.live() {
		return
	}
	e, ok := components.Ball.First(w)
	if !ok {
		return
	}
	b := components.Ball.Get(e)

	if b.ResetTimer > 0 {
		b.ResetTimer--
		return
	}

	dir, ok := b.Dir.Normalized()
	if !ok {
		dir = LaunchDirection(t.rng().Rand, t.rules.Ball.AxisBandDegrees)
	}
	b.Dir = dir

	b.Pos = b.Pos.Add(dir.Scale(b.EffectiveSpeed(feverMultiplier(w))))
	syncBallObject(e, b)
}

func feverMultiplier(w donburi.World) float64 {
	e, ok := components.Fever.First(w)
	if !ok {
		return 1
	}
	return components.Fever.Get(e).SpeedMultiplier()
}
