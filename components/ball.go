package components

import (
	"github.com/automoto/pong-royale/shared/gamemath"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

// BallData is the single ball in play.
type BallData struct {
	Pos        gamemath.Vec2
	Dir        gamemath.Vec2 // unit length while moving
	Radius     float64
	BaseSpeed  float64
	StartSpeed float64
	Increment  float64
	MaxSpeed   float64
	HitBoost   float64
	ResetTimer int // ticks left frozen at the centre
	LastHitter int // edge of the last paddle to touch the ball, -1 for none
}

var Ball = donburi.NewComponentType[BallData]()

// NewBall sizes a ball for the arena. Direction is left for the launcher.
func NewBall(a *ArenaData, r tuning.BallRules) BallData {
	start := a.Side * r.BaseSpeedRatio
	return BallData{
		Pos:        a.Center(),
		Radius:     a.Side * r.RadiusRatio,
		BaseSpeed:  start,
		StartSpeed: start,
		Increment:  a.Side * r.SpeedIncrementRatio,
		MaxSpeed:   a.Side * r.MaxSpeedRatio,
		HitBoost:   1,
		ResetTimer: r.ResetDuration,
		LastHitter: -1,
	}
}

// EffectiveSpeed is the distance travelled per tick, never above MaxSpeed.
func (b *BallData) EffectiveSpeed(multiplier float64) float64 {
	return gamemath.ClampSpeed(b.BaseSpeed*b.HitBoost*multiplier, b.MaxSpeed)
}

func (b *BallData) CoolingDown() bool {
	return b.ResetTimer > 0
}

// Boosted reports whether a paddle has sped the ball up since its launch.
func (b *BallData) Boosted() bool {
	return b.HitBoost > 1
}
