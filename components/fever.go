package components

import (
	"github.com/automoto/pong-royale/shared/gamemath"
	"github.com/yohamta/donburi"
)

// FeverData tracks the fever orb and the speed effect it grants.
type FeverData struct {
	OrbActive   bool
	OrbPos      gamemath.Vec2
	OrbRadius   float64
	SpawnTimer  int // ticks until the next orb appears
	EffectTimer int // ticks of fever left
	Multiplier  float64
}

var Fever = donburi.NewComponentType[FeverData]()

func (f *FeverData) EffectActive() bool {
	return f.EffectTimer > 0
}

// SpeedMultiplier is the factor applied to the ball right now.
func (f *FeverData) SpeedMultiplier() float64 {
	if f.EffectTimer > 0 {
		return f.Multiplier
	}
	return 1
}
