package systems

import (
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/gamemath"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/automoto/pong-royale/tags"
	"github.com/yohamta/donburi"
)

// UpdateFever runs the fever orb: it appears at random intervals and, when
// the ball touches it, doubles the ball speed for a while.
func UpdateFever(w donburi.World) {
	t, ok := tableOf(w)
	if !ok || !t.live() || !t.rules.Fever.Enabled {
		return
	}
	orbEntry, ok := components.Fever.First(w)
	if !ok {
		return
	}
	f := components.Fever.Get(orbEntry)

	if f.EffectTimer > 0 {
		f.EffectTimer--
		if f.EffectTimer == 0 {
			t.emit(components.EventFeverEnded, -1)
		}
	}

	if !f.OrbActive {
		if f.SpawnTimer > 0 {
			f.SpawnTimer--
			return
		}
		if !f.EffectActive() {
			spawnOrb(w, t, orbEntry, f)
		}
		return
	}

	ballEntry, ok := components.Ball.First(w)
	if !ok {
		return
	}
	b := components.Ball.Get(ballEntry)
	if b.CoolingDown() || !touchesOrb(ballEntry, b, f) {
		return
	}

	removeOrb(w, orbEntry, f)
	f.EffectTimer = t.rules.Fever.Duration
	f.SpawnTimer = nextSpawn(t)
	t.emit(components.EventFeverStarted, b.LastHitter)
}

// touchesOrb checks the ball against the orb: resolv for the broad phase,
// a circle test for the contact itself.
func touchesOrb(ballEntry *donburi.Entry, b *components.BallData, f *components.FeverData) bool {
	check := components.Object.Get(ballEntry).Check(0, 0, tags.ResolvOrb)
	if check == nil || len(check.ObjectsByTags(tags.ResolvOrb)) == 0 {
		return false
	}
	return gamemath.CirclesOverlap(b.Pos, b.Radius, f.OrbPos, f.OrbRadius)
}

func spawnOrb(w donburi.World, t table, orbEntry *donburi.Entry, f *components.FeverData) {
	a := t.arena
	rng := t.rng()
	inset := a.Side * t.rules.Fever.SpawnMarginPct
	span := a.Side - 2*inset
	f.OrbPos = gamemath.Vec2{
		X: a.Bounds.X + inset + rng.Float64()*span,
		Y: a.Bounds.Y + inset + rng.Float64()*span,
	}
	f.OrbActive = true
	placeOrb(w, orbEntry, f)
	t.emit(components.EventFeverOrbSpawned, -1)
}

// placeOrb moves the orb's collision object onto the orb and adds it to
// the space.
func placeOrb(w donburi.World, orbEntry *donburi.Entry, f *components.FeverData) {
	obj := components.Object.Get(orbEntry).Object
	placeObject(obj, gamemath.Rect{
		X: f.OrbPos.X - f.OrbRadius,
		Y: f.OrbPos.Y - f.OrbRadius,
		W: 2 * f.OrbRadius,
		H: 2 * f.OrbRadius,
	})
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func removeOrb(w donburi.World, orbEntry *donburi.Entry, f *components.FeverData) {
	if !f.OrbActive {
		return
	}
	f.OrbActive = false
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(orbEntry).Object)
	}
}

func nextSpawn(t table) int {
	r := t.rules.Fever
	lo, hi := r.MinSpawnSeconds, r.MaxSpawnSeconds
	if hi < lo {
		hi = lo
	}
	return (lo + t.rng().IntN(hi-lo+1)) * tuning.TickRate
}

// EndFever cancels a running fever effect. The orb, if any, stays put.
func EndFever(w donburi.World) {
	t, ok := tableOf(w)
	if !ok {
		return
	}
	e, ok := components.Fever.First(w)
	if !ok {
		return
	}
	f := components.Fever.Get(e)
	if f.EffectTimer > 0 {
		f.EffectTimer = 0
		t.emit(components.EventFeverEnded, -1)
	}
}

// ResetFever clears the orb and the effect and schedules the first spawn.
func ResetFever(w donburi.World) {
	t, ok := tableOf(w)
	if !ok {
		return
	}
	e, ok := components.Fever.First(w)
	if !ok {
		return
	}
	f := components.Fever.Get(e)
	removeOrb(w, e, f)
	f.EffectTimer = 0
	f.SpawnTimer = nextSpawn(t)
}
