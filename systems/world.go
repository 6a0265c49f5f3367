package systems

import (
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

// System is one step of the per-tick pipeline.
type System func(w donburi.World)

// table is the match singleton: arena, match state, rules and the tick's
// event log all live on one entry.
type table struct {
	entry *donburi.Entry
	arena *components.ArenaData
	match *components.MatchData
	rules *tuning.Rules
}

func tableOf(w donburi.World) (table, bool) {
	entry, ok := components.Match.First(w)
	if !ok {
		return table{}, false
	}
	return table{
		entry: entry,
		arena: components.Arena.Get(entry),
		match: components.Match.Get(entry),
		rules: components.Rules.Get(entry),
	}, true
}

func (t table) emit(kind components.EventKind, edge int) {
	ev := components.Events.Get(t.entry)
	ev.Events = append(ev.Events, components.Event{Kind: kind, Edge: edge})
}

func (t table) rng() components.RandomData {
	return *components.Random.Get(t.entry)
}

// live reports whether the ball is in play this tick.
func (t table) live() bool {
	return t.match.State == tuning.MatchStateActive
}

// paddleFor returns the paddle entry guarding edge.
func paddleFor(w donburi.World, edge int) (*donburi.Entry, bool) {
	for e := range components.Paddle.Iter(w) {
		if components.Paddle.Get(e).Edge == edge {
			return e, true
		}
	}
	return nil, false
}

// BeginTick clears the previous tick's events and advances the tick counter.
func BeginTick(w donburi.World) {
	t, ok := tableOf(w)
	if !ok {
		return
	}
	ev := components.Events.Get(t.entry)
	ev.Events = ev.Events[:0]
	t.match.Tick++
}
