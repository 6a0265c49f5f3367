package engine

import (
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/gamemath"
	"github.com/automoto/pong-royale/shared/tuning"
)

type (
	Event     = components.Event
	EventKind = components.EventKind
)

const (
	EventPaddleHit       = components.EventPaddleHit
	EventPaddleLunge     = components.EventPaddleLunge
	EventWallBounce      = components.EventWallBounce
	EventLifeLost        = components.EventLifeLost
	EventEliminated      = components.EventEliminated
	EventBallLaunched    = components.EventBallLaunched
	EventFeverOrbSpawned = components.EventFeverOrbSpawned
	EventFeverStarted    = components.EventFeverStarted
	EventFeverEnded      = components.EventFeverEnded
	EventCountdown       = components.EventCountdown
	EventMatchStarted    = components.EventMatchStarted
	EventMatchOver       = components.EventMatchOver
)

type PaddleView struct {
	Edge     int
	Bounds   gamemath.Rect
	Active   bool // seated at match start
	Alive    bool
	HitTimer int
}

func (p PaddleView) Lunging() bool {
	return p.HitTimer > 0
}

type BallView struct {
	Pos         gamemath.Vec2
	Dir         gamemath.Vec2
	Radius      float64
	Speed       float64 // effective distance per tick
	Boosted     bool
	CoolingDown bool
}

type WallView struct {
	Edge   int
	Bounds gamemath.Rect
}

type FeverView struct {
	OrbActive bool
	OrbPos    gamemath.Vec2
	OrbRadius float64
	Active    bool
	Remaining int // ticks of fever left
}

// Snapshot is a read-only copy of the match after a tick.
type Snapshot struct {
	Tick        uint64
	State       tuning.MatchStateID
	PlayerCount int
	Field       gamemath.Rect
	Arena       gamemath.Rect
	Walls       []WallView
	Paddles     [tuning.EdgeCount]PaddleView
	Ball        BallView
	Lives       [tuning.EdgeCount]int
	Alive       [tuning.EdgeCount]bool
	Winner      int // tuning.NoWinner until the match is decided
	Countdown   int // whole seconds left, 0 once live
	Elapsed     int // live ticks played
	Fever       FeverView
	Events      []Event
}

// Snapshot copies the current state out of the world.
func (e *Engine) Snapshot() Snapshot {
	m := e.match()
	arena := components.Arena.Get(e.table)
	events := components.Events.Get(e.table).Events

	s := Snapshot{
		Tick:        m.Tick,
		State:       m.State,
		PlayerCount: m.PlayerCount,
		Field:       arena.Field,
		Arena:       arena.Bounds,
		Winner:      m.WinnerIndex,
		Countdown:   m.CountdownValue,
		Elapsed:     m.Elapsed,
		Events:      append([]Event(nil), events...),
	}

	for i := range m.Slots {
		slot := &m.Slots[i]
		s.Lives[i] = slot.Lives
		s.Alive[i] = slot.Alive
		if !slot.Alive {
			s.Walls = append(s.Walls, WallView{Edge: i, Bounds: arena.WallRect(i)})
		}
	}

	for entry := range components.Paddle.Iter(e.world) {
		p := components.Paddle.Get(entry)
		s.Paddles[p.Edge] = PaddleView{
			Edge:     p.Edge,
			Bounds:   p.Bounds(arena),
			Active:   m.Slots[p.Edge].Active,
			Alive:    m.Slots[p.Edge].Alive,
			HitTimer: p.HitTimer,
		}
	}

	multiplier := 1.0
	if entry, ok := components.Fever.First(e.world); ok {
		f := components.Fever.Get(entry)
		multiplier = f.SpeedMultiplier()
		s.Fever = FeverView{
			OrbActive: f.OrbActive,
			OrbPos:    f.OrbPos,
			OrbRadius: f.OrbRadius,
			Active:    f.EffectActive(),
			Remaining: f.EffectTimer,
		}
	}

	if entry, ok := components.Ball.First(e.world); ok {
		b := components.Ball.Get(entry)
		s.Ball = BallView{
			Pos:         b.Pos,
			Dir:         b.Dir,
			Radius:      b.Radius,
			Speed:       b.EffectiveSpeed(multiplier),
			Boosted:     b.Boosted(),
			CoolingDown: b.CoolingDown(),
		}
	}

	return s
}

// Has reports whether the tick produced an event of kind.
func (s Snapshot) Has(kind EventKind) bool {
	for _, ev := range s.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
