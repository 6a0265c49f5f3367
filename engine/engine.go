// Package engine runs a headless four-sided elimination match. It consumes
// abstract intents, advances one fixed tick per call and exposes read-only
// snapshots. It never blocks and never returns errors: bad input is ignored
// and numerical drift is corrected in place.
package engine

import (
	"log"
	"math/rand/v2"

	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/intent"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/automoto/pong-royale/systems"
	"github.com/automoto/pong-royale/systems/factory"
	"github.com/yohamta/donburi"
)

// Config configures a new engine. A zero Seed picks a random one.
type Config struct {
	Rules tuning.Rules
	Seed  uint64
}

// DefaultConfig uses the package-level rules.
func DefaultConfig() Config {
	return Config{Rules: tuning.Current()}
}

// Engine owns one match world. It is not safe for concurrent use; feed it
// from other goroutines through an intent.Mailbox.
type Engine struct {
	world    donburi.World
	table    *donburi.Entry
	pipeline []systems.System

	playerCount int
	lives       int
}

func New(cfg Config) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	w := donburi.NewWorld()
	r := cfg.Rules
	factory.CreateSpace(w, int(r.Arena.FieldWidth)+1, int(r.Arena.FieldHeight)+1,
		factory.BroadphaseCell, factory.BroadphaseCell)

	table := factory.CreateArena(w, r.Arena)
	components.Rules.SetValue(table, r)
	components.Random.SetValue(table, components.RandomData{
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})

	arena := components.Arena.Get(table)
	for edge := 0; edge < tuning.EdgeCount; edge++ {
		factory.CreatePaddle(w, edge, arena, r.Paddle)
	}
	factory.CreateBall(w, arena, r.Ball)
	factory.CreateFeverOrb(w, arena, r.Fever)

	return &Engine{
		world: w,
		table: table,
		pipeline: []systems.System{
			systems.BeginTick,
			systems.UpdateMatch,
			systems.UpdatePaddles,
			systems.UpdateBall,
			systems.UpdatePaddleCollision,
			systems.UpdateFever,
			systems.UpdateBoundaries,
		},
		playerCount: tuning.EdgeCount,
		lives:       r.Match.StartingLives,
	}
}

func (e *Engine) match() *components.MatchData {
	return components.Match.Get(e.table)
}

// Configure sets the player count and lives the next Start intent uses,
// with the same clamping as StartMatch. A running match is unaffected.
func (e *Engine) Configure(playerCount, lives int) {
	e.playerCount = min(max(playerCount, 1), tuning.EdgeCount)
	if lives < 1 {
		lives = components.Rules.Get(e.table).Match.StartingLives
	}
	e.lives = lives
}

// StartMatch seats playerCount players (clamped to 1..4) with the given
// lives and begins the countdown. Lives below one use the configured default.
func (e *Engine) StartMatch(playerCount, lives int) {
	e.Configure(playerCount, lives)
	systems.StartMatch(e.world, e.playerCount, e.lives)
}

// ResetMatch starts over with the settings of the last StartMatch.
func (e *Engine) ResetMatch() {
	e.StartMatch(e.playerCount, e.lives)
	m := e.match()
	m.Tick = 0
	components.Events.Get(e.table).Events = nil
}

// Tick advances the match by one fixed step. A panic inside a step is
// logged and the world is put back as it was before the tick; only the
// tick counter moves on.
func (e *Engine) Tick() {
	cp, saved := systems.Save(e.world)
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[engine] tick %d recovered: %v", e.match().Tick, r)
			if saved {
				systems.Restore(e.world, cp)
				e.match().Tick++
			}
		}
	}()
	for _, sys := range e.pipeline {
		sys(e.world)
	}
}

// ApplyIntent feeds one player's input. Unknown players and intents are
// ignored. Movement latches until the next movement intent or None.
func (e *Engine) ApplyIntent(player int, in intent.Intent) {
	if player < 0 || player >= tuning.EdgeCount || !in.Valid() {
		return
	}
	m := e.match()

	switch in {
	case intent.Start:
		switch m.State {
		case tuning.MatchStateWaiting:
			e.StartMatch(e.playerCount, e.lives)
		case tuning.MatchStateCountdown:
			systems.SkipCountdown(e.world)
		}
		return
	case intent.Restart:
		if m.State == tuning.MatchStateTerminal {
			e.ResetMatch()
		}
		return
	}

	if !m.Slots[player].Alive {
		return
	}
	paddle := e.paddle(player)
	if paddle == nil {
		return
	}

	switch in {
	case intent.None:
		paddle.Moving = components.MoveNone
	case intent.MoveTowardStart:
		paddle.Moving = components.MoveTowardStart
	case intent.MoveTowardEnd:
		paddle.Moving = components.MoveTowardEnd
	case intent.Act:
		if m.State != tuning.MatchStateActive && m.State != tuning.MatchStateRoundEnd {
			return
		}
		paddle.ActivateHit()
	}
}

func (e *Engine) paddle(edge int) *components.PaddleData {
	for entry := range components.Paddle.Iter(e.world) {
		p := components.Paddle.Get(entry)
		if p.Edge == edge {
			return p
		}
	}
	return nil
}

// ConsumeResult reports the winner of a finished match exactly once. winner
// is tuning.NoWinner for a draw.
func (e *Engine) ConsumeResult() (winner int, ok bool) {
	m := e.match()
	if m.State != tuning.MatchStateTerminal || !m.ResultPending {
		return tuning.NoWinner, false
	}
	m.ResultPending = false
	return m.WinnerIndex, true
}

// ForceResult ends a running match now, awarding it to the slot with the
// most lives. A shared lead is a draw.
func (e *Engine) ForceResult() {
	systems.ForceResult(e.world)
}

// Settings returns the player count and lives of the current match.
func (e *Engine) Settings() (playerCount, lives int) {
	return e.playerCount, e.lives
}
