package engine

import (
	"math"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/intent"
	"github.com/automoto/pong-royale/shared/gamemath"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

func newTestEngine(t *testing.T, seed uint64) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.Rules.Fever.Enabled = false
	return New(cfg)
}

// startLive starts a match and skips the countdown.
func startLive(t *testing.T, e *Engine, players, lives int) {
	t.Helper()
	e.StartMatch(players, lives)
	e.ApplyIntent(0, intent.Start)
	if got := e.match().State; got != tuning.MatchStateActive {
		t.Fatalf("state after skipping countdown = %v, want active", got)
	}
}

func (e *Engine) testBall() *components.BallData {
	entry, _ := components.Ball.First(e.world)
	return components.Ball.Get(entry)
}

func (e *Engine) testArena() *components.ArenaData {
	return components.Arena.Get(e.table)
}

// aimAtEdge parks the edge's paddle at the start of its travel and sends a
// moving ball out through the far end of the edge.
func aimAtEdge(e *Engine, edge int) {
	arena := e.testArena()
	p := e.paddle(edge)
	lo, _ := arena.TravelRange(edge, p.Length)
	p.Position = lo

	b := e.testBall()
	out := components.Inward(edge).Scale(-1)
	b.Pos = arena.Center().
		Add(out.Scale(arena.Side/2 - b.Radius - 1)).
		Add(components.Along(edge).Scale(arena.Side / 4))
	b.Dir = out
	b.ResetTimer = 0
}

func TestTwoPlayerMatchWallsFromStart(t *testing.T) {
	e := newTestEngine(t, 1)
	e.StartMatch(2, 3)
	s := e.Snapshot()

	if s.State != tuning.MatchStateCountdown {
		t.Fatalf("state = %v, want countdown", s.State)
	}
	if len(s.Walls) != 2 || s.Walls[0].Edge != tuning.EdgeRight || s.Walls[1].Edge != tuning.EdgeLeft {
		t.Fatalf("walls = %+v, want right and left", s.Walls)
	}
	want := [4]bool{true, false, true, false}
	if s.Alive != want {
		t.Fatalf("alive = %v, want %v", s.Alive, want)
	}
	if s.Lives[0] != 3 || s.Lives[2] != 3 || s.Lives[1] != 0 {
		t.Fatalf("lives = %v", s.Lives)
	}
}

func TestCountdownFreezesBall(t *testing.T) {
	e := newTestEngine(t, 2)
	e.StartMatch(4, 3)
	centre := e.testArena().Center()

	e.ApplyIntent(1, intent.Act)
	if e.paddle(1).HitTimer != 0 {
		t.Fatal("act during countdown should be ignored")
	}

	countdown := tuning.Match.CountdownDuration
	for i := 0; i < countdown-1; i++ {
		e.Tick()
		s := e.Snapshot()
		if s.State != tuning.MatchStateCountdown {
			t.Fatalf("tick %d: state = %v, want countdown", i+1, s.State)
		}
		if s.Ball.Pos != centre {
			t.Fatalf("tick %d: ball moved during countdown to %v", i+1, s.Ball.Pos)
		}
	}
	e.Tick()
	s := e.Snapshot()
	if s.State != tuning.MatchStateActive {
		t.Fatalf("state after countdown = %v, want active", s.State)
	}
	if !s.Has(EventMatchStarted) {
		t.Fatal("missing match started event")
	}
}

func TestThreeMissesEliminateTop(t *testing.T) {
	e := newTestEngine(t, 3)
	startLive(t, e, 4, 3)
	start := e.testBall().StartSpeed
	inc := e.testBall().Increment

	for miss := 1; miss <= 3; miss++ {
		aimAtEdge(e, tuning.EdgeTop)
		e.Tick()
		s := e.Snapshot()
		if !s.Has(EventLifeLost) {
			t.Fatalf("miss %d: no life lost", miss)
		}
		if s.Lives[0] != 3-miss {
			t.Fatalf("miss %d: lives = %d, want %d", miss, s.Lives[0], 3-miss)
		}
		if s.State != tuning.MatchStateRoundEnd {
			t.Fatalf("miss %d: state = %v, want round-end", miss, s.State)
		}
		if s.Ball.Pos != e.testArena().Center() || !s.Ball.CoolingDown {
			t.Fatalf("miss %d: ball not relaunched: %+v", miss, s.Ball)
		}
		e.Tick()
		if got := e.Snapshot().State; got != tuning.MatchStateActive {
			t.Fatalf("miss %d: state after round end = %v", miss, got)
		}
	}

	s := e.Snapshot()
	if s.Alive[0] {
		t.Fatal("top slot should be eliminated")
	}
	if len(s.Walls) != 1 || s.Walls[0].Edge != tuning.EdgeTop {
		t.Fatalf("walls = %+v, want top wall", s.Walls)
	}
	if want := start + 3*inc; math.Abs(e.testBall().BaseSpeed-want) > 1e-9 {
		t.Fatalf("base speed = %v, want %v", e.testBall().BaseSpeed, want)
	}

	// The top edge is a wall now: the same shot bounces.
	aimAtEdge(e, tuning.EdgeTop)
	e.Tick()
	s = e.Snapshot()
	if s.Has(EventLifeLost) || !s.Has(EventWallBounce) {
		t.Fatalf("expected a wall bounce, got events %v", s.Events)
	}
	if s.Ball.Dir.Y <= 0 {
		t.Fatalf("ball should head down after the wall, dir = %v", s.Ball.Dir)
	}
	if s.Lives[0] != 0 {
		t.Fatalf("eliminated lives changed to %d", s.Lives[0])
	}
}

func TestLastSurvivorWins(t *testing.T) {
	e := newTestEngine(t, 4)
	startLive(t, e, 2, 1)

	aimAtEdge(e, tuning.EdgeTop)
	e.Tick()
	s := e.Snapshot()
	if s.State != tuning.MatchStateTerminal {
		t.Fatalf("state = %v, want terminal", s.State)
	}
	if s.Winner != tuning.EdgeBottom {
		t.Fatalf("winner = %d, want bottom", s.Winner)
	}
	if !s.Has(EventMatchOver) {
		t.Fatal("missing match over event")
	}

	winner, ok := e.ConsumeResult()
	if !ok || winner != tuning.EdgeBottom {
		t.Fatalf("ConsumeResult = %d, %v", winner, ok)
	}
	if _, ok := e.ConsumeResult(); ok {
		t.Fatal("result consumed twice")
	}

	frozen := e.Snapshot().Ball.Pos
	e.ApplyIntent(2, intent.MoveTowardEnd)
	for i := 0; i < 120; i++ {
		e.Tick()
	}
	s = e.Snapshot()
	if s.State != tuning.MatchStateTerminal || s.Ball.Pos != frozen {
		t.Fatalf("terminal match moved: state %v ball %v", s.State, s.Ball.Pos)
	}

	e.ApplyIntent(2, intent.Restart)
	s = e.Snapshot()
	if s.State != tuning.MatchStateCountdown || s.Lives[0] != 1 || !s.Alive[0] {
		t.Fatalf("restart did not reset the match: %+v", s)
	}
}

func TestSoloMatchEndsInDraw(t *testing.T) {
	e := newTestEngine(t, 5)
	startLive(t, e, 1, 2)

	aimAtEdge(e, tuning.EdgeTop)
	e.Tick()
	if got := e.Snapshot().State; got != tuning.MatchStateRoundEnd {
		t.Fatalf("solo player with lives left: state = %v", got)
	}
	e.Tick()

	aimAtEdge(e, tuning.EdgeTop)
	e.Tick()
	s := e.Snapshot()
	if s.State != tuning.MatchStateTerminal || s.Winner != tuning.NoWinner {
		t.Fatalf("state %v winner %d, want terminal draw", s.State, s.Winner)
	}
	if winner, ok := e.ConsumeResult(); !ok || winner != tuning.NoWinner {
		t.Fatalf("ConsumeResult = %d, %v", winner, ok)
	}
}

func TestWallBounceOnEmptyEdge(t *testing.T) {
	e := newTestEngine(t, 6)
	startLive(t, e, 2, 3)
	arena := e.testArena()

	b := e.testBall()
	b.ResetTimer = 0
	b.Pos = gamemath.Vec2{X: arena.Bounds.Right() - arena.Wall - b.Radius - 1, Y: arena.Center().Y}
	b.Dir = gamemath.Vec2{X: 1}

	e.Tick()
	s := e.Snapshot()
	if !s.Has(EventWallBounce) {
		t.Fatalf("expected wall bounce, events %v", s.Events)
	}
	if s.Ball.Dir.X >= 0 {
		t.Fatalf("ball still heading into the wall: %v", s.Ball.Dir)
	}
	if want := arena.Bounds.Right() - arena.Wall - b.Radius; math.Abs(s.Ball.Pos.X-want) > 1e-9 {
		t.Fatalf("ball x = %v, want clamped to %v", s.Ball.Pos.X, want)
	}
}

func TestPaddleHitBoost(t *testing.T) {
	cases := []struct {
		name  string
		lunge bool
		want  float64
	}{
		{"passive", false, 1.05},
		{"lunge", true, 1.2},
	}
	for _, tc := range cases {
		e := newTestEngine(t, 7)
		startLive(t, e, 4, 3)
		arena := e.testArena()
		p := e.paddle(tuning.EdgeTop)

		ghost := *p
		if tc.lunge {
			ghost.HitTimer = ghost.HitDuration - 1
		}
		rect := ghost.Bounds(arena)

		b := e.testBall()
		b.ResetTimer = 0
		b.Pos = gamemath.Vec2{X: rect.Center().X, Y: rect.Bottom() + b.Radius + 2}
		b.Dir = gamemath.Vec2{Y: -1}

		if tc.lunge {
			e.ApplyIntent(tuning.EdgeTop, intent.Act)
		}
		e.Tick()
		s := e.Snapshot()

		if !s.Has(EventPaddleHit) {
			t.Fatalf("%s: no paddle hit, events %v", tc.name, s.Events)
		}
		if tc.lunge && !s.Has(EventPaddleLunge) {
			t.Fatalf("%s: no lunge event", tc.name)
		}
		if math.Abs(b.HitBoost-tc.want) > 1e-9 {
			t.Fatalf("%s: hit boost = %v, want %v", tc.name, b.HitBoost, tc.want)
		}
		if math.Abs(s.Ball.Dir.X) > 1e-9 || math.Abs(s.Ball.Dir.Y-1) > 1e-9 {
			t.Fatalf("%s: centre hit should send the ball straight back, got %v", tc.name, s.Ball.Dir)
		}
		if math.Abs(s.Ball.Pos.Y-(rect.Bottom()+b.Radius)) > 1e-9 {
			t.Fatalf("%s: ball not pushed clear of the paddle: %v", tc.name, s.Ball.Pos)
		}
		if !s.Ball.Boosted {
			t.Fatalf("%s: snapshot should report a boosted ball", tc.name)
		}
	}
}

func TestLungeNeverLosesAReturn(t *testing.T) {
	for _, act := range []bool{false, true} {
		e := newTestEngine(t, 8)
		startLive(t, e, 4, 3)
		rest := e.paddle(tuning.EdgeTop).Bounds(e.testArena())

		// Lands just inside the resting paddle's field face.
		b := e.testBall()
		b.ResetTimer = 0
		b.Dir = gamemath.Vec2{Y: -1}
		b.Pos = gamemath.Vec2{X: rest.Center().X, Y: rest.Bottom() - 1 + b.EffectiveSpeed(1)}

		if act {
			e.ApplyIntent(tuning.EdgeTop, intent.Act)
		}
		e.Tick()
		s := e.Snapshot()

		if !s.Has(EventPaddleHit) {
			t.Fatalf("act=%v: no paddle hit, events %v", act, s.Events)
		}
		if s.Has(EventLifeLost) || s.Lives[tuning.EdgeTop] != 3 {
			t.Fatalf("act=%v: life lost, lives %v", act, s.Lives)
		}
		if s.Ball.Dir.Y <= 0 {
			t.Fatalf("act=%v: ball not returned, dir %v", act, s.Ball.Dir)
		}
	}
}

func TestBallLeavingPaddleNotHitAgain(t *testing.T) {
	e := newTestEngine(t, 9)
	startLive(t, e, 4, 3)
	rest := e.paddle(tuning.EdgeTop).Bounds(e.testArena())

	b := e.testBall()
	b.ResetTimer = 0
	b.Dir = gamemath.Vec2{Y: 1}
	b.Pos = gamemath.Vec2{X: rest.Center().X, Y: rest.Bottom() + b.Radius - 1 - b.EffectiveSpeed(1)}

	e.Tick()
	s := e.Snapshot()
	if s.Has(EventPaddleHit) {
		t.Fatalf("ball heading into the field was hit: %v", s.Events)
	}
	if b.HitBoost != 1 || s.Ball.Dir.Y != 1 {
		t.Fatalf("ball altered: boost %v dir %v", b.HitBoost, s.Ball.Dir)
	}
}

func TestEscapedBallRelaunches(t *testing.T) {
	e := newTestEngine(t, 10)
	startLive(t, e, 4, 3)
	arena := e.testArena()

	b := e.testBall()
	speed := b.BaseSpeed
	b.ResetTimer = 0
	b.Dir = gamemath.Vec2{X: -1}
	b.Pos = gamemath.Vec2{X: -500, Y: arena.Center().Y}

	e.Tick()
	s := e.Snapshot()
	if s.Ball.Pos != arena.Center() {
		t.Fatalf("ball pos = %v, want centre %v", s.Ball.Pos, arena.Center())
	}
	if !s.Ball.CoolingDown {
		t.Fatal("relaunched ball should be cooling down")
	}
	if !s.Has(EventBallLaunched) || s.Has(EventLifeLost) {
		t.Fatalf("events = %v, want a launch and no life lost", s.Events)
	}
	if s.Lives != [4]int{3, 3, 3, 3} {
		t.Fatalf("lives = %v", s.Lives)
	}
	if b.BaseSpeed != speed {
		t.Fatalf("base speed = %v, want %v kept", b.BaseSpeed, speed)
	}
}

func TestZeroDirectionRenormalised(t *testing.T) {
	for _, dir := range []gamemath.Vec2{{}, {X: math.NaN()}, {X: 3, Y: 4}} {
		e := newTestEngine(t, 11)
		startLive(t, e, 4, 3)
		b := e.testBall()
		b.ResetTimer = 0
		b.Pos = e.testArena().Center()
		b.Dir = dir

		e.Tick()
		got := e.Snapshot().Ball.Dir
		if math.Abs(got.Len()-1) > 1e-9 {
			t.Fatalf("dir %v: heading %v has length %v", dir, got, got.Len())
		}
		if e.testBall().Pos == e.testArena().Center() {
			t.Fatalf("dir %v: ball did not move", dir)
		}
	}
}

func TestLaunchAvoidsAxes(t *testing.T) {
	band := tuning.Ball.AxisBandDegrees * math.Pi / 180
	for seed := uint64(1); seed <= 200; seed++ {
		e := newTestEngine(t, seed)
		e.StartMatch(4, 3)
		d := e.Snapshot().Ball.Dir
		if math.Abs(d.Len()-1) > 1e-9 {
			t.Fatalf("seed %d: launch direction not unit: %v", seed, d)
		}
		angle := math.Atan2(d.Y, d.X)
		off := angle - math.Round(angle/(math.Pi/2))*(math.Pi/2)
		if math.Abs(off) < band-1e-9 {
			t.Fatalf("seed %d: launch angle %v is within the axis band", seed, angle*180/math.Pi)
		}
	}
}

func TestPaddleMovementLatchesAndClamps(t *testing.T) {
	e := newTestEngine(t, 8)
	e.StartMatch(4, 3)
	arena := e.testArena()
	p := e.paddle(tuning.EdgeRight)
	lo, hi := arena.TravelRange(tuning.EdgeRight, p.Length)

	e.ApplyIntent(tuning.EdgeRight, intent.MoveTowardStart)
	for i := 0; i < 100; i++ {
		e.Tick()
	}
	if p.Position != lo {
		t.Fatalf("position = %v, want clamped to %v", p.Position, lo)
	}

	e.ApplyIntent(tuning.EdgeRight, intent.MoveTowardEnd)
	e.Tick()
	e.ApplyIntent(tuning.EdgeRight, intent.None)
	stopped := p.Position
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	if p.Position != stopped || stopped <= lo {
		t.Fatalf("paddle should stop at %v after one step, got %v", stopped, p.Position)
	}

	e.ApplyIntent(tuning.EdgeRight, intent.MoveTowardEnd)
	for i := 0; i < 100; i++ {
		e.Tick()
	}
	if p.Position != hi {
		t.Fatalf("position = %v, want clamped to %v", p.Position, hi)
	}
}

func TestInvalidIntentsIgnored(t *testing.T) {
	e := newTestEngine(t, 9)
	startLive(t, e, 2, 3)
	before := e.Snapshot()

	e.ApplyIntent(-1, intent.Act)
	e.ApplyIntent(4, intent.MoveTowardEnd)
	e.ApplyIntent(0, intent.Intent(42))
	e.ApplyIntent(tuning.EdgeRight, intent.Act) // empty seat

	after := e.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("invalid intents changed the match:\n%+v\n%+v", before, after)
	}
	if e.paddle(tuning.EdgeRight).HitTimer != 0 {
		t.Fatal("empty seat lunged")
	}
}

func TestResetMatchIdempotent(t *testing.T) {
	e := newTestEngine(t, 10)
	startLive(t, e, 4, 3)
	for i := 0; i < 200; i++ {
		e.ApplyIntent(i%4, intent.MoveTowardEnd)
		e.Tick()
	}

	e.ResetMatch()
	first := e.Snapshot()
	e.ResetMatch()
	second := e.Snapshot()

	first.Ball.Dir, second.Ball.Dir = gamemath.Vec2{}, gamemath.Vec2{}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reset twice differs:\n%+v\n%+v", first, second)
	}
	if first.State != tuning.MatchStateCountdown || first.Tick != 0 {
		t.Fatalf("reset snapshot state %v tick %d", first.State, first.Tick)
	}
}

func TestStartIntent(t *testing.T) {
	e := newTestEngine(t, 11)
	e.Tick()
	if got := e.Snapshot().State; got != tuning.MatchStateWaiting {
		t.Fatalf("state before start = %v", got)
	}
	e.ApplyIntent(3, intent.Start)
	if got := e.Snapshot().State; got != tuning.MatchStateCountdown {
		t.Fatalf("state after start = %v", got)
	}
	if players, lives := e.Settings(); players != 4 || lives != tuning.Match.StartingLives {
		t.Fatalf("settings = %d players, %d lives", players, lives)
	}
	e.ApplyIntent(3, intent.Start)
	if got := e.Snapshot().State; got != tuning.MatchStateActive {
		t.Fatalf("second start should skip the countdown, state = %v", got)
	}
}

func TestConfigureThenStart(t *testing.T) {
	e := newTestEngine(t, 21)
	e.Configure(9, 0)
	if players, lives := e.Settings(); players != 4 || lives != tuning.Match.StartingLives {
		t.Fatalf("clamped settings = %d players, %d lives", players, lives)
	}
	e.Configure(2, 5)
	if got := e.Snapshot().State; got != tuning.MatchStateWaiting {
		t.Fatalf("configure changed state to %v", got)
	}
	e.ApplyIntent(0, intent.Start)
	s := e.Snapshot()
	if s.PlayerCount != 2 || s.Lives[tuning.EdgeTop] != 5 || s.Lives[tuning.EdgeBottom] != 5 {
		t.Fatalf("started with %d players, lives %v", s.PlayerCount, s.Lives)
	}
}

func TestTickRecoversFromPanic(t *testing.T) {
	e := newTestEngine(t, 12)
	startLive(t, e, 4, 3)
	e.pipeline = append(e.pipeline, func(donburi.World) { panic("boom") })

	e.ApplyIntent(tuning.EdgeTop, intent.MoveTowardEnd)
	b := e.testBall()
	b.ResetTimer = 0
	before := e.Snapshot()

	e.Tick()
	e.Tick()
	s := e.Snapshot()
	if s.Tick != before.Tick+2 {
		t.Fatalf("tick = %d, want %d", s.Tick, before.Tick+2)
	}
	if s.Ball.Pos != before.Ball.Pos {
		t.Fatalf("ball moved during failed ticks: %v -> %v", before.Ball.Pos, s.Ball.Pos)
	}
	if s.Paddles[tuning.EdgeTop].Bounds != before.Paddles[tuning.EdgeTop].Bounds {
		t.Fatal("paddle moved during failed ticks")
	}
	if len(s.Events) != 0 {
		t.Fatalf("failed tick left events %v", s.Events)
	}

	// Dropping the failing step resumes play from the restored state.
	e.pipeline = e.pipeline[:len(e.pipeline)-1]
	e.Tick()
	if e.Snapshot().Ball.Pos == before.Ball.Pos {
		t.Fatal("ball did not move once ticks succeed again")
	}
}

func TestWatchdogTieBreak(t *testing.T) {
	e := newTestEngine(t, 13)
	startLive(t, e, 4, 3)
	wd := Watchdog{Limit: 10}

	for i := 0; i < 9; i++ {
		e.Tick()
		if wd.Check(e) {
			t.Fatalf("watchdog fired early at tick %d", i+1)
		}
	}
	e.match().Slots[tuning.EdgeLeft].Lives = 4
	e.Tick()
	if !wd.Check(e) {
		t.Fatal("watchdog did not fire at the limit")
	}
	if winner, ok := e.ConsumeResult(); !ok || winner != tuning.EdgeLeft {
		t.Fatalf("ConsumeResult = %d, %v, want left", winner, ok)
	}

	e.ResetMatch()
	e.ApplyIntent(0, intent.Start)
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	wd.Check(e)
	if winner, ok := e.ConsumeResult(); !ok || winner != tuning.NoWinner {
		t.Fatalf("tied lives: ConsumeResult = %d, %v, want draw", winner, ok)
	}
}

func TestFeverDoublesSpeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 14
	e := New(cfg)
	startLive(t, e, 4, 3)

	orbEntry, _ := components.Fever.First(e.world)
	f := components.Fever.Get(orbEntry)
	f.SpawnTimer = 0
	e.Tick()
	s := e.Snapshot()
	if !s.Fever.OrbActive || !s.Has(EventFeverOrbSpawned) {
		t.Fatalf("orb did not spawn: %+v", s.Fever)
	}
	if !e.testArena().Contains(s.Fever.OrbPos) {
		t.Fatalf("orb spawned outside the arena at %v", s.Fever.OrbPos)
	}

	b := e.testBall()
	b.ResetTimer = 0
	b.Pos = f.OrbPos
	b.Dir = gamemath.Vec2{X: 1}
	e.Tick()
	s = e.Snapshot()
	if !s.Has(EventFeverStarted) || !s.Fever.Active || s.Fever.OrbActive {
		t.Fatalf("fever not started: %+v events %v", s.Fever, s.Events)
	}
	if want := math.Min(b.BaseSpeed*b.HitBoost*2, b.MaxSpeed); math.Abs(s.Ball.Speed-want) > 1e-9 {
		t.Fatalf("fever speed = %v, want %v", s.Ball.Speed, want)
	}

	aimAtEdge(e, tuning.EdgeBottom)
	e.Tick()
	s = e.Snapshot()
	if s.Fever.Active || !s.Has(EventFeverEnded) {
		t.Fatalf("losing a life should end fever: %+v", s.Fever)
	}
}

// TestRandomPlayInvariants drives full matches with random inputs and checks
// the invariants that must hold after every tick.
func TestRandomPlayInvariants(t *testing.T) {
	e := newTestEngine(t, 15)
	rng := rand.New(rand.NewPCG(15, 51))
	e.StartMatch(4, 3)

	arena := e.testArena()
	prevLives := e.Snapshot().Lives
	prevAlive := e.Snapshot().Alive
	finished := 0

	for tick := 0; tick < 20000; tick++ {
		for p := 0; p < 4; p++ {
			if rng.IntN(8) == 0 {
				e.ApplyIntent(p, intent.Intent(rng.IntN(4)))
			}
		}
		e.Tick()
		s := e.Snapshot()
		b := e.testBall()

		if b.BaseSpeed > b.MaxSpeed+1e-9 || s.Ball.Speed > b.MaxSpeed+1e-9 {
			t.Fatalf("tick %d: speed %v over max %v", tick, s.Ball.Speed, b.MaxSpeed)
		}
		if math.Abs(s.Ball.Dir.Len()-1) > 1e-9 {
			t.Fatalf("tick %d: direction not unit: %v", tick, s.Ball.Dir)
		}
		if !arena.Contains(s.Ball.Pos) {
			t.Fatalf("tick %d: ball outside the arena at %v", tick, s.Ball.Pos)
		}
		for edge := 0; edge < tuning.EdgeCount; edge++ {
			p := e.paddle(edge)
			lo, hi := arena.TravelRange(edge, p.Length)
			if p.Position < lo || p.Position > hi {
				t.Fatalf("tick %d: paddle %d at %v outside [%v, %v]", tick, edge, p.Position, lo, hi)
			}
			if s.Lives[edge] > prevLives[edge] {
				t.Fatalf("tick %d: lives of %d went up", tick, edge)
			}
			if s.Alive[edge] && !prevAlive[edge] {
				t.Fatalf("tick %d: slot %d came back", tick, edge)
			}
		}

		if s.State == tuning.MatchStateTerminal {
			alive := 0
			for _, a := range s.Alive {
				if a {
					alive++
				}
			}
			if alive > 1 {
				t.Fatalf("tick %d: terminal with %d alive", tick, alive)
			}
			if alive == 1 && !s.Alive[s.Winner] {
				t.Fatalf("tick %d: winner %d is not the survivor", tick, s.Winner)
			}
			finished++
			e.ApplyIntent(0, intent.Restart)
			s = e.Snapshot()
		}
		prevLives, prevAlive = s.Lives, s.Alive
	}

	if finished == 0 {
		t.Fatal("no match finished under random play")
	}
}
