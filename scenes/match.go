package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/pong-royale/config"
	"github.com/automoto/pong-royale/engine"
	"github.com/automoto/pong-royale/intent"
	"github.com/automoto/pong-royale/render"
	"github.com/automoto/pong-royale/render/fx"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/automoto/pong-royale/sound"
	"github.com/hajimehoshi/ebiten/v2"
)

// MatchScene runs one engine at the fixed tick rate and draws its
// snapshots.
type MatchScene struct {
	sceneChanger SceneChanger
	session      *Session
	autoStart    bool
	once         sync.Once

	engine    *engine.Engine
	watchdog  engine.Watchdog
	effects   *fx.Effects
	input     slotInput
	snap      engine.Snapshot
	lastState tuning.MatchStateID
}

// NewMatchScene creates a match from the session's lobby settings. Without
// autoStart the match waits for a Start intent.
func NewMatchScene(sc SceneChanger, session *Session, autoStart bool) *MatchScene {
	return &MatchScene{sceneChanger: sc, session: session, autoStart: autoStart}
}

func (ms *MatchScene) configure() {
	// Synthesize effects up front to avoid a hitch on the first bounce
	sound.PreloadAllSFX()

	rules := ms.session.Lobby.Rules()
	ms.engine = engine.New(engine.Config{Rules: rules, Seed: ms.session.Seed})
	ms.watchdog = engine.Watchdog{Limit: rules.Match.MaxDuration}
	ms.effects = fx.New(cfg.Effects)

	players, lives := ms.session.Lobby.PlayerCount(), ms.session.Lobby.Lives()
	if ms.autoStart {
		ms.engine.StartMatch(players, lives)
	} else {
		ms.engine.Configure(players, lives)
	}
	ms.snap = ms.engine.Snapshot()
	ms.lastState = ms.snap.State
	log.Printf("[match] %s arena, %d players, %d lives", ms.session.Lobby.Arena().Name, players, lives)
}

func (ms *MatchScene) Update() {
	ms.once.Do(ms.configure)

	if anyJustPressed(cfg.Input.Back) {
		ms.sceneChanger.ChangeScene(NewMenuScene(ms.sceneChanger, ms.session))
		return
	}

	mb := ms.session.Mailbox
	if anyJustPressed(cfg.Input.Start) {
		mb.Post(0, intent.Start)
	}
	if anyJustPressed(cfg.Input.Restart) {
		mb.Post(0, intent.Restart)
	}
	players, _ := ms.engine.Settings()
	ms.input.Poll(mb, players)

	mb.Deliver(ms.engine)
	ms.engine.Tick()
	if ms.watchdog.Check(ms.engine) {
		log.Printf("[match] time limit reached after %d ticks", ms.watchdog.Limit)
	}

	ms.snap = ms.engine.Snapshot()
	if ms.lastState == tuning.MatchStateTerminal && ms.snap.State != tuning.MatchStateTerminal {
		ms.effects.Reset()
		ms.input.reset()
	}
	ms.lastState = ms.snap.State

	ms.effects.Observe(ms.snap.Events)
	ms.effects.Update(1.0 / tuning.TickRate)
	sound.PlayEvents(ms.snap.Events)

	if ms.session.Stats.Collect(ms.engine) {
		log.Printf("[match] result recorded, winner %d", ms.snap.Winner)
	}
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	if ms.effects == nil {
		screen.Fill(cfg.UI.Background)
		return
	}
	render.DrawMatch(screen, ms.snap, ms.effects)
	if ms.snap.State == tuning.MatchStateTerminal {
		totals := ms.session.Stats.Totals()
		render.DrawResult(screen, ms.snap, ms.effects, totals.Wins, totals.Draws)
	}
}
