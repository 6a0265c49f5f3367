package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/automoto/pong-royale/assets"
	"github.com/automoto/pong-royale/bridge"
	"github.com/automoto/pong-royale/config"
	"github.com/automoto/pong-royale/fonts"
	"github.com/automoto/pong-royale/intent"
	"github.com/automoto/pong-royale/lobby"
	"github.com/automoto/pong-royale/scenes"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/automoto/pong-royale/stats"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
	quit  bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(session *scenes.Session) *Game {
	fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.CountdownFontSize, config.UI.TitleFontSize)

	g := &Game{}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewMatchScene(g, session, false)
	} else {
		g.scene = scenes.NewMenuScene(g, session)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	players := flag.Int("players", config.MatchSetup.DefaultPlayers, "number of seated players (1-4)")
	lives := flag.Int("lives", config.MatchSetup.DefaultLives, "starting lives per player")
	arena := flag.String("arena", "classic", "arena preset name")
	seed := flag.Uint64("seed", 0, "simulation seed, 0 for random")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "skip the menu and wait for a start press")
	flag.StringVar(&config.Debug.BridgeAddr, "bridge", config.Debug.BridgeAddr, "controller bridge listen address, e.g. :8080")
	flag.BoolVar(&config.Debug.ShowHitboxes, "hitboxes", config.Debug.ShowHitboxes, "outline paddle hitboxes")
	flag.Parse()
	config.Debug.Arena = *arena

	session := &scenes.Session{
		Lobby:   lobby.New(config.MatchSetup.PlayerCounts, config.MatchSetup.LifeOptions, assets.LoadArenas(), *players, *lives),
		Stats:   stats.Open(),
		Mailbox: intent.NewMailbox(),
		Seed:    *seed,
	}
	if !session.Lobby.SelectArena(config.Debug.Arena) {
		log.Printf("Warning: Unknown arena %q, using %s", config.Debug.Arena, session.Lobby.Arena().Name)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if config.Debug.BridgeAddr != "" {
		srv := bridge.New(config.Debug.BridgeAddr, session.Mailbox)
		go func() {
			if err := srv.Serve(ctx); err != nil {
				log.Printf("[bridge] stopped: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Pong Royale")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(tuning.TickRate)

	if err := ebiten.RunGame(NewGame(session)); err != nil {
		log.Fatal(err)
	}
}
