package scenes

import (
	"sync"

	cfg "github.com/automoto/pong-royale/config"
	"github.com/automoto/pong-royale/sound"
	"github.com/automoto/pong-royale/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuScene displays the match setup menu using ebitenui
type MenuScene struct {
	sceneChanger SceneChanger
	session      *Session
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldStart  bool
	shouldQuit   bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, session *Session) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: session}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.menuUI.Update()

	if anyJustPressed(cfg.Input.Start) {
		ms.shouldStart = true
	}
	if anyJustPressed(cfg.Input.Back) {
		ms.shouldQuit = true
	}

	// Handle scene transitions
	if ms.shouldStart {
		sound.PlaySFX(cfg.SoundMenuSelect)
		ms.sceneChanger.ChangeScene(NewMatchScene(ms.sceneChanger, ms.session, true))
		return
	}
	if ms.shouldQuit {
		ms.sceneChanger.Quit()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(
		ms.session.Lobby,
		ms.session.Stats,
		func() { ms.shouldStart = true },
		func() { ms.shouldQuit = true },
	)
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
