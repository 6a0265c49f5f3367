package scenes

import (
	"github.com/automoto/pong-royale/intent"
	"github.com/automoto/pong-royale/lobby"
	"github.com/automoto/pong-royale/stats"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Session is the state that outlives a single scene.
type Session struct {
	Lobby   *lobby.LobbyData
	Stats   *stats.Store
	Mailbox *intent.Mailbox // shared with the controller bridge
	Seed    uint64          // 0 picks a fresh seed per match
}
