package systems

import (
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

// HandleEdgeStruck charges one life to the slot defending edge. The ball is
// relaunched one step faster and the slot's paddle re-centred whether or not
// the match ends. It reports whether the match reached its terminal state.
func HandleEdgeStruck(w donburi.World, edge int) bool {
	t, ok := tableOf(w)
	if !ok || edge < 0 || edge >= tuning.EdgeCount {
		return false
	}
	slot := &t.match.Slots[edge]
	if !slot.Alive {
		return false
	}

	eliminated := slot.LoseLife()
	t.emit(components.EventLifeLost, edge)
	if eliminated {
		t.emit(components.EventEliminated, edge)
	}

	EndFever(w)
	ResetPaddle(w, edge)
	RelaunchBall(w, LaunchEscalate)

	if matchDecided(t.match) {
		t.match.Finish(t.match.FirstAlive())
		t.emit(components.EventMatchOver, t.match.WinnerIndex)
		return true
	}
	t.match.State = tuning.MatchStateRoundEnd
	return false
}

// matchDecided is true once a single survivor remains, or when nobody does.
// A solo match only ends when its one player runs out of lives.
func matchDecided(m *components.MatchData) bool {
	alive := m.AliveCount()
	if alive == 0 {
		return true
	}
	return alive == 1 && m.PlayerCount > 1
}
