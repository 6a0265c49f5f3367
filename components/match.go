package components

import (
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state and every player slot.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State          tuning.MatchStateID
	Timer          int // countdown frames remaining
	CountdownValue int // whole seconds left on the countdown, 0 once live
	Elapsed        int // live frames played
	Tick           uint64
	PlayerCount    int
	StartingLives  int
	Slots          [tuning.EdgeCount]PlayerSlot
	WinnerIndex    int  // tuning.NoWinner until a slot wins
	ResultPending  bool // terminal result not yet consumed
}

var Match = donburi.NewComponentType[MatchData]()

// Seat fills the slots for a new match.
func (m *MatchData) Seat(playerCount, lives int) {
	active := tuning.ActiveEdges(playerCount)
	for i := range m.Slots {
		m.Slots[i] = PlayerSlot{
			Edge:   i,
			Active: active[i],
			Alive:  active[i],
		}
		if active[i] {
			m.Slots[i].LivesData = LivesData{Lives: lives, MaxLives: lives}
		}
	}
	m.PlayerCount = playerCount
	m.StartingLives = lives
	m.WinnerIndex = tuning.NoWinner
	m.ResultPending = false
}

// AliveCount returns how many slots still have lives.
func (m *MatchData) AliveCount() int {
	n := 0
	for i := range m.Slots {
		if m.Slots[i].Alive {
			n++
		}
	}
	return n
}

// FirstAlive returns the lowest alive slot index, or tuning.NoWinner.
func (m *MatchData) FirstAlive() int {
	for i := range m.Slots {
		if m.Slots[i].Alive {
			return i
		}
	}
	return tuning.NoWinner
}

// Leader returns the alive slot with the most lives, or tuning.NoWinner when
// the lead is shared.
func (m *MatchData) Leader() int {
	leader := tuning.NoWinner
	best := -1
	tied := false
	for i := range m.Slots {
		s := &m.Slots[i]
		if !s.Alive {
			continue
		}
		if s.Lives > best {
			best = s.Lives
			leader = i
			tied = false
		} else if s.Lives == best {
			tied = true
		}
	}
	if tied {
		return tuning.NoWinner
	}
	return leader
}

// Finish freezes the match with a result waiting to be consumed.
func (m *MatchData) Finish(winner int) {
	m.State = tuning.MatchStateTerminal
	m.WinnerIndex = winner
	m.ResultPending = true
}
