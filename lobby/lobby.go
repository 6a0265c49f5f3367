// Package lobby holds the match setup chosen before play: how many
// players are seated, how many lives they get and which arena is used.
package lobby

import (
	"fmt"

	"github.com/automoto/pong-royale/shared/arenadata"
	"github.com/automoto/pong-royale/shared/tuning"
)

// LobbyData stores the match configuration state
type LobbyData struct {
	PlayerCounts []int
	LifeOptions  []int
	Arenas       []arenadata.Preset

	playerIndex int
	livesIndex  int
	arenaIndex  int
}

// New creates a lobby preselecting the given defaults. Defaults missing
// from the option lists fall back to the first option.
func New(playerCounts, lifeOptions []int, arenas []arenadata.Preset, players, lives int) *LobbyData {
	if len(playerCounts) == 0 {
		playerCounts = []int{tuning.EdgeCount}
	}
	if len(lifeOptions) == 0 {
		lifeOptions = []int{tuning.Match.StartingLives}
	}
	if len(arenas) == 0 {
		arenas = []arenadata.Preset{arenadata.Default()}
	}
	l := &LobbyData{
		PlayerCounts: playerCounts,
		LifeOptions:  lifeOptions,
		Arenas:       arenas,
	}
	l.playerIndex = indexOf(playerCounts, players)
	l.livesIndex = indexOf(lifeOptions, lives)
	return l
}

func indexOf(options []int, v int) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return 0
}

func (l *LobbyData) PlayerCount() int { return l.PlayerCounts[l.playerIndex] }

func (l *LobbyData) Lives() int { return l.LifeOptions[l.livesIndex] }

func (l *LobbyData) Arena() arenadata.Preset { return l.Arenas[l.arenaIndex] }

// CyclePlayers advances to the next player count, wrapping around.
func (l *LobbyData) CyclePlayers() {
	l.playerIndex = (l.playerIndex + 1) % len(l.PlayerCounts)
}

// CycleLives advances to the next lives option, wrapping around.
func (l *LobbyData) CycleLives() {
	l.livesIndex = (l.livesIndex + 1) % len(l.LifeOptions)
}

// CycleArena advances to the next arena preset, wrapping around.
func (l *LobbyData) CycleArena() {
	l.arenaIndex = (l.arenaIndex + 1) % len(l.Arenas)
}

// SelectArena picks a preset by name and reports whether it exists.
func (l *LobbyData) SelectArena(name string) bool {
	for i, p := range l.Arenas {
		if p.Name == name {
			l.arenaIndex = i
			return true
		}
	}
	return false
}

// Rules returns the package rules with the selected arena applied.
func (l *LobbyData) Rules() tuning.Rules {
	r := tuning.Current()
	l.Arena().Apply(&r)
	return r
}

// GetArenaDisplayName returns the menu label for a preset
func GetArenaDisplayName(p arenadata.Preset) string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

// GetPlayerCountName returns the menu label for a player count
func GetPlayerCountName(n int) string {
	if n == 1 {
		return "Solo"
	}
	return fmt.Sprintf("%d players", n)
}

// SeatedNames lists the edges that will be defended, in slot order.
func SeatedNames(n int, names [tuning.EdgeCount]string) []string {
	active := tuning.ActiveEdges(n)
	var out []string
	for edge, ok := range active {
		if ok {
			out = append(out, names[edge])
		}
	}
	return out
}
