package factory

import (
	"github.com/automoto/pong-royale/archetypes"
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

// CreateArena spawns the singleton holding the arena, the match and the
// per-tick event log.
func CreateArena(w donburi.World, r tuning.ArenaRules) *donburi.Entry {
	arena := archetypes.Arena.Spawn(w)
	components.Arena.SetValue(arena, components.NewArena(r))
	components.Match.SetValue(arena, components.MatchData{
		State:       tuning.MatchStateWaiting,
		WinnerIndex: tuning.NoWinner,
	})
	return arena
}
