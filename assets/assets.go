package assets

import (
	"embed"
	"log"

	"github.com/automoto/pong-royale/shared/arenadata"
)

//go:embed all:arenas
var arenaFS embed.FS

// LoadArenas returns the bundled arena presets. A broken bundle falls back
// to the default preset so the game still starts.
func LoadArenas() []arenadata.Preset {
	presets, err := arenadata.LoadAll(arenaFS, "arenas")
	if err != nil || len(presets) == 0 {
		log.Printf("Warning: Could not load arenas: %v", err)
		return []arenadata.Preset{arenadata.Default()}
	}
	return presets
}
