package factory

import (
	"github.com/automoto/pong-royale/archetypes"
	"github.com/automoto/pong-royale/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BroadphaseCell is the resolv cell size used by the match space.
const BroadphaseCell = 16

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the world's space if one exists.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
