package archetypes

import (
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/tags"
	"github.com/yohamta/donburi"
)

var (
	Arena = newArchetype(
		tags.Arena,
		components.Arena,
		components.Match,
		components.Events,
		components.Rules,
		components.Random,
	)
	Paddle = newArchetype(
		tags.Paddle,
		components.Paddle,
		components.Object,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
	)
	FeverOrb = newArchetype(
		tags.FeverOrb,
		components.Fever,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
