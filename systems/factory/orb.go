package factory

import (
	"github.com/automoto/pong-royale/archetypes"
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/automoto/pong-royale/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateFeverOrb spawns the fever state. The orb's collision object only
// joins the space while the orb is on the field.
func CreateFeverOrb(w donburi.World, arena *components.ArenaData, r tuning.FeverRules) *donburi.Entry {
	orb := archetypes.FeverOrb.Spawn(w)

	f := components.FeverData{
		OrbRadius:  arena.Side * r.OrbRadiusRatio,
		Multiplier: r.Multiplier,
	}
	components.Fever.SetValue(orb, f)

	size := 2 * f.OrbRadius
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvOrb)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = orb

	components.Object.SetValue(orb, components.ObjectData{Object: obj})

	return orb
}
