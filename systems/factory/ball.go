package factory

import (
	"github.com/automoto/pong-royale/archetypes"
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/automoto/pong-royale/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateBall spawns the ball frozen at the arena centre. Its collision object
// is the ball's bounding box grown by one broad-phase cell.
func CreateBall(w donburi.World, arena *components.ArenaData, r tuning.BallRules) *donburi.Entry {
	ball := archetypes.Ball.Spawn(w)

	b := components.NewBall(arena, r)
	components.Ball.SetValue(ball, b)

	size := 2 * (b.Radius + BroadphaseCell)
	obj := resolv.NewObject(b.Pos.X-size/2, b.Pos.Y-size/2, size, size, tags.ResolvBall)
	obj.Data = ball

	components.Object.SetValue(ball, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return ball
}
