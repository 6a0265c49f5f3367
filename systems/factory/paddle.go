package factory

import (
	"github.com/automoto/pong-royale/archetypes"
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/automoto/pong-royale/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePaddle(w donburi.World, edge int, arena *components.ArenaData, r tuning.PaddleRules) *donburi.Entry {
	paddle := archetypes.Paddle.Spawn(w)

	p := components.NewPaddle(edge, arena, r)
	components.Paddle.SetValue(paddle, p)

	b := p.Bounds(arena)
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvPaddle)
	obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	obj.Data = paddle // Link for O(1) lookup

	components.Object.SetValue(paddle, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return paddle
}
