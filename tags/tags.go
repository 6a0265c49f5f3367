package tags

import "github.com/yohamta/donburi"

var (
	Arena    = donburi.NewTag().SetName("Arena")
	Paddle   = donburi.NewTag().SetName("Paddle")
	Ball     = donburi.NewTag().SetName("Ball")
	FeverOrb = donburi.NewTag().SetName("FeverOrb")
)

// Resolv tags for collision
const (
	ResolvPaddle = "paddle"
	ResolvBall   = "ball"
	ResolvOrb    = "orb"
)
