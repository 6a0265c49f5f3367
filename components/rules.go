package components

import (
	"math/rand/v2"

	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

// Rules is the rule set a match was created with.
var Rules = donburi.NewComponentType[tuning.Rules]()

// RandomData is the match's source of randomness. Seeding it makes a match
// reproducible.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
