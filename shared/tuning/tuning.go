// Package tuning holds the simulation rules shared by the engine and the
// client. It must have zero dependencies on ebiten or any graphics library so
// the engine stays headless.
package tuning

// TickRate is the fixed simulation rate in ticks per second.
const TickRate = 60

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStateWaiting   MatchStateID = iota // No match started yet
	MatchStateCountdown                     // Pre-match countdown, ball frozen
	MatchStateActive                        // Live play
	MatchStateRoundEnd                      // A life was lost this tick
	MatchStateTerminal                      // Match over, frozen
)

func (s MatchStateID) String() string {
	switch s {
	case MatchStateWaiting:
		return "waiting"
	case MatchStateCountdown:
		return "countdown"
	case MatchStateActive:
		return "active"
	case MatchStateRoundEnd:
		return "round-end"
	case MatchStateTerminal:
		return "terminal"
	}
	return "unknown"
}

// Edge indices. Slot i always defends edge i.
const (
	EdgeTop = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
	EdgeCount
)

// NoWinner marks a terminal match without a surviving player.
const NoWinner = -1

// ArenaRules sizes the square playfield relative to the field it sits in.
type ArenaRules struct {
	FieldWidth  float64
	FieldHeight float64
	MarginRatio float64 // of min(FieldWidth, FieldHeight)
	WallRatio   float64 // of side length
}

// PaddleRules are expressed as ratios of the arena side length so the game
// plays the same at every resolution.
type PaddleRules struct {
	LengthRatio      float64
	ThicknessRatio   float64
	InsetRatio       float64 // distance of the paddle's outer face from its edge
	HitDistanceRatio float64 // full lunge extension
	SpeedRatio       float64 // travel per tick
	HitDuration      int     // ticks
}

// BallRules controls ball size, speed progression and launch policy.
type BallRules struct {
	RadiusRatio         float64
	BaseSpeedRatio      float64
	SpeedIncrementRatio float64
	MaxSpeedRatio       float64
	ResetDuration       int     // ticks frozen at centre after a relaunch
	AxisBandDegrees     float64 // launch angles this close to an axis are nudged out
	DeflectionArc       float64 // degrees spanned by a paddle's deflection map
	LungeBoost          float64
	LungeBoostCap       float64
	PassiveBoost        float64
	PassiveBoostCap     float64
	EscapeRadii         float64 // radii past a wall before the escape guard fires
}

// MatchRules controls lives and phase lengths.
type MatchRules struct {
	StartingLives     int
	CountdownDuration int // ticks
	MaxDuration       int // ticks, 0 disables the watchdog
}

// FeverRules configures the optional fever power-up.
type FeverRules struct {
	Enabled         bool
	OrbRadiusRatio  float64
	SpawnMarginPct  float64 // orb spawns this far inside the arena, as a fraction of side
	MinSpawnSeconds int
	MaxSpawnSeconds int
	Duration        int // ticks
	Multiplier      float64
}

// Rules bundles every rule group. The engine copies one at construction.
type Rules struct {
	Arena  ArenaRules
	Paddle PaddleRules
	Ball   BallRules
	Match  MatchRules
	Fever  FeverRules
}

var (
	Arena  ArenaRules
	Paddle PaddleRules
	Ball   BallRules
	Match  MatchRules
	Fever  FeverRules
)

func init() {
	Arena = ArenaRules{
		FieldWidth:  960,
		FieldHeight: 720,
		MarginRatio: 0.06,
		WallRatio:   0.05,
	}

	Paddle = PaddleRules{
		LengthRatio:      0.15,
		ThicknessRatio:   0.02,
		InsetRatio:       0.015,
		HitDistanceRatio: 0.05,
		SpeedRatio:       0.015,
		HitDuration:      10,
	}

	Ball = BallRules{
		RadiusRatio:         0.015,
		BaseSpeedRatio:      0.008,
		SpeedIncrementRatio: 0.0006,
		MaxSpeedRatio:       0.03,
		ResetDuration:       60,
		AxisBandDegrees:     15,
		DeflectionArc:       90,
		LungeBoost:          1.2,
		LungeBoostCap:       3.0,
		PassiveBoost:        1.05,
		PassiveBoostCap:     2.0,
		EscapeRadii:         2,
	}

	Match = MatchRules{
		StartingLives:     3,
		CountdownDuration: 5 * TickRate,
		MaxDuration:       10 * 60 * TickRate,
	}

	Fever = FeverRules{
		Enabled:         true,
		OrbRadiusRatio:  0.035,
		SpawnMarginPct:  0.15,
		MinSpawnSeconds: 8,
		MaxSpawnSeconds: 20,
		Duration:        5 * TickRate,
		Multiplier:      2.0,
	}
}

// Current returns a copy of the package-level rules.
func Current() Rules {
	return Rules{
		Arena:  Arena,
		Paddle: Paddle,
		Ball:   Ball,
		Match:  Match,
		Fever:  Fever,
	}
}

// ActiveEdges reports which edges are defended for a player count. Seating
// follows the cabinet layout: top first, then bottom, right and left.
func ActiveEdges(playerCount int) [EdgeCount]bool {
	var active [EdgeCount]bool
	if playerCount >= 1 {
		active[EdgeTop] = true
	}
	if playerCount >= 2 {
		active[EdgeBottom] = true
	}
	if playerCount >= 3 {
		active[EdgeRight] = true
	}
	if playerCount >= 4 {
		active[EdgeLeft] = true
	}
	return active
}
