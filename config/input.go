package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical client action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveStart // toward the top of a side edge or the left of a horizontal one
	ActionMoveEnd
	ActionHit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// SlotBindings maps a player slot's actions to keys and buttons
type SlotBindings [ActionCount]InputBinding

// InputConfig holds all input mappings
type InputConfig struct {
	// Slots is indexed by edge: top, right, bottom, left.
	Slots [4]SlotBindings

	Start   []ebiten.Key
	Restart []ebiten.Key
	Back    []ebiten.Key

	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Start:          []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
		Restart:        []ebiten.Key{ebiten.KeyR},
		Back:           []ebiten.Key{ebiten.KeyEscape},
	}

	// Top
	Input.Slots[0] = SlotBindings{
		ActionMoveStart: {Keys: []ebiten.Key{ebiten.KeyA}},
		ActionMoveEnd:   {Keys: []ebiten.Key{ebiten.KeyD}},
		ActionHit:       {Keys: []ebiten.Key{ebiten.KeyS}},
	}
	// Right
	Input.Slots[1] = SlotBindings{
		ActionMoveStart: {Keys: []ebiten.Key{ebiten.KeyUp}},
		ActionMoveEnd:   {Keys: []ebiten.Key{ebiten.KeyDown}},
		ActionHit:       {Keys: []ebiten.Key{ebiten.KeyLeft}},
	}
	// Bottom
	Input.Slots[2] = SlotBindings{
		ActionMoveStart: {Keys: []ebiten.Key{ebiten.KeyJ}},
		ActionMoveEnd:   {Keys: []ebiten.Key{ebiten.KeyL}},
		ActionHit:       {Keys: []ebiten.Key{ebiten.KeyK}},
	}
	// Left
	Input.Slots[3] = SlotBindings{
		ActionMoveStart: {Keys: []ebiten.Key{ebiten.KeyI}},
		ActionMoveEnd:   {Keys: []ebiten.Key{ebiten.KeyP}},
		ActionHit:       {Keys: []ebiten.Key{ebiten.KeyO}},
	}

	// Gamepads map to slots in connection order. The D-pad covers both axes
	// so the same pad works on any edge.
	for i := range Input.Slots {
		Input.Slots[i][ActionMoveStart].StandardGamepadButtons = []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
			ebiten.StandardGamepadButtonLeftTop,
		}
		Input.Slots[i][ActionMoveEnd].StandardGamepadButtons = []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
			ebiten.StandardGamepadButtonLeftBottom,
		}
		// A / Cross button
		Input.Slots[i][ActionHit].StandardGamepadButtons = []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		}
	}
}
