package scenes

import (
	cfg "github.com/automoto/pong-royale/config"
	"github.com/automoto/pong-royale/intent"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// slotInput turns held keys and buttons into intents. Movement is posted
// only when it changes so a remote controller driving the same slot is
// not overridden every frame.
type slotInput struct {
	lastMove [tuning.EdgeCount]intent.Intent
	prevHit  [tuning.EdgeCount]bool
}

// reset forgets held state so keys still down after a restart are not
// replayed.
func (si *slotInput) reset() {
	*si = slotInput{}
}

// Poll posts this frame's local input for every seated slot.
func (si *slotInput) Poll(mb *intent.Mailbox, playerCount int) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	active := tuning.ActiveEdges(playerCount)

	pad := 0
	for edge := 0; edge < tuning.EdgeCount; edge++ {
		if !active[edge] {
			continue
		}
		var state [cfg.ActionCount]bool
		pollKeys(&state, cfg.Input.Slots[edge])
		// Gamepads are handed to seated slots in connection order.
		if pad < len(gamepadIDs) {
			pollGamepad(&state, cfg.Input.Slots[edge], gamepadIDs[pad], edge)
			pad++
		}

		move := intent.None
		switch {
		case state[cfg.ActionMoveStart] && !state[cfg.ActionMoveEnd]:
			move = intent.MoveTowardStart
		case state[cfg.ActionMoveEnd] && !state[cfg.ActionMoveStart]:
			move = intent.MoveTowardEnd
		}
		if move != si.lastMove[edge] {
			mb.Post(edge, move)
			si.lastMove[edge] = move
		}

		hit := state[cfg.ActionHit]
		if hit && !si.prevHit[edge] {
			mb.Post(edge, intent.Act)
		}
		si.prevHit[edge] = hit
	}
}

func pollKeys(state *[cfg.ActionCount]bool, bindings cfg.SlotBindings) {
	for action, binding := range bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				state[action] = true
			}
		}
	}
}

func pollGamepad(state *[cfg.ActionCount]bool, bindings cfg.SlotBindings, gpID ebiten.GamepadID, edge int) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}
	for action, binding := range bindings {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				state[action] = true
			}
		}
	}

	axis := ebiten.StandardGamepadAxisLeftStickVertical
	if edge == tuning.EdgeTop || edge == tuning.EdgeBottom {
		axis = ebiten.StandardGamepadAxisLeftStickHorizontal
	}
	v := ebiten.StandardGamepadAxisValue(gpID, axis)
	deadzone := cfg.Input.AnalogDeadzone
	if v < -deadzone {
		state[cfg.ActionMoveStart] = true
	}
	if v > deadzone {
		state[cfg.ActionMoveEnd] = true
	}
}
