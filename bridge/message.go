package bridge

import (
	"errors"
	"fmt"

	"github.com/automoto/pong-royale/intent"
)

var ErrNoPlayer = errors.New("event has no player")

// Message is one controller event as the ESP32 middleware emits it. Older
// clients send a bare action with "player"; controllers send "player_id"
// with a tilt or button action.
type Message struct {
	Player           *int   `json:"player,omitempty"`
	PlayerID         *int   `json:"player_id,omitempty"`
	Action           string `json:"action,omitempty"`
	ControllerAction string `json:"controller_action,omitempty"`
	RawDirection     string `json:"raw_direction,omitempty"`
	GameAction       string `json:"game_action,omitempty"`
}

// Ack answers every message so controllers can surface rejected input.
type Ack struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Decode turns a message into a player slot and intent.
func (m Message) Decode() (int, intent.Intent, error) {
	var player int
	switch {
	case m.PlayerID != nil:
		player = *m.PlayerID
	case m.Player != nil:
		player = *m.Player
	default:
		return 0, intent.None, ErrNoPlayer
	}
	if player < 0 || player >= intent.Players {
		return 0, intent.None, fmt.Errorf("player %d out of range", player)
	}

	in, err := m.intent()
	if err != nil {
		return 0, intent.None, err
	}
	return player, in, nil
}

func (m Message) intent() (intent.Intent, error) {
	switch m.ControllerAction {
	case "button":
		return intent.Act, nil
	case "tilt":
		return intent.Parse(m.RawDirection)
	}
	switch m.GameAction {
	case "move_up":
		return intent.MoveTowardStart, nil
	case "move_down":
		return intent.MoveTowardEnd, nil
	case "stop_vertical":
		return intent.None, nil
	case "action":
		return intent.Act, nil
	}
	if m.Action == "" {
		return intent.None, fmt.Errorf("%w: empty", intent.ErrUnknownAction)
	}
	return intent.Parse(m.Action)
}
