// Package intent defines the abstract player inputs the engine understands
// and the mailbox that carries them from input goroutines to the tick loop.
package intent

import (
	"errors"
	"fmt"
	"strings"
)

// Intent is a single abstract player input.
type Intent int

const (
	None            Intent = iota // stop moving
	MoveTowardStart               // left on horizontal edges, up on vertical ones
	MoveTowardEnd                 // right on horizontal edges, down on vertical ones
	Act                           // lunge
	Start
	Restart
	count
)

var ErrUnknownAction = errors.New("unknown action")

// Valid reports whether i is one of the defined intents.
func (i Intent) Valid() bool {
	return i >= None && i < count
}

// IsMove reports whether i changes the latched paddle movement.
func (i Intent) IsMove() bool {
	return i == None || i == MoveTowardStart || i == MoveTowardEnd
}

func (i Intent) String() string {
	switch i {
	case None:
		return "none"
	case MoveTowardStart:
		return "move-start"
	case MoveTowardEnd:
		return "move-end"
	case Act:
		return "act"
	case Start:
		return "start"
	case Restart:
		return "restart"
	}
	return fmt.Sprintf("intent(%d)", int(i))
}

// Parse decodes a controller action name. Directions are relative to the
// paddle's edge: left and up both move toward the edge start.
func Parse(action string) (Intent, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "left", "up":
		return MoveTowardStart, nil
	case "right", "down":
		return MoveTowardEnd, nil
	case "stop", "none", "":
		return None, nil
	case "hit", "act", "button", "press":
		return Act, nil
	case "start":
		return Start, nil
	case "restart":
		return Restart, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownAction, action)
}
