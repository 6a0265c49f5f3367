package components

import "github.com/yohamta/donburi"

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventPaddleHit EventKind = iota
	EventPaddleLunge
	EventWallBounce
	EventLifeLost
	EventEliminated
	EventBallLaunched
	EventFeverOrbSpawned
	EventFeverStarted
	EventFeverEnded
	EventCountdown
	EventMatchStarted
	EventMatchOver
)

func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "paddle-hit"
	case EventPaddleLunge:
		return "paddle-lunge"
	case EventWallBounce:
		return "wall-bounce"
	case EventLifeLost:
		return "life-lost"
	case EventEliminated:
		return "eliminated"
	case EventBallLaunched:
		return "ball-launched"
	case EventFeverOrbSpawned:
		return "fever-orb"
	case EventFeverStarted:
		return "fever-start"
	case EventFeverEnded:
		return "fever-end"
	case EventCountdown:
		return "countdown"
	case EventMatchStarted:
		return "match-started"
	case EventMatchOver:
		return "match-over"
	}
	return "unknown"
}

// Event carries the edge or slot involved, or -1 when none applies.
type Event struct {
	Kind EventKind
	Edge int
}

// EventsData collects the events of the current tick.
type EventsData struct {
	Events []Event
}

var Events = donburi.NewComponentType[EventsData]()
