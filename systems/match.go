package systems

import (
	"github.com/automoto/pong-royale/components"
	"github.com/automoto/pong-royale/shared/tuning"
	"github.com/yohamta/donburi"
)

// UpdateMatch handles match state transitions and timers.
func UpdateMatch(w donburi.World) {
	t, ok := tableOf(w)
	if !ok {
		return
	}
	match := t.match

	switch match.State {
	case tuning.MatchStateWaiting, tuning.MatchStateTerminal:
		return

	case tuning.MatchStateCountdown:
		updateCountdown(t)

	case tuning.MatchStateRoundEnd:
		// RoundEnd lasts exactly one tick.
		match.State = tuning.MatchStateActive
		match.Elapsed++

	case tuning.MatchStateActive:
		match.Elapsed++
	}
}

func updateCountdown(t table) {
	match := t.match
	if match.Timer > 0 {
		match.Timer--
		value := countdownSeconds(match.Timer)
		if value != match.CountdownValue {
			match.CountdownValue = value
			t.emit(components.EventCountdown, value)
		}
		if match.Timer > 0 {
			return
		}
	}
	beginPlay(t)
}

func beginPlay(t table) {
	t.match.State = tuning.MatchStateActive
	t.match.Timer = 0
	t.match.CountdownValue = 0
	t.emit(components.EventMatchStarted, -1)
}

// countdownSeconds rounds the remaining frames up to whole seconds.
func countdownSeconds(frames int) int {
	if frames <= 0 {
		return 0
	}
	return (frames + tuning.TickRate - 1) / tuning.TickRate
}

// StartMatch seats the players and starts the countdown. Every paddle is
// centred and the ball waits at the centre with a fresh launch.
func StartMatch(w donburi.World, playerCount, lives int) {
	t, ok := tableOf(w)
	if !ok {
		return
	}
	match := t.match
	match.Seat(playerCount, lives)
	match.State = tuning.MatchStateCountdown
	match.Timer = t.rules.Match.CountdownDuration
	match.CountdownValue = countdownSeconds(match.Timer)
	match.Elapsed = 0

	for edge := 0; edge < tuning.EdgeCount; edge++ {
		ResetPaddle(w, edge)
	}
	ResetFever(w)
	RelaunchBall(w, LaunchFresh)

	if match.Timer <= 0 {
		beginPlay(t)
	}
}

// SkipCountdown goes straight to live play.
func SkipCountdown(w donburi.World) {
	t, ok := tableOf(w)
	if !ok || t.match.State != tuning.MatchStateCountdown {
		return
	}
	beginPlay(t)
}

// ForceResult ends a running match, awarding it to the slot with the most
// lives. A shared lead ends without a winner.
func ForceResult(w donburi.World) {
	t, ok := tableOf(w)
	if !ok {
		return
	}
	switch t.match.State {
	case tuning.MatchStateWaiting, tuning.MatchStateTerminal:
		return
	}
	t.match.Finish(t.match.Leader())
	t.emit(components.EventMatchOver, t.match.WinnerIndex)
}

// IsMatchLive returns true while the ball is in play.
func IsMatchLive(w donburi.World) bool {
	t, ok := tableOf(w)
	return ok && t.match.State == tuning.MatchStateActive
}

// IsMatchFinished returns true once the match has a result.
func IsMatchFinished(w donburi.World) bool {
	t, ok := tableOf(w)
	return ok && t.match.State == tuning.MatchStateTerminal
}
