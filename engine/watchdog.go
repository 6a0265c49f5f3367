package engine

import "github.com/automoto/pong-royale/shared/tuning"

// Watchdog ends matches that run longer than Limit live ticks. It belongs
// to the outer loop; the engine itself never times out.
type Watchdog struct {
	Limit int
}

// Check forces a result once the limit is reached and reports whether it
// did so.
func (w Watchdog) Check(e *Engine) bool {
	if w.Limit <= 0 {
		return false
	}
	m := e.match()
	switch m.State {
	case tuning.MatchStateActive, tuning.MatchStateRoundEnd:
	default:
		return false
	}
	if m.Elapsed < w.Limit {
		return false
	}
	e.ForceResult()
	return true
}
