package intent

import "sync"

// Players is the number of player slots an intent can address.
const Players = 4

// Sink receives intents. The engine implements it.
type Sink interface {
	ApplyIntent(player int, in Intent)
}

// Mailbox buffers intents between input goroutines and the tick loop. Per
// player it keeps only the latest movement intent; one-shot intents are
// flags that survive until the next delivery.
type Mailbox struct {
	mu      sync.Mutex
	move    [Players]Intent
	moved   [Players]bool
	act     [Players]bool
	start   int // player who asked to start, -1 for none
	restart int
}

func NewMailbox() *Mailbox {
	return &Mailbox{start: -1, restart: -1}
}

// Post queues an intent. Unknown players and intents are dropped and
// reported as false.
func (m *Mailbox) Post(player int, in Intent) bool {
	if player < 0 || player >= Players || !in.Valid() {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch in {
	case Act:
		m.act[player] = true
	case Start:
		m.start = player
	case Restart:
		m.restart = player
	default:
		m.move[player] = in
		m.moved[player] = true
	}
	return true
}

// Deliver drains the mailbox into s. Movement is delivered before lunges so
// a lunge in the same batch acts on the updated heading.
func (m *Mailbox) Deliver(s Sink) {
	m.mu.Lock()
	move, moved, act := m.move, m.moved, m.act
	start, restart := m.start, m.restart
	m.moved = [Players]bool{}
	m.act = [Players]bool{}
	m.start, m.restart = -1, -1
	m.mu.Unlock()

	if restart >= 0 {
		s.ApplyIntent(restart, Restart)
	}
	if start >= 0 {
		s.ApplyIntent(start, Start)
	}
	for p := 0; p < Players; p++ {
		if moved[p] {
			s.ApplyIntent(p, move[p])
		}
	}
	for p := 0; p < Players; p++ {
		if act[p] {
			s.ApplyIntent(p, Act)
		}
	}
}
