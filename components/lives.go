package components

type LivesData struct {
	Lives    int
	MaxLives int
}

// PlayerSlot is a seat at the table. Slot i always defends edge i.
type PlayerSlot struct {
	Edge   int
	Active bool // seated at match start
	Alive  bool
	LivesData
}

// LoseLife takes one life and reports whether the slot was eliminated by it.
func (s *PlayerSlot) LoseLife() bool {
	if !s.Alive {
		return false
	}
	if s.Lives > 0 {
		s.Lives--
	}
	if s.Lives <= 0 {
		s.Alive = false
		return true
	}
	return false
}
