package stats

import (
	"errors"
	"testing"
)

type fakeResult struct {
	winner int
	ready  bool
}

func (f *fakeResult) ConsumeResult() (int, bool) {
	if !f.ready {
		return -1, false
	}
	f.ready = false
	return f.winner, true
}

type failingItems struct{}

func (failingItems) LoadItem(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingItems) SaveItem(string, []byte) error { return errors.New("disk gone") }

func TestRecordPersists(t *testing.T) {
	items := newMemoryItems()
	s := newStore(items)

	if err := s.Record(2); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record(2); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record(-1); err != nil {
		t.Fatalf("Record draw: %v", err)
	}

	reopened := newStore(items).Totals()
	if reopened.Wins[2] != 2 || reopened.Draws != 1 || reopened.Matches != 3 {
		t.Fatalf("reloaded totals = %+v", reopened)
	}
}

func TestCollectOnce(t *testing.T) {
	s := newStore(newMemoryItems())
	src := &fakeResult{winner: 1, ready: true}

	if !s.Collect(src) {
		t.Fatal("first collect should record")
	}
	if s.Collect(src) {
		t.Fatal("result recorded twice")
	}
	if got := s.Totals().Wins[1]; got != 1 {
		t.Fatalf("wins[1] = %d, want 1", got)
	}
}

func TestStoreSurvivesBrokenBackend(t *testing.T) {
	s := newStore(failingItems{})
	if err := s.Record(0); err == nil {
		t.Fatal("expected save error")
	}
	if got := s.Totals().Wins[0]; got != 1 {
		t.Fatalf("in-memory totals should still count the win, got %d", got)
	}
}

func TestReset(t *testing.T) {
	items := newMemoryItems()
	s := newStore(items)
	_ = s.Record(3)
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := newStore(items).Totals(); got != (Totals{}) {
		t.Fatalf("totals after reset = %+v", got)
	}
}
