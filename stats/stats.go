// Package stats keeps win totals across sessions. The engine knows nothing
// about it; the outer loop hands finished results over.
package stats

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata"
)

const (
	appName   = "pong-royale"
	totalsKey = "totals"
	slots     = 4
)

// Totals is the persisted record.
type Totals struct {
	Wins    [slots]int `json:"wins"`
	Draws   int        `json:"draws"`
	Matches int        `json:"matches"`
}

// itemStore is the part of gdata.Manager the store needs.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// ResultSource yields a finished match's winner once. The engine
// implements it.
type ResultSource interface {
	ConsumeResult() (winner int, ok bool)
}

type Store struct {
	mu     sync.Mutex
	items  itemStore
	totals Totals
}

// Open loads totals from the platform data directory. When persistence is
// unavailable the store keeps totals in memory for this session.
func Open() *Store {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[stats] Warning: Could not initialize persistence: %v", err)
		return newStore(newMemoryItems())
	}
	return newStore(m)
}

func newStore(items itemStore) *Store {
	s := &Store{items: items}
	if err := s.load(); err != nil {
		log.Printf("[stats] Warning: %v", err)
	}
	return s
}

func (s *Store) load() error {
	data, err := s.items.LoadItem(totalsKey)
	if err != nil {
		return fmt.Errorf("load totals: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	var t Totals
	if err := json.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse totals: %w", err)
	}
	s.totals = t
	return nil
}

// Totals returns a copy of the current record.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

// Record counts one finished match. A winner outside 0..3 is a draw.
func (s *Store) Record(winner int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totals.Matches++
	if winner >= 0 && winner < slots {
		s.totals.Wins[winner]++
	} else {
		s.totals.Draws++
	}

	data, err := json.Marshal(s.totals)
	if err != nil {
		return fmt.Errorf("serialize totals: %w", err)
	}
	if err := s.items.SaveItem(totalsKey, data); err != nil {
		return fmt.Errorf("save totals: %w", err)
	}
	return nil
}

// Collect records the source's result if one is waiting and reports
// whether it did.
func (s *Store) Collect(src ResultSource) bool {
	winner, ok := src.ConsumeResult()
	if !ok {
		return false
	}
	if err := s.Record(winner); err != nil {
		log.Printf("[stats] Warning: %v", err)
	}
	return true
}

// Reset clears every total.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totals = Totals{}
	if err := s.items.SaveItem(totalsKey, nil); err != nil {
		return fmt.Errorf("clear totals: %w", err)
	}
	return nil
}

type memoryItems struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryItems() *memoryItems {
	return &memoryItems{items: map[string][]byte{}}
}

func (m *memoryItems) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[key], nil
}

func (m *memoryItems) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte(nil), data...)
	return nil
}
