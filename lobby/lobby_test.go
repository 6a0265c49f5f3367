package lobby

import (
	"testing"

	"github.com/automoto/pong-royale/shared/arenadata"
)

func testArenas() []arenadata.Preset {
	return []arenadata.Preset{
		{Name: "classic", Title: "Classic", FieldWidth: 960, FieldHeight: 720, Fever: true},
		{Name: "purist", FieldWidth: 800, FieldHeight: 800},
	}
}

func TestDefaultsAndCycling(t *testing.T) {
	l := New([]int{1, 2, 3, 4}, []int{1, 3, 5}, testArenas(), 4, 3)
	if l.PlayerCount() != 4 || l.Lives() != 3 {
		t.Fatalf("defaults = %d players %d lives", l.PlayerCount(), l.Lives())
	}
	l.CyclePlayers()
	if l.PlayerCount() != 1 {
		t.Fatalf("players wrapped to %d, want 1", l.PlayerCount())
	}
	l.CycleLives()
	l.CycleLives()
	if l.Lives() != 1 {
		t.Fatalf("lives wrapped to %d, want 1", l.Lives())
	}
}

func TestUnknownDefaultFallsBack(t *testing.T) {
	l := New([]int{2, 4}, []int{3}, nil, 7, 9)
	if l.PlayerCount() != 2 || l.Lives() != 3 {
		t.Fatalf("fallback = %d players %d lives", l.PlayerCount(), l.Lives())
	}
	if l.Arena().Name != "classic" {
		t.Fatalf("arena = %q, want default classic", l.Arena().Name)
	}
}

func TestArenaRules(t *testing.T) {
	l := New(nil, nil, testArenas(), 4, 3)
	if !l.SelectArena("purist") {
		t.Fatal("purist not found")
	}
	r := l.Rules()
	if r.Arena.FieldWidth != 800 || r.Fever.Enabled {
		t.Fatalf("rules = %+v fever %v", r.Arena, r.Fever.Enabled)
	}
	if GetArenaDisplayName(l.Arena()) != "purist" {
		t.Fatalf("display name = %q", GetArenaDisplayName(l.Arena()))
	}
	l.CycleArena()
	if GetArenaDisplayName(l.Arena()) != "Classic" {
		t.Fatalf("display name = %q", GetArenaDisplayName(l.Arena()))
	}
	if l.SelectArena("missing") {
		t.Fatal("missing arena selected")
	}
}

func TestSeatedNames(t *testing.T) {
	names := [4]string{"Top", "Right", "Bottom", "Left"}
	got := SeatedNames(2, names)
	if len(got) != 2 || got[0] != "Top" || got[1] != "Bottom" {
		t.Fatalf("seated = %v", got)
	}
	if GetPlayerCountName(1) != "Solo" || GetPlayerCountName(3) != "3 players" {
		t.Fatal("player count names")
	}
}
