package tui

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-net/internal/storage"
)

func TestSolveSizes(t *testing.T) {
	sizes := SolveSizes([]storage.Solve{
		{Width: 9, Height: 9},
		{Width: 5, Height: 5},
		{Width: 13, Height: 11},
		{Width: 5, Height: 5},
		{Width: 7, Height: 7},
	})
	want := []string{"5x5", "7x7", "9x9", "13x11"}
	if !slices.Equal(sizes, want) {
		t.Errorf("SolveSizes() = %v, want %v", sizes, want)
	}

	if got := SolveSizes(nil); len(got) != 0 {
		t.Errorf("SolveSizes(nil) = %v, want empty", got)
	}
}

func TestScoreboardSizeFilter(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, sv := range []storage.Solve{
		{GameID: "net", Seed: "1", Width: 5, Height: 5, Moves: 10},
		{GameID: "net", Seed: "2", Width: 7, Height: 7, Moves: 20},
		{GameID: "net", Seed: "3", Width: 5, Height: 5, Moves: 30},
	} {
		if _, err := store.SaveSolve(sv); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 100, 40)
	for i, g := range m.games {
		if g.ID == "net" {
			m.gameCursor = i
		}
	}
	m.loadSolves("net")

	if got := len(m.visibleSolves()); got != 3 {
		t.Fatalf("unfiltered solves = %d, want 3", got)
	}

	// First press narrows to the smallest size
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = next.(ScoreboardModel)
	if got := len(m.visibleSolves()); got != 2 {
		t.Errorf("5x5 solves = %d, want 2", got)
	}
	if !strings.HasSuffix(m.title(), "5x5") {
		t.Errorf("title = %q, want size suffix", m.title())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = next.(ScoreboardModel)
	if got := len(m.visibleSolves()); got != 1 {
		t.Errorf("7x7 solves = %d, want 1", got)
	}

	// Wraps back to all sizes
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = next.(ScoreboardModel)
	if m.sizeFilter != 0 || len(m.visibleSolves()) != 3 {
		t.Errorf("filter = %d with %d solves, want all 3", m.sizeFilter, len(m.visibleSolves()))
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
