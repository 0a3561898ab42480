package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-net/internal/core"
	"github.com/vovakirdan/tui-net/internal/games/netgame"
	"github.com/vovakirdan/tui-net/internal/registry"
	"github.com/vovakirdan/tui-net/internal/storage"
)

func TestTicksToDuration(t *testing.T) {
	tests := []struct {
		ticks    uint64
		rate     int
		expected time.Duration
	}{
		{0, 30, 0},
		{30, 30, time.Second},
		{45, 30, 1500 * time.Millisecond},
		{90, 0, 0},
	}

	for _, tt := range tests {
		if got := ticksToDuration(tt.ticks, tt.rate); got != tt.expected {
			t.Errorf("ticksToDuration(%d, %d) = %v, want %v", tt.ticks, tt.rate, got, tt.expected)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{75 * time.Second, "1:15"},
		{61*time.Minute + 500*time.Millisecond, "61:01"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.expected {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.expected)
		}
	}
}

func TestSolveRows(t *testing.T) {
	rows := SolveRows([]storage.Solve{
		{Seed: "77", Width: 7, Height: 5, Moves: 12, Elapsed: 65 * time.Second},
	})
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	want := []string{"#1", "12", "1:05", "7x5", "77"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("column %d = %q, want %q", i, rows[0][i], w)
		}
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	netgame.SetPreset(1) // Tiny board, fits the test screen
	game, err := registry.Create("net")
	if err != nil {
		t.Fatal(err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 30, Seed: "model"}
	return NewModel(game, nil, cfg)
}

func TestModelRestartPicksNewSeed(t *testing.T) {
	m := newTestModel(t)
	if got := m.gameState.Puzzle.Seed; got != "model" {
		t.Fatalf("seed = %q, want model", got)
	}

	next, _ := m.Update(runeKey('r'))
	next, _ = next.Update(TickMsg(time.Now()))
	m = next.(Model)

	if m.gameState.Puzzle.Seed == "model" {
		t.Error("restart should generate a puzzle with a fresh seed")
	}
	if m.gameState.Moves != 0 {
		t.Errorf("moves = %d, want 0", m.gameState.Moves)
	}
}

func TestModelCountsMoves(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(runeKey('z'))
	next, _ = next.Update(TickMsg(time.Now()))
	m = next.(Model)

	if m.gameState.Moves != 1 {
		t.Errorf("moves = %d, want 1", m.gameState.Moves)
	}
	if !strings.Contains(m.View(), "Moves: 1") {
		t.Error("view should show the move count")
	}
}

func TestModelBack(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("back should end the program")
	}
	if !next.(Model).WantsBack() {
		t.Error("model should report going back")
	}
}

func TestModelResizeKeepsPuzzle(t *testing.T) {
	m := newTestModel(t)
	seed := m.gameState.Puzzle.Seed

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	next, _ = next.Update(TickMsg(time.Now()))
	m = next.(Model)

	if m.gameState.Puzzle.Seed != seed {
		t.Error("resize should keep the puzzle")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestSolveRecord(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m := newTestModel(t)
	m.store = store
	m.gameState.Moves = 9
	m.gameState.Ticks = 60

	rec := m.solveRecord()
	if rec.GameID != "net" || rec.Seed != "model" || rec.Moves != 9 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Elapsed != 2*time.Second {
		t.Errorf("elapsed = %v, want 2s", rec.Elapsed)
	}
	if rec.Width != 5 || rec.Height != 5 {
		t.Errorf("size = %dx%d, want 5x5", rec.Width, rec.Height)
	}

	if _, err := store.SaveSolve(rec); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
}
