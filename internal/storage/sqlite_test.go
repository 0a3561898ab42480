package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	solves := []Solve{
		{GameID: "net", Seed: "1", Width: 7, Height: 7, Moves: 40, Elapsed: 90 * time.Second},
		{GameID: "net", Seed: "2", Width: 7, Height: 7, Moves: 25, Elapsed: 60 * time.Second},
		{GameID: "net", Seed: "3", Width: 7, Height: 7, Moves: 25, Elapsed: 45 * time.Second},
		{GameID: "net_wrap", Seed: "4", Width: 13, Height: 11, Wrapping: true, BarrierProbability: 0.1, Moves: 120, Elapsed: 5 * time.Minute},
	}
	for _, sv := range solves {
		if _, err := store.SaveSolve(sv); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	best, err := store.BestSolves("net", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 solves, got %d", len(best))
	}

	// Fewest moves first, faster solve breaks the tie
	expectedSeeds := []string{"3", "2", "1"}
	for i, seed := range expectedSeeds {
		if best[i].Seed != seed {
			t.Errorf("rank %d: seed = %s, expected %s", i+1, best[i].Seed, seed)
		}
	}
	if best[0].Elapsed != 45*time.Second {
		t.Errorf("Elapsed = %v, expected 45s", best[0].Elapsed)
	}

	wrap, err := store.BestSolves("net_wrap", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(wrap) != 1 {
		t.Fatalf("Expected 1 wrapping solve, got %d", len(wrap))
	}
	got := wrap[0]
	if !got.Wrapping || got.Width != 13 || got.Height != 11 || got.BarrierProbability != 0.1 {
		t.Errorf("puzzle parameters not preserved: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreBestSolvesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveSolve(Solve{GameID: "net", Seed: "s", Width: 5, Height: 5, Moves: i + 1}); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	best, err := store.BestSolves("net", 5)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(best) != 5 {
		t.Errorf("Expected 5 solves, got %d", len(best))
	}

	best, err = store.BestSolves("net", 0)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(best) != 10 {
		t.Errorf("limit 0 should default to 10, got %d", len(best))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("net")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Solved != 0 || empty.BestMoves != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, moves := range []int{10, 20, 30} {
		sv := Solve{GameID: "net", Seed: "x", Width: 5, Height: 5, Moves: moves, Elapsed: time.Duration(moves) * time.Second}
		if _, err := store.SaveSolve(sv); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	stats, err := store.Stats("net")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Solved != 3 {
		t.Errorf("Solved = %d, expected 3", stats.Solved)
	}
	if stats.BestMoves != 10 {
		t.Errorf("BestMoves = %d, expected 10", stats.BestMoves)
	}
	if stats.AvgMoves != 20 {
		t.Errorf("AvgMoves = %g, expected 20", stats.AvgMoves)
	}
	if stats.BestTime != 10*time.Second {
		t.Errorf("BestTime = %v, expected 10s", stats.BestTime)
	}
}

func TestStoreClearSolves(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(Solve{GameID: "net", Seed: "1", Width: 5, Height: 5, Moves: 3})
	store.SaveSolve(Solve{GameID: "net_wrap", Seed: "2", Width: 5, Height: 5, Moves: 3})

	if err := store.ClearSolves("net"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	best, _ := store.BestSolves("net", 10)
	if len(best) != 0 {
		t.Errorf("Expected 0 solves after clear, got %d", len(best))
	}
	other, _ := store.BestSolves("net_wrap", 10)
	if len(other) != 1 {
		t.Errorf("ClearSolves should not touch other games, got %d", len(other))
	}
}
