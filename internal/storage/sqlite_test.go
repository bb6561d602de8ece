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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	// Migrations are idempotent
	store.Close()
	again, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	again.Close()
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	sessions := []Session{
		{GameID: "breakout", Layout: "classic", Ticks: 600, Duration: 10 * time.Second, BricksTotal: 56, BricksDestroyed: 12},
		{GameID: "breakout", Layout: "pyramid", Ticks: 1200, Duration: 20 * time.Second, BricksTotal: 32, BricksDestroyed: 32},
		{GameID: "breakout_attract", Layout: "classic", Ticks: 300, BricksTotal: 56, BricksDestroyed: 3},
	}
	for _, s := range sessions {
		if _, err := store.SaveSession(s); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.RecentSessions("breakout", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 breakout sessions, got %d", len(got))
	}

	// Newest first
	if got[0].Layout != "pyramid" || got[1].Layout != "classic" {
		t.Errorf("Sessions not newest first: %+v", got)
	}
	if got[0].Duration != 20*time.Second {
		t.Errorf("Duration = %v, want 20s", got[0].Duration)
	}
	if !got[0].Cleared() || got[1].Cleared() {
		t.Errorf("Cleared flags wrong: %v %v", got[0].Cleared(), got[1].Cleared())
	}

	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 sessions across games, got %d", len(all))
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveSession(Session{GameID: "breakout", Layout: "classic", Ticks: (i + 1) * 100})
	}

	got, err := store.RecentSessions("breakout", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(got))
	}
	if got[0].Ticks != 500 || got[2].Ticks != 300 {
		t.Errorf("Sessions not in expected order: %+v", got)
	}
}

func TestStoreBestClear(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestClear("breakout")
	if err != nil {
		t.Fatalf("BestClear() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best clear on empty store, got %+v", best)
	}

	store.SaveSession(Session{GameID: "breakout", Layout: "classic", Ticks: 100, BricksTotal: 56, BricksDestroyed: 40})
	store.SaveSession(Session{GameID: "breakout", Layout: "classic", Ticks: 9000, BricksTotal: 56, BricksDestroyed: 56})
	store.SaveSession(Session{GameID: "breakout", Layout: "diamond", Ticks: 7000, BricksTotal: 32, BricksDestroyed: 32})
	store.SaveSession(Session{GameID: "breakout_attract", Layout: "classic", Ticks: 10, BricksTotal: 56, BricksDestroyed: 56})

	best, err = store.BestClear("breakout")
	if err != nil {
		t.Fatalf("BestClear() failed: %v", err)
	}
	if best == nil || best.Ticks != 7000 || best.Layout != "diamond" {
		t.Errorf("BestClear = %+v, want the 7000 tick diamond clear", best)
	}
}

func TestStoreClearSessionsAndStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{GameID: "breakout", Layout: "classic", Ticks: 100, BricksTotal: 56, BricksDestroyed: 56})
	store.SaveSession(Session{GameID: "breakout", Layout: "classic", Ticks: 200, BricksTotal: 56, BricksDestroyed: 10})
	store.SaveSession(Session{GameID: "breakout_attract", Layout: "classic", Ticks: 300})

	stats, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.Clears != 1 || stats.BricksDestroyed != 66 || stats.TotalTicks != 300 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	if err := store.ClearSessions("breakout"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	left, _ := store.RecentSessions("breakout", 10)
	if len(left) != 0 {
		t.Errorf("Expected 0 breakout sessions after clear, got %d", len(left))
	}
	attract, _ := store.RecentSessions("breakout_attract", 10)
	if len(attract) != 1 {
		t.Error("Attract sessions should not be affected by clearing breakout")
	}

	empty, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() on empty failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}
