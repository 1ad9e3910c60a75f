package journal

import (
	"os"
	"path/filepath"
	"testing"
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

func round(session string, num1, num2, chosen int) Round {
	return Round{
		SessionID: session,
		Num1:      num1,
		Num2:      num2,
		Answer:    num1 + num2,
		Chosen:    chosen,
		Lane:      1,
		Correct:   chosen == num1+num2,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRounds(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRound(round("a", 2, 3, 5)); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 round after reopen, got %d", n)
	}
}

func TestStoreSaveAndSessionRounds(t *testing.T) {
	store := openTestStore(t)

	want := []Round{
		round("s1", 3, 4, 7),
		round("s1", 5, 5, 10),
		round("s1", 2, 9, 12),
	}
	for _, r := range want {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
	if _, err := store.SaveRound(round("s2", 1, 1, 2)); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	got, err := store.SessionRounds("s1")
	if err != nil {
		t.Fatalf("SessionRounds() failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d rounds, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Num1 != want[i].Num1 || got[i].Num2 != want[i].Num2 || got[i].Chosen != want[i].Chosen || got[i].Correct != want[i].Correct {
			t.Errorf("round %d: got %+v, want %+v", i, got[i], want[i])
		}
		if got[i].CreatedAt.IsZero() {
			t.Errorf("round %d has no timestamp", i)
		}
	}
}

func TestStoreRecentMisses(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(round("s1", 3, 4, 7))
	store.SaveRound(round("s1", 6, 7, 12))
	store.SaveRound(round("s2", 8, 8, 16))
	store.SaveRound(round("s2", 9, 1, 11))

	misses, err := store.RecentMisses(10)
	if err != nil {
		t.Fatalf("RecentMisses() failed: %v", err)
	}
	if len(misses) != 2 {
		t.Fatalf("Expected 2 misses, got %d", len(misses))
	}
	// Newest first
	if misses[0].Num1 != 9 || misses[1].Num1 != 6 {
		t.Errorf("Misses not in expected order: %+v", misses)
	}
	for _, m := range misses {
		if m.Correct {
			t.Errorf("correct round returned as a miss: %+v", m)
		}
	}

	limited, err := store.RecentMisses(1)
	if err != nil {
		t.Fatalf("RecentMisses() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 miss with limit, got %d", len(limited))
	}
}

func TestStoreMissStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(round("s1", 7, 8, 14))
	store.SaveRound(round("s2", 7, 8, 16))
	store.SaveRound(round("s3", 7, 8, 15))
	store.SaveRound(round("s1", 2, 2, 5))
	store.SaveRound(round("s1", 1, 1, 2))

	stats, err := store.MissStats(10)
	if err != nil {
		t.Fatalf("MissStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 missed problems, got %d: %+v", len(stats), stats)
	}

	top := stats[0]
	if top.Num1 != 7 || top.Num2 != 8 || top.Attempts != 3 || top.Misses != 2 {
		t.Errorf("Unexpected top stats: %+v", top)
	}
	if rate := top.MissRate(); rate < 0.66 || rate > 0.67 {
		t.Errorf("MissRate() = %v, want 2/3", rate)
	}
	if stats[1].Num1 != 2 || stats[1].Misses != 1 {
		t.Errorf("Unexpected second stats: %+v", stats[1])
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(round("s1", 1, 2, 3))
	store.SaveRound(round("s1", 1, 2, 4))

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", n)
	}
}

func TestMissRateEmpty(t *testing.T) {
	if rate := (ProblemStats{}).MissRate(); rate != 0 {
		t.Errorf("MissRate() on empty stats = %v, want 0", rate)
	}
}
