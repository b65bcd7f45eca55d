package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

func mustSave(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.RecordRun(Run{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, "walls", 42)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("walls")
	if err != nil || high != 42 {
		t.Errorf("HighScore() after reopen = (%d, %v), expected 42", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "walls", 100)
	mustSave(t, store, "walls", 50)
	mustSave(t, store, "walls", 200)
	mustSave(t, store, "dodger", 500)

	scores, err := store.TopScores("walls", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	for _, s := range scores {
		if _, err := uuid.Parse(s.RunID); err != nil {
			t.Errorf("run id %q is not a UUID", s.RunID)
		}
	}

	dodgerScores, err := store.TopScores("dodger", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(dodgerScores) != 1 {
		t.Errorf("Expected 1 dodger score, got %d", len(dodgerScores))
	}
}

func TestStoreRecordRun(t *testing.T) {
	store := openTestStore(t)

	run := Run{
		RunID:    uuid.New(),
		GameID:   "skyjumper",
		Player:   "alice",
		Score:    17,
		Duration: 95 * time.Second,
	}
	if _, err := store.RecordRun(run); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	if _, err := store.RecordRun(run); err == nil {
		t.Error("recording the same run twice should fail")
	}

	scores, err := store.TopScores("skyjumper", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}

	got := scores[0]
	if got.RunID != run.RunID.String() || got.Player != "alice" || got.Score != 17 || got.Duration != 95*time.Second {
		t.Errorf("stored run = %+v, expected %+v", got, run)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("test", 0)
	if err != nil || len(all) != 5 {
		t.Errorf("TopScores(0) = (%d entries, %v), expected 5", len(all), err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("walls")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "walls", 100)
	mustSave(t, store, "walls", 300)
	mustSave(t, store, "walls", 200)

	high, err = store.HighScore("walls")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "walls", 100)
	mustSave(t, store, "walls", 200)
	mustSave(t, store, "dodger", 300)

	// Clear only walls scores
	if err := store.ClearScores("walls"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	wallsScores, _ := store.TopScores("walls", 10)
	if len(wallsScores) != 0 {
		t.Errorf("Expected 0 walls scores after clear, got %d", len(wallsScores))
	}

	dodgerScores, _ := store.TopScores("dodger", 10)
	if len(dodgerScores) != 1 {
		t.Errorf("Dodger scores should not be affected by clearing walls")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, "test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "dodger", Score: 300, Duration: 5 * time.Second},
		{GameID: "dodger", Score: 600, Duration: 10 * time.Second},
		{GameID: "walls", Score: 7, Duration: 20 * time.Second},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats("dodger")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 600 || stats.TotalScore != 900 || stats.AvgScore != 450 {
		t.Errorf("unexpected dodger stats: %+v", stats)
	}
	if stats.LongestRun != 10*time.Second || stats.TotalTime != 15*time.Second {
		t.Errorf("unexpected dodger durations: longest=%v total=%v", stats.LongestRun, stats.TotalTime)
	}

	empty, err := store.GetGameStats("skyjumper")
	if err != nil {
		t.Fatalf("GetGameStats() for an unplayed game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unplayed game should have empty stats, got %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["walls"] == nil || all["walls"].HighScore != 7 {
		t.Errorf("unexpected all-games stats: %+v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
