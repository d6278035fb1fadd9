package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickpong/internal/config"
	"github.com/vovakirdan/brickpong/internal/core"
	"github.com/vovakirdan/brickpong/internal/games/brickpong"
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

// tickingClock returns a clock that advances one second per call.
func tickingClock() func() time.Time {
	now := time.Unix(1700000000, 0)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRounds(t *testing.T) {
	store := openTestStore(t)
	store.now = tickingClock()

	rounds := []struct {
		outcome         string
		human, computer int
	}{
		{"lose", 0, 1},
		{"win", 3, 1},
		{"tie", 2, 2},
		{"win", 1, 0},
	}
	ids := make(map[string]bool)
	for _, r := range rounds {
		id, err := store.SaveRound(r.outcome, r.human, r.computer, "normal")
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
		ids[id] = true
	}
	if len(ids) != len(rounds) {
		t.Errorf("SaveRound() returned %d distinct IDs, expected %d", len(ids), len(rounds))
	}

	recent, err := store.RecentRounds(3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("len(RecentRounds(3)) = %d, expected 3", len(recent))
	}
	if recent[0].Outcome != "win" || recent[0].HumanScore != 1 {
		t.Errorf("newest round = %+v, expected the 1-0 win", recent[0])
	}
	if recent[2].Outcome != "win" || recent[2].HumanScore != 3 {
		t.Errorf("oldest returned round = %+v, expected the 3-1 win", recent[2])
	}
	if !recent[0].CreatedAt.After(recent[1].CreatedAt) {
		t.Error("rounds should be ordered newest first")
	}

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	expected := Stats{Rounds: 4, Wins: 2, Losses: 1, Ties: 1}
	if st != expected {
		t.Errorf("Stats() = %+v, expected %+v", st, expected)
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("Stats() = %+v, expected zero", st)
	}
}

func TestStoreSnapshots(t *testing.T) {
	store := openTestStore(t)
	store.now = tickingClock()

	if err := store.SaveSnapshot("quick", []byte{1, 2, 3}, "paused"); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}
	if err := store.SaveSnapshot("other", []byte{9}, "running"); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}
	if err := store.SaveSnapshot("quick", []byte{4, 5}, "running"); err != nil {
		t.Fatalf("SaveSnapshot() overwrite failed: %v", err)
	}

	data, err := store.LoadSnapshot("quick")
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if len(data) != 2 || data[0] != 4 {
		t.Errorf("LoadSnapshot() = %v, expected the overwritten data", data)
	}

	infos, err := store.ListSnapshots()
	if err != nil {
		t.Fatalf("ListSnapshots() failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("len(ListSnapshots()) = %d, expected 2", len(infos))
	}
	if infos[0].Slot != "quick" || infos[0].State != "running" || infos[0].Size != 2 {
		t.Errorf("ListSnapshots()[0] = %+v, expected the updated quick slot first", infos[0])
	}

	if err := store.DeleteSnapshot("quick"); err != nil {
		t.Fatalf("DeleteSnapshot() failed: %v", err)
	}
	if _, err := store.LoadSnapshot("quick"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("LoadSnapshot() after delete error = %v, expected ErrSnapshotNotFound", err)
	}
	if err := store.DeleteSnapshot("quick"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("DeleteSnapshot() twice error = %v, expected ErrSnapshotNotFound", err)
	}
	if err := store.SaveSnapshot("", []byte{1}, "ready"); err == nil {
		t.Error("SaveSnapshot() with an empty slot should fail")
	}
}

func TestRoundRecorder(t *testing.T) {
	store := openTestStore(t)
	rec := NewRoundRecorder(store, "hard", log.New(os.Stderr))

	rec.StatusChanged(brickpong.StatusEvent{Key: brickpong.StatusPause, Visible: true})
	rec.ScoreChanged(brickpong.ScoreEvent{Text: "0    1", Computer: 1})
	rec.StatusChanged(brickpong.StatusEvent{
		Key:           brickpong.StatusLose,
		Visible:       true,
		Outcome:       brickpong.OutcomeLose,
		ComputerScore: 1,
	})

	if rec.Saved() != 1 {
		t.Errorf("Saved() = %d, expected 1", rec.Saved())
	}

	recent, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("len(RecentRounds()) = %d, expected 1", len(recent))
	}
	r := recent[0]
	if r.Outcome != "lose" || r.HumanScore != 0 || r.ComputerScore != 1 || r.Difficulty != "hard" {
		t.Errorf("recorded round = %+v, expected a 0-1 loss on hard", r)
	}
}

func TestRoundRecorderWithSimulation(t *testing.T) {
	store := openTestStore(t)
	rec := NewRoundRecorder(store, "normal", nil)

	cfg := config.DefaultBrickPongConfig()
	cfg.Bricks.Enabled = false
	sim := brickpong.NewSimulation(cfg, core.RuntimeConfig{Width: 800, Height: 600}, brickpong.WithListener(rec))
	sim.RequestResume()
	// Move the human paddle out of the serve's path so the computer scores.
	sim.MovePaddle(brickpong.Human, -1000)
	for i := 0; i < 200 && rec.Saved() == 0; i++ {
		sim.Tick()
	}

	if rec.Saved() == 0 {
		t.Fatal("expected an unattended round to end and be recorded")
	}
	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Rounds != rec.Saved() {
		t.Errorf("Stats().Rounds = %d, expected %d", st.Rounds, rec.Saved())
	}
}
