package manager

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func checkTable(t *testing.T, scores []ScoreEntry) {
	t.Helper()
	if len(scores) == 0 || len(scores) > 5 {
		t.Fatalf("table has %d entries", len(scores))
	}
	for i := 1; i < len(scores); i++ {
		if scores[i-1].Score < scores[i].Score {
			t.Fatalf("table not descending: %v", scores)
		}
	}
}

func TestNormalizePlayer(t *testing.T) {
	tests := map[string]string{
		"ab":     "AB-",
		"":       "---",
		"zorro":  "ZOR",
		"x":      "X--",
		"éclair": "ÉCL",
	}
	for in, want := range tests {
		if got := NormalizePlayer(in); got != want {
			t.Errorf("NormalizePlayer(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultTable(t *testing.T) {
	sm := NewMemoryScoreStore()
	scores := sm.GetScores()
	checkTable(t, scores)
	if len(scores) != 5 || scores[0].Score != 1000 || scores[4].Score != 200 {
		t.Errorf("defaults = %v", scores)
	}
	for _, s := range scores {
		if s.Player != "TLS" {
			t.Errorf("default player %q", s.Player)
		}
	}
}

func TestAddScore(t *testing.T) {
	sm := NewMemoryScoreStore()
	sm.AddScore("ab", 1500)

	scores := sm.GetScores()
	checkTable(t, scores)
	if len(scores) != 5 {
		t.Fatalf("len = %d", len(scores))
	}
	if scores[0] != (ScoreEntry{Player: "AB-", Score: 1500}) {
		t.Errorf("top entry = %+v", scores[0])
	}
	if scores[4].Score != 400 {
		t.Errorf("lowest entry should have been pushed out: %v", scores)
	}

	sm.AddScore("mid", 700)
	scores = sm.GetScores()
	checkTable(t, scores)
	if scores[3] != (ScoreEntry{Player: "MID", Score: 700}) {
		t.Errorf("rank 4 = %+v, table %v", scores[3], scores)
	}
}

func TestIsHighScore(t *testing.T) {
	sm := NewMemoryScoreStore()
	if sm.IsHighScore(199) {
		t.Error("199 should not beat 200")
	}
	if sm.IsHighScore(200) {
		t.Error("a tie is not a high score")
	}
	if !sm.IsHighScore(201) {
		t.Error("201 should beat 200")
	}
}

func TestCorruptBlobRestoresDefaults(t *testing.T) {
	blobs := []string{
		`not json`,
		`{"player":"ABC","score":5}`,
		`[]`,
		`[1,2,3]`,
		`[{"player":"ABC","score":"lots"}]`,
	}
	for _, raw := range blobs {
		mb := &memoryBlob{data: []byte(raw)}
		sm := newScoreManager(mb, false)
		scores := sm.GetScores()
		if len(scores) != 5 || scores[0].Score != 1000 {
			t.Errorf("%s: got %v, want defaults", raw, scores)
		}
		if _, err := decodeScores(mb.data); err != nil {
			t.Errorf("%s: defaults were not written back: %v", raw, err)
		}
	}
}

func TestStringScoresAccepted(t *testing.T) {
	mb := &memoryBlob{data: []byte(`[{"player":"TLS","score":"800"},{"player":"BOB","score":"1200"}]`)}
	sm := newScoreManager(mb, false)
	scores := sm.GetScores()
	if len(scores) != 2 || scores[0].Player != "BOB" || scores[0].Score != 1200 {
		t.Errorf("got %v", scores)
	}
	// Short tables compare against their last entry.
	if sm.IsHighScore(800) || !sm.IsHighScore(801) {
		t.Error("short table threshold should be 800")
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	sm := OpenScoreStore(dir)
	if !sm.Persistent() {
		t.Fatal("writable dir should select the file backend")
	}
	sm.AddScore("joe", 900)

	reopened := OpenScoreStore(dir)
	scores := reopened.GetScores()
	checkTable(t, scores)
	found := false
	for _, s := range scores {
		if s == (ScoreEntry{Player: "JOE", Score: 900}) {
			found = true
		}
	}
	if !found {
		t.Errorf("JOE 900 missing after reopen: %v", scores)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ScoresFile)
	if err := os.WriteFile(path, []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}
	sm := OpenScoreStore(dir)
	if got := sm.GetScores(); got[0].Score != 1000 {
		t.Errorf("got %v, want defaults", got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := decodeScores(data); err != nil {
		t.Errorf("file not repaired: %v", err)
	}
}

func TestUnusableDirFallsBackToMemory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain-file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	sm := OpenScoreStore(filepath.Join(file, "scores"))
	if sm.Persistent() {
		t.Fatal("expected memory backend")
	}
	sm.AddScore("mem", 5000)
	if got := sm.GetScores()[0]; got.Player != "MEM" {
		t.Errorf("memory backend lost the score: %+v", got)
	}
}

func TestHistory(t *testing.T) {
	dir := t.TempDir()
	hm := OpenHistory(dir)
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	if rec := hm.Finish(10, 1, "Normal", start); rec != nil {
		t.Error("Finish without Begin recorded a game")
	}

	hm.Begin(start)
	rec := hm.Finish(300, 4, "Hard", start.Add(90*time.Second))
	if rec == nil || rec.ID == "" || rec.Duration != 90 {
		t.Fatalf("record = %+v", rec)
	}
	hm.Begin(start)
	hm.Finish(100, 1, "Easy", start.Add(time.Second))

	if hm.GamesPlayed() != 2 || hm.BestScore() != 300 || hm.AverageScore() != 200 {
		t.Errorf("played %d best %d avg %v", hm.GamesPlayed(), hm.BestScore(), hm.AverageScore())
	}

	reopened := OpenHistory(dir)
	recs := reopened.Records()
	if len(recs) != 2 || recs[0].Difficulty != "Hard" || recs[1].Score != 100 {
		t.Errorf("reloaded %v", recs)
	}
}

func TestHistoryCap(t *testing.T) {
	hm := OpenHistory("")
	now := time.Now()
	for i := 0; i < MaxHistory+10; i++ {
		hm.Begin(now)
		hm.Finish(i, 0, "Normal", now)
	}
	recs := hm.Records()
	if len(recs) != MaxHistory || recs[0].Score != 10 {
		t.Errorf("len %d first %d", len(recs), recs[0].Score)
	}
}
