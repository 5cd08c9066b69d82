package game

import (
	"testing"

	"snake-arcade/game/types"
)

func TestShouldPop(t *testing.T) {
	tests := []struct {
		ts      float64
		tailLen int
		want    bool
	}{
		{4, 3, true},
		{5, 3, false},
		{5.9, 3, false},
		{6.2, 19, true},
		{5, 20, true},
		{5, 21, false},
		{8, 21, false},
		{5, 25, false},
		{8, 25, true},
	}
	for _, tt := range tests {
		if got := shouldPop(tt.ts, tt.tailLen); got != tt.want {
			t.Errorf("shouldPop(%v, %d) = %v, want %v", tt.ts, tt.tailLen, got, tt.want)
		}
	}
}

// crash drives the snake into the left wall with the given tail length
func (h *harness) crash(tailLen int) {
	tail := make([]types.Point, tailLen)
	for i := range tail {
		tail[i] = types.Point{X: i + 1, Y: 5}
	}
	h.place(types.Point{X: 0, Y: 5}, tail, types.Left, types.Point{X: 20, Y: 20})
	h.g.MoveSnake()
}

func TestEndgameLowScore(t *testing.T) {
	h := newHarness(t)
	h.crash(3)
	if !h.g.Over() || !h.g.EndgameActive() {
		t.Fatal("endgame not started")
	}

	h.queue.Fire(1001)
	if n := len(h.g.Settings().Snake.Tail); n != 3 {
		t.Errorf("odd frame popped: tail %d", n)
	}
	for ts := 1002.0; len(h.g.Settings().Snake.Tail) > 0 && ts < 1100; ts += 2 {
		h.queue.Fire(ts)
	}
	if h.rec.count(EventTailPop) != 3 {
		t.Errorf("%d pops, want 3", h.rec.count(EventTailPop))
	}

	h.sf.reset()
	h.queue.Fire(1200)

	if h.prompt.calls != 0 {
		t.Error("prompted for a score of 0")
	}
	if h.g.EndgameActive() || h.rec.count(EventEndgameDone) != 1 {
		t.Errorf("active=%v done=%d", h.g.EndgameActive(), h.rec.count(EventEndgameDone))
	}
	if !h.sf.hasText("TLS - 1000") || !h.sf.hasText("TLS - 200") {
		t.Errorf("high scores not drawn: %+v", h.sf.texts)
	}
	if !h.sf.hasText("GAME OVER") {
		t.Error("banner missing")
	}
	if h.queue.Pending() != 0 {
		t.Errorf("%d frames pending after the endgame", h.queue.Pending())
	}
}

func TestEndgameHighScorePrompts(t *testing.T) {
	h := newHarness(t)
	h.g.settings.Score = 5000
	h.crash(0)

	h.queue.Fire(1)
	if h.prompt.calls != 1 {
		t.Fatalf("prompted %d times", h.prompt.calls)
	}
	if !h.g.EndgameActive() || h.rec.count(EventEndgameDone) != 0 {
		t.Fatal("endgame finished before the initials were entered")
	}

	// a resize while the prompt is open redraws without asking again
	h.g.Resize()
	h.queue.Fire(2)
	h.queue.Fire(3)
	if h.prompt.calls != 1 {
		t.Errorf("prompted %d times", h.prompt.calls)
	}

	h.sf.reset()
	h.prompt.submit("zed")
	h.prompt.submit("abc")

	top := h.scores.GetScores()[0]
	if top.Player != "ZED" || top.Score != 5000 {
		t.Errorf("top score %+v", top)
	}
	if !h.sf.hasText("ZED - 5000") {
		t.Error("new table not drawn")
	}
	if h.g.EndgameActive() || h.rec.count(EventEndgameDone) != 1 {
		t.Errorf("active=%v done=%d", h.g.EndgameActive(), h.rec.count(EventEndgameDone))
	}
}

func TestResetDuringPrompt(t *testing.T) {
	h := newHarness(t)
	h.g.settings.Score = 900
	h.crash(0)
	h.queue.Fire(1)

	h.g.Reset()
	h.prompt.submit("new")

	if h.scores.GetScores()[1].Player != "NEW" {
		t.Errorf("score not recorded: %+v", h.scores.GetScores())
	}
	if h.rec.count(EventEndgameDone) != 0 {
		t.Error("stale prompt finished the new game's endgame")
	}
	if h.g.Over() || !h.g.Running() {
		t.Error("reset game not running")
	}
}

func TestResetDuringExplosion(t *testing.T) {
	h := newHarness(t)
	h.crash(4)
	h.queue.Fire(2)

	h.g.Reset()
	if h.g.EndgameActive() {
		t.Fatal("endgame survived a reset")
	}
	if h.queue.Pending() != 1 {
		t.Errorf("%d frames pending, want the loop frame", h.queue.Pending())
	}
	pops := h.rec.count(EventTailPop)
	h.queue.Fire(4)
	if h.rec.count(EventTailPop) != pops {
		t.Error("endgame kept popping after reset")
	}
}

func TestResizeDuringExplosionContinues(t *testing.T) {
	h := newHarness(t)
	h.crash(3)

	h.g.Resize()
	if h.queue.Pending() != 1 {
		t.Fatalf("%d frames pending", h.queue.Pending())
	}
	h.queue.Fire(1002)
	if h.rec.count(EventTailPop) != 0 {
		t.Fatal("redraw frame popped the tail")
	}
	h.queue.Fire(1004)
	if h.rec.count(EventTailPop) != 1 {
		t.Errorf("%d pops after the redraw, want 1", h.rec.count(EventTailPop))
	}
}
