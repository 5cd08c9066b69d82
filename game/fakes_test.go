package game

import (
	"testing"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

type rect struct {
	x, y, w, h int
	fill       types.Fill
}

type text struct {
	s    string
	x, y int
	fill types.Fill
}

// fakeSurface records every draw call
type fakeSurface struct {
	vw, vh int
	w, h   int
	fill   types.Fill
	rects  []rect
	texts  []text
	clears int
}

func (f *fakeSurface) Viewport() (int, int) { return f.vw, f.vh }
func (f *fakeSurface) SetSize(w, h int)     { f.w, f.h = w, h }
func (f *fakeSurface) Clear(x, y, w, h int) { f.clears++ }
func (f *fakeSurface) SetFill(fill types.Fill) {
	f.fill = fill
}
func (f *fakeSurface) FillRect(x, y, w, h int) {
	f.rects = append(f.rects, rect{x, y, w, h, f.fill})
}
func (f *fakeSurface) FillText(s string, x, y int, font types.Font) {
	f.texts = append(f.texts, text{s, x, y, f.fill})
}

func (f *fakeSurface) reset() {
	f.rects = nil
	f.texts = nil
}

func (f *fakeSurface) hasText(s string) bool {
	for _, t := range f.texts {
		if t.s == s {
			return true
		}
	}
	return false
}

type recorder struct {
	messages []string
	events   []Event
}

func (r *recorder) Message(msg string) { r.messages = append(r.messages, msg) }
func (r *recorder) event(ev Event)     { r.events = append(r.events, ev) }

func (r *recorder) last() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

func (r *recorder) saw(msg string) bool {
	for _, m := range r.messages {
		if m == msg {
			return true
		}
	}
	return false
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

type fakePrompter struct {
	calls  int
	submit func(string)
}

func (p *fakePrompter) PromptInitials(submit func(string)) {
	p.calls++
	p.submit = submit
}

type harness struct {
	g      *Game
	queue  *FrameQueue
	sf     *fakeSurface
	rec    *recorder
	prompt *fakePrompter
	scores *manager.ScoreManager
}

// newHarness builds a reset game on a 520x320 viewport, which gives the
// default 50x30 board a block size of 10.
func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		queue:  NewFrameQueue(),
		sf:     &fakeSurface{vw: 520, vh: 320},
		rec:    &recorder{},
		prompt: &fakePrompter{},
		scores: manager.NewMemoryScoreStore(),
	}
	h.g = New(Config{
		Surface:   h.sf,
		Scheduler: h.queue,
		Scores:    h.scores,
		Messages:  h.rec,
		Prompter:  h.prompt,
		Rand:      rand.New(rand.NewSource(42)),
	})
	h.g.Subscribe(h.rec.event)
	h.g.Reset()
	return h
}

// place puts the snake and target in a known configuration
func (h *harness) place(pos types.Point, tail []types.Point, delta, target types.Point) {
	s := &h.g.settings.Snake
	s.Position = pos
	s.Tail = append([]types.Point{}, tail...)
	s.Delta = delta
	h.g.settings.Board.BlockLocation = target
}
