// Package sound plays short generated tones for game events.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"snake-arcade/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type Kind int

const (
	Capture Kind = iota
	Crash
	Pop
)

type note struct {
	freq   float64
	length time.Duration
}

var tunes = map[Kind][]note{
	Capture: {{880, 60 * time.Millisecond}, {1320, 90 * time.Millisecond}},
	Crash:   {{220, 120 * time.Millisecond}, {147, 250 * time.Millisecond}},
	Pop:     {{660, 25 * time.Millisecond}},
}

// Effect builds the streamer for one sound. It ends after the last note.
func Effect(k Kind) (beep.Streamer, error) {
	notes, ok := tunes[k]
	if !ok {
		return nil, fmt.Errorf("no sound for kind %d", k)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.length), tone))
	}
	// quarter volume
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: math.Log2(0.25)}, nil
}

// Player mixes effects into the speaker. Until Init succeeds every Play is a
// no-op, so a machine without audio still runs the game.
type Player struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
	muted bool
}

func NewPlayer(muted bool) *Player {
	return &Player{mixer: &beep.Mixer{}, muted: muted}
}

func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// ToggleMute flips the mute state and returns the new one
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

func (p *Player) Play(k Kind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready || p.muted {
		return
	}
	s, err := Effect(k)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvent maps game events to sounds; it is meant for game.Subscribe
func (p *Player) HandleEvent(ev game.Event) {
	if k, ok := kindFor(ev.Kind); ok {
		p.Play(k)
	}
}

func kindFor(e game.EventKind) (Kind, bool) {
	switch e {
	case game.EventCapture:
		return Capture, true
	case game.EventCrash:
		return Crash, true
	case game.EventTailPop:
		return Pop, true
	}
	return 0, false
}
