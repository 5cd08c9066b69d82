package game

import (
	"math"

	"snake-arcade/game/types"
)

// popWindow bounds the pop cadence: short tails pop every other
// millisecond tick, long tails (20+) pop on every frame or flash.
const popWindow = 21

// Endgame blows up the tail one segment per frame after a crash, then shows
// the high scores, asking for initials first when the score made the table.
type Endgame struct {
	game     *Game
	active   bool
	awaiting bool // initials prompt is open
	round    int
}

func newEndgame(g *Game) *Endgame {
	return &Endgame{game: g}
}

func (e *Endgame) start() {
	g := e.game
	e.round++
	e.active = true
	e.awaiting = false

	g.surface.SetFill(types.Solid(types.Red))
	g.drawBlock(g.settings.Snake.Position)
	e.resume()
}

func (e *Endgame) stop() {
	if e.active {
		e.game.loop.cancel()
	}
	e.round++
	e.active = false
	e.awaiting = false
}

// EndgameActive reports whether the endgame is still playing or waiting for
// initials.
func (g *Game) EndgameActive() bool {
	return g.endgame.active
}

// resume schedules the next endgame frame
func (e *Endgame) resume() {
	if !e.active {
		return
	}
	if len(e.game.settings.Snake.Tail) > 0 {
		e.game.loop.request(e.explode)
	} else {
		e.game.loop.request(e.finish)
	}
}

func shouldPop(ts float64, tailLen int) bool {
	m := int64(min(2, popWindow-tailLen))
	if m == 0 {
		return false
	}
	return int64(math.Floor(ts))%m == 0
}

func (e *Endgame) explode(ts float64) {
	g := e.game
	e.game.loop.frameID = 0
	if !e.active {
		return
	}
	s := &g.settings.Snake

	if shouldPop(ts, len(s.Tail)) {
		t, _ := s.PopTail()
		g.surface.SetFill(types.Solid(types.Black))
		g.drawBlock(t)
		g.emit(EventTailPop)
	} else {
		g.surface.SetFill(types.Solid(g.randomColor()))
		g.drawBlock(s.LastSegment())
	}
	g.drawBanner(g.randomColor())

	e.resume()
}

func (e *Endgame) finish(float64) {
	g := e.game
	g.loop.frameID = 0
	if !e.active {
		return
	}

	g.surface.SetFill(types.Solid(types.Black))
	g.drawBlock(g.settings.Snake.Position)
	g.drawBanner(types.White)

	if e.awaiting {
		return
	}

	score, round := g.settings.Score, e.round
	if g.prompter != nil && g.scores.IsHighScore(score) {
		e.awaiting = true
		submitted := false
		g.prompter.PromptInitials(func(initials string) {
			if submitted {
				return
			}
			submitted = true
			g.scores.AddScore(initials, score)
			if e.round != round || !e.awaiting {
				// the game was reset while the prompt was open
				return
			}
			e.awaiting = false
			g.DisplayHighScores()
			e.done()
		})
		return
	}

	g.DisplayHighScores()
	e.done()
}

func (e *Endgame) done() {
	e.active = false
	e.game.emit(EventEndgameDone)
}
