package game

// Loop throttles snake movement to the snake's speed and renders one pass
// per frame while the game runs. At most one frame request is outstanding:
// every new request cancels the previous one.
type Loop struct {
	game     *Game
	sched    Scheduler
	frameID  FrameID
	lastMove float64
}

func newLoop(g *Game, sched Scheduler) *Loop {
	return &Loop{game: g, sched: sched}
}

// Draw schedules the next frame of the game loop
func (l *Loop) Draw() {
	l.request(l.frame)
}

func (l *Loop) request(cb func(ts float64)) {
	if l.frameID != 0 {
		l.sched.CancelFrame(l.frameID)
	}
	l.frameID = l.sched.RequestFrame(cb)
}

func (l *Loop) cancel() {
	if l.frameID != 0 {
		l.sched.CancelFrame(l.frameID)
		l.frameID = 0
	}
}

func (l *Loop) frame(ts float64) {
	l.frameID = 0
	g := l.game

	// A redraw while paused or after a crash renders without moving.
	if g.running && ts-l.lastMove > g.settings.Snake.Speed {
		l.lastMove = ts
		g.MoveSnake()
	}
	g.render()

	switch {
	case g.running:
		l.Draw()
	case g.endgame.active:
		// A redraw while the endgame runs took its frame slot.
		g.endgame.resume()
	}
}
