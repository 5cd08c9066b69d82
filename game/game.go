package game

import (
	"math"
	"time"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// Config wires a game to its host. Surface and Scheduler are required;
// Scores defaults to a session-only table, Rand to a time-seeded source.
type Config struct {
	Surface   Surface
	Scheduler Scheduler
	Scores    manager.ScoreKeeper
	Messages  MessageSink
	Prompter  Prompter
	Rand      *rand.Rand
	Options   Options
}

// Game owns all mutable game state. It is driven from a single goroutine:
// the host's frame pump and its input handlers.
type Game struct {
	settings Settings
	options  Options
	running  bool
	over     bool

	grid       *manager.GridManager
	targets    *manager.TargetManager
	collisions *manager.CollisionManager
	scores     manager.ScoreKeeper

	surface   Surface
	messages  MessageSink
	prompter  Prompter
	rng       *rand.Rand
	loop      *Loop
	endgame   *Endgame
	listeners []func(Event)
}

func New(cfg Config) *Game {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	scores := cfg.Scores
	if scores == nil {
		scores = manager.NewMemoryScoreStore()
	}
	messages := cfg.Messages
	if messages == nil {
		messages = MessageFunc(func(string) {})
	}
	opts := cfg.Options
	if opts.BlocksWide == 0 && opts.BlocksHigh == 0 {
		compact := opts.Compact
		opts = DefaultOptions()
		opts.Compact = compact
	}

	grid := manager.NewGridManager(rng)
	g := &Game{
		settings:   DefaultSettings(),
		options:    opts,
		grid:       grid,
		targets:    manager.NewTargetManager(grid),
		collisions: manager.NewCollisionManager(types.Grid{}),
		scores:     scores,
		surface:    cfg.Surface,
		messages:   messages,
		prompter:   cfg.Prompter,
		rng:        rng,
	}
	g.loop = newLoop(g, cfg.Scheduler)
	g.endgame = newEndgame(g)
	return g
}

// Subscribe registers a callback for game events
func (g *Game) Subscribe(fn func(Event)) {
	g.listeners = append(g.listeners, fn)
}

func (g *Game) emit(kind EventKind) {
	ev := Event{
		Kind:       kind,
		Score:      g.settings.Score,
		TailLength: len(g.settings.Snake.Tail),
		Difficulty: g.settings.Difficulty,
	}
	for _, fn := range g.listeners {
		fn(ev)
	}
}

func (g *Game) message(msg string) {
	g.messages.Message(msg)
}

// Settings exposes the live settings. Hosts should treat them as read-only.
func (g *Game) Settings() *Settings { return &g.settings }

func (g *Game) Options() Options { return g.options }

func (g *Game) Score() int { return g.settings.Score }

func (g *Game) Running() bool { return g.running }

func (g *Game) Over() bool { return g.over }

// Reset starts over with the default settings
func (g *Game) Reset() {
	g.over = false
	g.endgame.stop()
	g.Pause()
	g.settings = DefaultSettings()
	compact := g.options.Compact
	g.options = DefaultOptions()
	g.options.Compact = compact
	g.settings.Snake.Position = g.settings.Board.Center()
	g.rebuildGrid()
	g.PlaceTarget()
	g.SetScore(0)
	g.Resize()
	g.Resume()
	g.message("Press a cursor key to start.")
	g.emit(EventReset)
}

// Restart resets the game and applies the host's board size and difficulty.
// opts.Compact is ignored; it belongs to the host surface.
func (g *Game) Restart(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	g.Reset()
	opts.Compact = g.options.Compact
	g.options = opts

	b := &g.settings.Board
	b.BlocksWide, b.BlocksHigh = opts.BlocksWide, opts.BlocksHigh
	g.settings.Difficulty = opts.Difficulty
	g.settings.Snake.Position = b.Center()
	g.Resize()
	g.PlaceTarget()
	return nil
}

// SetBoardSize changes the board while a game is in progress. A target or
// post left outside the new board is placed again.
func (g *Game) SetBoardSize(w, h int) error {
	if err := validateBoardSize(w, h); err != nil {
		return err
	}
	b := &g.settings.Board
	b.BlocksWide, b.BlocksHigh = w, h
	g.options.BlocksWide, g.options.BlocksHigh = w, h
	g.Resize()

	grid := b.Grid()
	misplaced := !grid.Contains(b.BlockLocation)
	for _, p := range b.Posts {
		if !grid.Contains(p) {
			misplaced = true
		}
	}
	if misplaced && !g.over {
		g.PlaceTarget()
	}
	return nil
}

func (g *Game) SetDifficulty(d types.Difficulty) {
	g.settings.Difficulty = d
	g.options.Difficulty = d
}

// Resize recomputes the block size from the surface viewport, sizes the
// canvas, redraws and rebuilds the placement grid.
func (g *Game) Resize() {
	b := &g.settings.Board
	if g.options.Compact {
		b.GridPadPixels = 0
	}
	vw, vh := g.surface.Viewport()
	size := min(vw/(b.BlocksWide+2), vh/(b.BlocksHigh+2))
	if g.options.Compact && size < 1 {
		size = 1
	}
	b.BlockSize = size
	b.PixelsWide = size * (b.BlocksWide + 2)
	b.PixelsHigh = size * (b.BlocksHigh + 2)
	g.surface.SetSize(b.PixelsWide, b.PixelsHigh)

	g.loop.Draw()
	g.rebuildGrid()
}

func (g *Game) rebuildGrid() {
	grid := g.settings.Board.Grid()
	g.grid.Rebuild(grid)
	g.collisions.SetGrid(grid)
}

// MoveSnake advances the snake one cell and runs the target, self, wall and
// post checks.
func (g *Game) MoveSnake() {
	b := &g.settings.Board
	s := &g.settings.Snake

	s.Advance()

	captured := g.collisions.IsTargetCollision(s.Position, b.BlockLocation)
	if captured {
		g.PlaceTarget()
		s.Slow(types.SpeedFactor)
		s.Grow()

		newscore := (types.ScoreBase - s.Speed) * float64(len(s.Tail)+1)
		newscore = math.Floor(newscore * g.settings.Difficulty.Multiplier())
		g.SetScore(newscore)
		g.emit(EventCapture)
	}

	// The self check is skipped on a capture so the segment that was just
	// added does not count.
	selfCheck := !captured && !g.settings.Difficulty.ForgivesSelfCollision()
	for _, hit := range g.collisions.Check(s.Position, s.Tail, b.Posts, selfCheck) {
		if hit == types.WallCollision {
			g.message("BOOM")
		}
		g.GameOver()
	}
}

// PlaceTarget moves the target block, and on Hard and Abusive the posts,
// to clear cells away from the snake.
func (g *Game) PlaceTarget() {
	b := &g.settings.Board
	s := &g.settings.Snake
	pl := g.targets.Place(g.settings.Difficulty, s.Position, s.Tail)
	b.BlockLocation = pl.Target
	if pl.Posts != nil {
		b.Posts = pl.Posts
	}
}

func (g *Game) SetScore(score float64) {
	g.settings.Score = int(math.Floor(score))
	g.emit(EventScore)
}

func (g *Game) MoveL() { g.settings.Snake.SetDirection(types.Left) }
func (g *Game) MoveR() { g.settings.Snake.SetDirection(types.Right) }
func (g *Game) MoveU() { g.settings.Snake.SetDirection(types.Up) }
func (g *Game) MoveD() { g.settings.Snake.SetDirection(types.Down) }

// Start begins the render loop
func (g *Game) Start() {
	if g.over {
		return
	}
	g.running = true
	g.loop.Draw()
}

func (g *Game) Pause() {
	g.running = false
	g.message("PAUSED: Press SPACE to continue")
}

func (g *Game) Resume() {
	if g.over {
		return
	}
	g.running = true
	g.loop.Draw()
	g.message("Ready")
}

func (g *Game) TogglePause() {
	if g.running {
		g.Pause()
	} else {
		g.Resume()
	}
}

// GameOver stops the game and plays the endgame sequence. Further calls in
// the same tick only repeat the message.
func (g *Game) GameOver() {
	g.running = false
	first := !g.over
	g.over = true
	g.message("Game Over: click to restart.")
	if first {
		g.emit(EventCrash)
		g.endgame.start()
	}
}
