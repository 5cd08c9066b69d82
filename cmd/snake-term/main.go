package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/sound"
	"snake-arcade/term"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
)

var runeActions = map[rune]game.Action{
	' ': game.TogglePause,
	'r': game.ResetGame,
	'R': game.ResetGame,
	'd': game.CycleDifficulty,
	'D': game.CycleDifficulty,
	'[': game.Narrower,
	']': game.Wider,
	'-': game.Shorter,
	'=': game.Taller,
}

var keyActions = map[tcell.Key]game.Action{
	tcell.KeyLeft:  game.MoveLeft,
	tcell.KeyRight: game.MoveRight,
	tcell.KeyUp:    game.MoveUp,
	tcell.KeyDown:  game.MoveDown,
	tcell.KeyEnter: game.PlayAgain,
}

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// the screen belongs to tcell, so logs go to a file
	closeLog := logToFile(cfg.DataDir)
	defer closeLog()

	if err := run(cfg); err != nil {
		log.Print(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logToFile(dir string) func() {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "snake-term.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(f)
	return func() { f.Close() }
}

func run(cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	scores := manager.OpenScoreStore(cfg.DataDir)
	history := manager.OpenHistory(cfg.DataDir)

	player := sound.NewPlayer(cfg.Mute)
	if err := player.Init(); err != nil {
		log.Printf("sound disabled: %v", err)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	display := term.NewDisplay(screen)
	status := &term.Status{}
	prompt := &game.InitialsPrompt{}
	queue := game.NewFrameQueue()

	opts := cfg.Options
	opts.Compact = true
	g := game.New(game.Config{
		Surface:   display.Canvas(),
		Scheduler: queue,
		Scores:    scores,
		Messages:  game.MessageFunc(func(msg string) { status.Message = msg }),
		Prompter:  prompt,
		Rand:      rand.New(rand.NewSource(seed)),
		Options:   opts,
	})
	g.Subscribe(player.HandleEvent)
	g.Subscribe(func(ev game.Event) {
		switch ev.Kind {
		case game.EventReset:
			history.Begin(time.Now())
		case game.EventCrash:
			history.Finish(ev.Score, ev.TailLength, ev.Difficulty.String(), time.Now())
			status.Games, status.Best = history.GamesPlayed(), history.BestScore()
		}
	})
	status.Games, status.Best = history.GamesPlayed(), history.BestScore()

	if err := g.Restart(opts); err != nil {
		return err
	}
	controls := game.NewControls(g)

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	start := time.Now()
	var buttons tcell.ButtonMask
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				display.Layout()
				g.Resize()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				handleKey(ev, controls, prompt, player)
			case *tcell.EventMouse:
				pressed := ev.Buttons() &^ buttons
				buttons = ev.Buttons()
				if pressed&tcell.Button1 != 0 && !prompt.Active() {
					do(controls, game.PlayAgain)
				}
			}

		case <-ticker.C:
			queue.Fire(float64(time.Since(start).Microseconds()) / 1000)
			status.Selected = controls.Selected()
			status.Muted = player.Muted()
			display.Draw(g, status, prompt)
		}
	}
}

func handleKey(ev *tcell.EventKey, controls *game.Controls, prompt *game.InitialsPrompt, player *sound.Player) {
	if prompt.Active() {
		switch ev.Key() {
		case tcell.KeyEnter:
			prompt.Submit()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			prompt.Backspace()
		case tcell.KeyRune:
			prompt.Type(ev.Rune())
		}
		return
	}

	if a, ok := keyActions[ev.Key()]; ok {
		do(controls, a)
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch r := ev.Rune(); r {
	case 'm', 'M':
		player.ToggleMute()
	default:
		if a, ok := runeActions[r]; ok {
			do(controls, a)
		}
	}
}

func do(controls *game.Controls, a game.Action) {
	if err := controls.Do(a); err != nil {
		log.Printf("ignored: %v", err)
	}
}
