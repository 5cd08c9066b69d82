package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/sound"
	"snake-arcade/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

type binding struct {
	key    int32
	action game.Action
}

var bindings = []binding{
	{rl.KeyLeft, game.MoveLeft},
	{rl.KeyRight, game.MoveRight},
	{rl.KeyUp, game.MoveUp},
	{rl.KeyDown, game.MoveDown},
	{rl.KeySpace, game.TogglePause},
	{rl.KeyEnter, game.PlayAgain},
	{rl.KeyKpEnter, game.PlayAgain},
	{rl.KeyR, game.ResetGame},
	{rl.KeyD, game.CycleDifficulty},
	{rl.KeyLeftBracket, game.Narrower},
	{rl.KeyRightBracket, game.Wider},
	{rl.KeyMinus, game.Shorter},
	{rl.KeyEqual, game.Taller},
}

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

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

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(1280, 800, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	canvas := ui.NewCanvas()
	defer canvas.Unload()
	renderer.Layout(canvas)

	status := &ui.Status{Persistent: scores.Persistent()}
	prompt := &game.InitialsPrompt{}
	queue := game.NewFrameQueue()

	g := game.New(game.Config{
		Surface:   canvas,
		Scheduler: queue,
		Scores:    scores,
		Messages:  game.MessageFunc(func(msg string) { status.Message = msg }),
		Prompter:  prompt,
		Rand:      rand.New(rand.NewSource(seed)),
		Options:   cfg.Options,
	})
	g.Subscribe(player.HandleEvent)
	g.Subscribe(func(ev game.Event) {
		switch ev.Kind {
		case game.EventReset:
			history.Begin(time.Now())
		case game.EventCrash:
			history.Finish(ev.Score, ev.TailLength, ev.Difficulty.String(), time.Now())
			status.Games, status.Best = history.GamesPlayed(), history.BestScore()
		case game.EventEndgameDone:
			status.Scores = scores.GetScores()
		}
	})

	status.Scores = scores.GetScores()
	status.Games, status.Best = history.GamesPlayed(), history.BestScore()

	canvas.Begin()
	if err := g.Restart(cfg.Options); err != nil {
		log.Fatal(err)
	}
	canvas.End()
	controls := game.NewControls(g)

	for !rl.WindowShouldClose() {
		resized := renderer.UpdateDimensions()
		if resized {
			renderer.Layout(canvas)
		}

		canvas.Begin()
		if resized {
			g.Resize()
		}
		handleInput(controls, prompt, player)
		queue.Fire(rl.GetTime() * 1000)
		canvas.End()

		status.Selected = controls.Selected()
		status.Muted = player.Muted()
		renderer.Draw(canvas, g, status, prompt)
	}
}

// handleInput feeds the initials prompt while it is open, the game otherwise
func handleInput(controls *game.Controls, prompt *game.InitialsPrompt, player *sound.Player) {
	if prompt.Active() {
		for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
			prompt.Type(rune(ch))
		}
		if rl.IsKeyPressed(rl.KeyBackspace) {
			prompt.Backspace()
		}
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
			prompt.Submit()
		}
		return
	}

	for _, b := range bindings {
		if rl.IsKeyPressed(b.key) {
			if err := controls.Do(b.action); err != nil {
				log.Printf("ignored: %v", err)
			}
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if err := controls.Do(game.PlayAgain); err != nil {
			log.Printf("ignored: %v", err)
		}
	}
	if rl.IsKeyPressed(rl.KeyF) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyM) {
		player.ToggleMute()
	}
}
