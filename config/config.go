// Package config parses the command line shared by the window and terminal
// hosts.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

var ErrInvalidDifficulty = errors.New("unknown difficulty")

type Config struct {
	Options game.Options
	DataDir string // scores, history and logs
	Mute    bool
	Seed    uint64 // 0 seeds from the clock
}

func Default() Config {
	return Config{
		Options: game.DefaultOptions(),
		DataDir: "data",
	}
}

// Parse reads args (without the program name). Usage and parse errors are
// written to output; nil discards them.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output == nil {
		output = io.Discard
	}
	fs.SetOutput(output)

	width := fs.Int("width", cfg.Options.BlocksWide, fmt.Sprintf("Board width in blocks (%d-%d)", types.MinBoardBlocks, types.MaxBoardBlocks))
	height := fs.Int("height", cfg.Options.BlocksHigh, fmt.Sprintf("Board height in blocks (%d-%d)", types.MinBoardBlocks, types.MaxBoardBlocks))
	difficulty := fs.String("difficulty", cfg.Options.Difficulty.String(), "Easy, Normal, Hard or Abusive")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "Directory for high scores, game history and logs")
	fs.BoolVar(&cfg.Mute, "mute", false, "Start with sound off")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 = time based)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	d, err := types.ParseDifficulty(*difficulty)
	if err != nil {
		return cfg, fmt.Errorf("%q: %w", *difficulty, ErrInvalidDifficulty)
	}
	cfg.Options.BlocksWide = *width
	cfg.Options.BlocksHigh = *height
	cfg.Options.Difficulty = d

	if err := cfg.Options.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid board: %w", err)
	}
	return cfg, nil
}
