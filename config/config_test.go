package config

import (
	"errors"
	"flag"
	"testing"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("snake", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Options != game.DefaultOptions() {
		t.Errorf("options = %+v", cfg.Options)
	}
	if cfg.DataDir != "data" || cfg.Mute || cfg.Seed != 0 {
		t.Errorf("config = %+v", cfg)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr error
	}{
		{
			name: "all flags",
			args: []string{"-width", "79", "-height", "30", "-difficulty", "abusive", "-data", "/tmp/x", "-mute", "-seed", "7"},
			want: Config{
				Options: game.Options{BlocksWide: 79, BlocksHigh: 30, Difficulty: types.Abusive},
				DataDir: "/tmp/x",
				Mute:    true,
				Seed:    7,
			},
		},
		{
			name: "smallest board",
			args: []string{"-width=30", "-height=30", "-difficulty=Easy"},
			want: Config{
				Options: game.Options{BlocksWide: 30, BlocksHigh: 30, Difficulty: types.Easy},
				DataDir: "data",
			},
		},
		{name: "too narrow", args: []string{"-width", "29"}, wantErr: game.ErrBoardSize},
		{name: "too tall", args: []string{"-height", "80"}, wantErr: game.ErrBoardSize},
		{name: "bad difficulty", args: []string{"-difficulty", "insane"}, wantErr: ErrInvalidDifficulty},
		{name: "help", args: []string{"-h"}, wantErr: flag.ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse("snake", tt.args, nil)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
