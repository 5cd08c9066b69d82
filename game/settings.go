package game

import (
	"errors"
	"fmt"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

var ErrBoardSize = errors.New("board size out of range")

// Board holds the playing field: its size in cells, the derived pixel
// geometry, the target block and the posts.
type Board struct {
	WallColor   types.Color
	FieldColor  types.Color
	FieldColor2 types.Color
	SnakeColor  types.Color
	BlockColor  types.Color
	PostsColor  types.Color

	PixelsWide    int // filled in on resize
	PixelsHigh    int
	BlockSize     int
	GridPadPixels int // padding between blocks

	BlockLocation types.Point
	Posts         []types.Point
	BlocksWide    int
	BlocksHigh    int
}

func (b *Board) Grid() types.Grid {
	return types.Grid{Width: b.BlocksWide, Height: b.BlocksHigh}
}

func (b *Board) Center() types.Point {
	return types.Point{X: b.BlocksWide >> 1, Y: b.BlocksHigh >> 1}
}

type Settings struct {
	Difficulty types.Difficulty
	Score      int
	Snake      entity.Snake
	Board      Board
}

// DefaultSettings builds a fresh settings value. Nothing in the result is
// shared with any other call.
func DefaultSettings() Settings {
	return Settings{
		Difficulty: types.Normal,
		Score:      0,
		Snake:      entity.NewSnake(types.Point{}),
		Board: Board{
			WallColor:     types.MustHex("#47bcdf"),
			FieldColor:    types.MustHex("#1E282C"),
			FieldColor2:   types.MustHex("#656565"),
			SnakeColor:    types.MustHex("#FA7E86"),
			BlockColor:    types.MustHex("#FFEB3B"),
			PostsColor:    types.MustHex("#FF0000"),
			GridPadPixels: 2,
			BlockLocation: types.FallbackCell,
			Posts:         []types.Point{},
			BlocksWide:    types.DefaultBlocksWide,
			BlocksHigh:    types.DefaultBlocksHigh,
		},
	}
}

// Options are the host-selected game settings applied on Restart.
// Compact targets character-cell surfaces: no grid padding and a block size
// of at least one pixel.
type Options struct {
	BlocksWide int
	BlocksHigh int
	Difficulty types.Difficulty
	Compact    bool
}

func DefaultOptions() Options {
	return Options{
		BlocksWide: types.DefaultBlocksWide,
		BlocksHigh: types.DefaultBlocksHigh,
		Difficulty: types.Normal,
	}
}

func (o Options) Validate() error {
	if err := validateBoardSize(o.BlocksWide, o.BlocksHigh); err != nil {
		return err
	}
	if o.Difficulty < types.Easy || o.Difficulty > types.Abusive {
		return fmt.Errorf("invalid difficulty %d", o.Difficulty)
	}
	return nil
}

func validateBoardSize(w, h int) error {
	if w < types.MinBoardBlocks || w > types.MaxBoardBlocks ||
		h < types.MinBoardBlocks || h > types.MaxBoardBlocks {
		return fmt.Errorf("%dx%d (want %d..%d): %w", w, h, types.MinBoardBlocks, types.MaxBoardBlocks, ErrBoardSize)
	}
	return nil
}
