package manager

import (
	"errors"
	"fmt"
	"log"

	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

var (
	ErrGridNotReady   = errors.New("placement grid not built")
	ErrBoardTooSmall  = errors.New("board too small for placement margin")
	ErrCellOutOfRange = errors.New("occupied cell outside the board")
)

// GridManager is the occupancy grid used to find open cells for the target
// and posts. It is rebuilt on resize and cleared before every search.
type GridManager struct {
	grid  types.Grid
	cells [][]bool // cells[x][y]
	rng   *rand.Rand
}

func NewGridManager(rng *rand.Rand) *GridManager {
	return &GridManager{rng: rng}
}

// Rebuild allocates an empty grid for the given dimensions
func (gm *GridManager) Rebuild(grid types.Grid) {
	gm.grid = grid
	gm.cells = make([][]bool, grid.Width)
	for x := range gm.cells {
		gm.cells[x] = make([]bool, grid.Height)
	}
}

func (gm *GridManager) Ready() bool {
	return gm.cells != nil && gm.grid.Width > 0 && gm.grid.Height > 0
}

func (gm *GridManager) Grid() types.Grid {
	return gm.grid
}

func (gm *GridManager) clear() {
	for x := range gm.cells {
		col := gm.cells[x]
		for y := range col {
			col[y] = false
		}
	}
}

func (gm *GridManager) occupied(p types.Point) bool {
	return gm.cells[p.X][p.Y]
}

func (gm *GridManager) mark(p types.Point) {
	gm.cells[p.X][p.Y] = true
}

// reserve marks the 5x5 neighborhood of the head (skipping row and column 0)
// and every tail cell as taken.
func (gm *GridManager) reserve(head types.Point, tail []types.Point) error {
	r := types.HeadReserveRadius
	for i := -r; i <= r; i++ {
		for j := -r; j <= r; j++ {
			x, y := head.X+i, head.Y+j
			if x > 0 && x < gm.grid.Width && y > 0 && y < gm.grid.Height {
				gm.cells[x][y] = true
			}
		}
	}
	for _, t := range tail {
		if !gm.grid.Contains(t) {
			return fmt.Errorf("tail cell %v on %dx%d board: %w", t, gm.grid.Width, gm.grid.Height, ErrCellOutOfRange)
		}
		gm.mark(t)
	}
	return nil
}

// FindClearCells returns count cells that are not occupied by the snake or
// its head neighborhood. Each search starts at a random cell inside the
// placement margin and scans forward along x, wrapping to the next row, for at
// most one pass per row. When a search comes up empty the fallback cell is
// used instead, so the result may hold duplicates of it on a crowded board.
func (gm *GridManager) FindClearCells(count int, head types.Point, tail []types.Point) ([]types.Point, error) {
	if !gm.Ready() {
		return nil, ErrGridNotReady
	}
	w, h := gm.grid.Width, gm.grid.Height
	m := types.PlacementMargin
	if w-2*m < 1 || h-2*m < 1 || !gm.grid.Contains(types.FallbackCell) {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrBoardTooSmall)
	}

	gm.clear()
	if err := gm.reserve(head, tail); err != nil {
		return nil, err
	}

	open := make([]types.Point, 0, count)
	for n := 0; n < count; n++ {
		p := types.Point{
			X: m + gm.rng.Intn(w-2*m),
			Y: m + gm.rng.Intn(h-2*m),
		}

		runs := 0
		for runs < h && gm.occupied(p) {
			p.X++
			if p.X >= w {
				p.X = 0
				p.Y = (p.Y + 1) % h
				runs++
			}
		}

		if gm.occupied(p) {
			log.Printf("grid: no clear cell for placement %d/%d, using %v", n+1, count, types.FallbackCell)
			p = types.FallbackCell
		}
		gm.mark(p)
		open = append(open, p)
	}
	return open, nil
}
