package manager

import (
	"log"

	"snake-arcade/game/types"
)

// Placement is the outcome of one target placement
type Placement struct {
	Target types.Point
	Posts  []types.Point
	// Fallback is set when the difficulty's full request failed and only a
	// single cell (or the fixed fallback cell) was placed.
	Fallback bool
}

type TargetManager struct {
	grid *GridManager
}

func NewTargetManager(grid *GridManager) *TargetManager {
	return &TargetManager{grid: grid}
}

// Place reserves difficulty.PlacementCount() clear cells. The last one becomes
// the target and the others replace the posts on Hard and Abusive. Posts is
// nil when the post list should be left alone.
func (tm *TargetManager) Place(difficulty types.Difficulty, head types.Point, tail []types.Point) Placement {
	cells, err := tm.grid.FindClearCells(difficulty.PlacementCount(), head, tail)
	if err == nil && len(cells) > 0 {
		pl := Placement{Target: cells[len(cells)-1]}
		if difficulty.HasPosts() {
			pl.Posts = append([]types.Point{}, cells[:len(cells)-1]...)
		}
		return pl
	}
	if err != nil {
		log.Printf("target: placement for %v failed: %v", difficulty, err)
	}

	cells, err = tm.grid.FindClearCells(1, head, tail)
	if err != nil || len(cells) == 0 {
		log.Printf("target: single cell placement failed: %v, using %v", err, types.FallbackCell)
		return Placement{Target: types.FallbackCell, Fallback: true}
	}
	return Placement{Target: cells[0], Fallback: true}
}
