package manager

import (
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// SetGrid updates the board bounds after a resize
func (cm *CollisionManager) SetGrid(grid types.Grid) {
	cm.grid = grid
}

// Check runs the self, wall and post checks for a head position and reports
// every one that fires, in that order. The checks are independent: a head
// outside the board on top of a post reports both.
func (cm *CollisionManager) Check(pos types.Point, tail, posts []types.Point, selfCheck bool) []types.CollisionType {
	var hits []types.CollisionType
	if selfCheck && cm.isTailCollision(pos, tail) {
		hits = append(hits, types.SelfCollision)
	}
	if cm.isWallCollision(pos) {
		hits = append(hits, types.WallCollision)
	}
	if cm.isPostCollision(pos, posts) {
		hits = append(hits, types.PostCollision)
	}
	return hits
}

// isWallCollision checks if a position is off the board
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isTailCollision scans the whole tail, including the segment that just took
// over the old head cell.
func (cm *CollisionManager) isTailCollision(pos types.Point, tail []types.Point) bool {
	for _, seg := range tail {
		if seg == pos {
			return true
		}
	}
	return false
}

func (cm *CollisionManager) isPostCollision(pos types.Point, posts []types.Point) bool {
	for _, post := range posts {
		if post == pos {
			return true
		}
	}
	return false
}

// IsTargetCollision checks if the head reached the target block
func (cm *CollisionManager) IsTargetCollision(pos, target types.Point) bool {
	return pos == target
}
