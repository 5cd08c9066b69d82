package entity

import (
	"snake-arcade/game/types"
)

// Snake holds the head position and the tail, ordered head to tail.
// Speed is the number of milliseconds between move ticks.
type Snake struct {
	Position types.Point
	Tail     []types.Point
	Speed    float64
	Delta    types.Point
}

func NewSnake(startPos types.Point) Snake {
	return Snake{
		Position: startPos,
		Tail:     []types.Point{},
		Speed:    types.DefaultSpeed,
		Delta:    types.Still,
	}
}

// Clone returns a copy that shares no backing array with s
func (s Snake) Clone() Snake {
	c := s
	c.Tail = append([]types.Point(nil), s.Tail...)
	return c
}

// Advance shifts every tail segment into its predecessor's old cell, puts the
// first segment on the old head and moves the head by Delta. The tail length
// does not change.
func (s *Snake) Advance() {
	for i := len(s.Tail) - 1; i > 0; i-- {
		s.Tail[i] = s.Tail[i-1]
	}
	if len(s.Tail) > 0 {
		s.Tail[0] = s.Position
	}
	s.Position = s.Position.Add(s.Delta)
}

// Grow appends one segment on top of the last one, or on the head if there
// is no tail yet.
func (s *Snake) Grow() {
	seg := s.Position
	if len(s.Tail) > 0 {
		seg = s.Tail[len(s.Tail)-1]
	}
	s.Tail = append(s.Tail, seg)
}

// PopTail removes and returns the last segment
func (s *Snake) PopTail() (types.Point, bool) {
	if len(s.Tail) == 0 {
		return types.Point{}, false
	}
	last := s.Tail[len(s.Tail)-1]
	s.Tail = s.Tail[:len(s.Tail)-1]
	return last, true
}

// LastSegment returns the tail end, or the head when there is no tail
func (s *Snake) LastSegment() types.Point {
	if len(s.Tail) == 0 {
		return s.Position
	}
	return s.Tail[len(s.Tail)-1]
}

// SetDirection sets the movement vector. Reversing into the tail is allowed.
func (s *Snake) SetDirection(dir types.Point) {
	s.Delta = dir
}

// Slow multiplies the tick interval, i.e. a factor below 1 speeds the snake up
func (s *Snake) Slow(factor float64) {
	s.Speed *= factor
}

// Occupies reports whether p is the head or any tail segment
func (s *Snake) Occupies(p types.Point) bool {
	if s.Position == p {
		return true
	}
	for _, t := range s.Tail {
		if t == p {
			return true
		}
	}
	return false
}
