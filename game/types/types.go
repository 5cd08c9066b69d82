package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a cell coordinate on the board
type Point struct {
	X, Y int
}

// Add returns p moved by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Unit movement vectors
var (
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Still = Point{}
)

// Game constants
const (
	MinBoardBlocks = 30
	MaxBoardBlocks = 79

	DefaultBlocksWide = 50
	DefaultBlocksHigh = 30
	DefaultSpeed      = 120.0 // milliseconds per move tick
	SpeedFactor       = 0.9   // speed multiplier per capture
	ScoreBase         = 200.0

	HeadReserveRadius = 2 // cells kept clear around the head on placement
	PlacementMargin   = 3 // random search starts this far from each edge
	MaxHighScores     = 5
)

// FallbackCell is used whenever the placement search cannot find a free cell
var FallbackCell = Point{X: 3, Y: 3}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	PostCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case PostCollision:
		return "post"
	}
	return "none"
}

// Difficulty controls self-collision forgiveness, post count and score multiplier
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
	Abusive
)

var difficultyNames = [...]string{"Easy", "Normal", "Hard", "Abusive"}

func (d Difficulty) String() string {
	if d < Easy || d > Abusive {
		return "Difficulty(" + strconv.Itoa(int(d)) + ")"
	}
	return difficultyNames[d]
}

// ParseDifficulty accepts the difficulty names case-insensitively
func ParseDifficulty(s string) (Difficulty, error) {
	for i, name := range difficultyNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Difficulty(i), nil
		}
	}
	return Normal, fmt.Errorf("unknown difficulty %q", s)
}

// Next cycles Easy -> Normal -> Hard -> Abusive -> Easy
func (d Difficulty) Next() Difficulty {
	return (d + 1) % Difficulty(len(difficultyNames))
}

// Multiplier scales the score awarded on capture
func (d Difficulty) Multiplier() float64 {
	switch d {
	case Easy:
		return 0.7
	case Hard:
		return 1.5
	case Abusive:
		return 2
	}
	return 1
}

// PlacementCount is the number of clear cells reserved per target placement.
// The last one becomes the target, the rest become posts.
func (d Difficulty) PlacementCount() int {
	switch d {
	case Hard:
		return 7
	case Abusive:
		return 23
	}
	return 1
}

// ForgivesSelfCollision reports whether running into the tail is harmless
func (d Difficulty) ForgivesSelfCollision() bool {
	return d == Easy
}

// HasPosts reports whether placement replaces the post list
func (d Difficulty) HasPosts() bool {
	return d == Hard || d == Abusive
}

type Color struct {
	R, G, B uint8
}

var (
	Black  = Color{}
	White  = Color{R: 255, G: 255, B: 255}
	Red    = Color{R: 255}
	Yellow = Color{R: 255, G: 255, B: 0x55}
)

// ParseHex parses "#rrggbb" (or "rrggbb")
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustHex is ParseHex for compile-time palette constants
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lerp blends a towards b by t in [0,1]
func (a Color) Lerp(b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

// Fill is a fill style: a solid color, or a vertical gradient from From at
// y=0 to To at y=Span, clamped beyond.
type Fill struct {
	From Color
	To   Color
	Span int
}

func Solid(c Color) Fill {
	return Fill{From: c, To: c}
}

func Gradient(from, to Color, span int) Fill {
	return Fill{From: from, To: to, Span: span}
}

// IsGradient reports whether the fill varies with y
func (f Fill) IsGradient() bool {
	return f.Span > 0 && f.From != f.To
}

// At returns the fill color at canvas row y
func (f Fill) At(y int) Color {
	if !f.IsGradient() {
		return f.From
	}
	return f.From.Lerp(f.To, float64(y)/float64(f.Span))
}

type Font struct {
	Size int
	Bold bool
}

var (
	BigFont   = Font{Size: 30, Bold: true}
	SmallFont = Font{Size: 12}
)
