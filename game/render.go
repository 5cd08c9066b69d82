package game

import (
	"strconv"

	"snake-arcade/game/types"
)

// fieldGradientSpan is the height in pixels over which the field fades
// from FieldColor to FieldColor2.
const fieldGradientSpan = 170

// render draws a single frame: walls, field, target, snake and posts
func (g *Game) render() {
	b := &g.settings.Board
	sf := g.surface

	sf.Clear(0, 0, b.PixelsWide, b.PixelsHigh)

	sf.SetFill(types.Solid(b.WallColor))
	sf.FillRect(0, 0, b.PixelsWide, b.PixelsHigh)

	sf.SetFill(types.Gradient(b.FieldColor, b.FieldColor2, fieldGradientSpan))
	sf.FillRect(b.BlockSize, b.BlockSize, b.PixelsWide-b.BlockSize*2, b.PixelsHigh-b.BlockSize*2)

	sf.SetFill(types.Solid(b.BlockColor))
	g.drawBlock(b.BlockLocation)

	s := &g.settings.Snake
	sf.SetFill(types.Solid(b.SnakeColor))
	g.drawBlock(s.Position)
	for _, seg := range s.Tail {
		g.drawBlock(seg)
	}

	// posts flicker
	sf.SetFill(types.Solid(g.randomColor()))
	for _, post := range b.Posts {
		g.drawBlock(post)
	}
}

// drawBlock fills one cell; cell (x,y) sits one block in from the wall
func (g *Game) drawBlock(p types.Point) {
	b := &g.settings.Board
	size := b.BlockSize - b.GridPadPixels
	if size < 1 {
		size = b.BlockSize
	}
	g.surface.FillRect((p.X+1)*b.BlockSize, (p.Y+1)*b.BlockSize, size, size)
}

func (g *Game) randomColor() types.Color {
	c := func() uint8 { return uint8(10 + g.rng.Intn(246)) }
	return types.Color{R: c(), G: c(), B: c()}
}

// lineStep is the vertical distance between two rows of small text
func (g *Game) lineStep() int {
	if g.options.Compact {
		return 2
	}
	return 20
}

func (g *Game) drawBanner(c types.Color) {
	b := &g.settings.Board
	g.surface.SetFill(types.Solid(c))
	g.surface.FillText("GAME OVER", b.PixelsWide/2, b.PixelsHigh/2, types.BigFont)
}

// DisplayHighScores draws the table arcade style: the leader centered, the
// next four in two columns below.
func (g *Game) DisplayHighScores() {
	scores := g.scores.GetScores()
	b := &g.settings.Board

	cx, cy := b.PixelsWide/2, b.PixelsHigh/2
	c1 := b.PixelsWide / 4
	c2 := b.PixelsWide / 4 * 3
	step := g.lineStep()

	slots := []struct{ x, y int }{
		{cx, cy + step*3/2},
		{c1, cy + step*5/2},
		{c2, cy + step*5/2},
		{c1, cy + step*7/2},
		{c2, cy + step*7/2},
	}
	for i, e := range scores {
		if i >= len(slots) {
			break
		}
		if i == 0 {
			g.surface.SetFill(types.Solid(types.Yellow))
		} else if i == 1 {
			g.surface.SetFill(types.Solid(types.White))
		}
		line := e.Player + " - " + strconv.Itoa(e.Score)
		g.surface.FillText(line, slots[i].x, slots[i].y, types.SmallFont)
	}
}
