// Package term draws the game in a terminal with tcell. Every cell shows two
// stacked pixels using the upper half block, foreground on top.
package term

import (
	"slices"

	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

type label struct {
	text  string
	col   int
	row   int
	color types.Color
}

// Canvas is a game.Surface of half-block pixels. Text lives on its own layer
// in whole cells and is erased by anything painted over it.
type Canvas struct {
	cols, rows int // cells available
	w, h       int // pixels
	pix        []types.Color
	fill       types.Fill
	labels     []label
}

func NewCanvas(cols, rows int) *Canvas {
	return &Canvas{cols: cols, rows: rows}
}

func (c *Canvas) SetViewport(cols, rows int) {
	c.cols, c.rows = cols, rows
}

func (c *Canvas) Viewport() (int, int) {
	return c.cols, c.rows * 2
}

// Cells is the canvas size in terminal cells
func (c *Canvas) Cells() (int, int) {
	return c.w, (c.h + 1) / 2
}

func (c *Canvas) SetSize(w, h int) {
	c.w, c.h = max(w, 0), max(h, 0)
	c.pix = make([]types.Color, c.w*c.h)
	c.labels = nil
}

func (c *Canvas) Clear(x, y, w, h int) {
	c.paint(x, y, w, h, types.Solid(types.Black))
}

func (c *Canvas) SetFill(f types.Fill) {
	c.fill = f
}

func (c *Canvas) FillRect(x, y, w, h int) {
	c.paint(x, y, w, h, c.fill)
}

func (c *Canvas) paint(x, y, w, h int, f types.Fill) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.w), min(y+h, c.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for py := y0; py < y1; py++ {
		col := f.At(py)
		row := c.pix[py*c.w : (py+1)*c.w]
		for px := x0; px < x1; px++ {
			row[px] = col
		}
	}
	c.eraseLabels(x0, y0/2, x1, (y1-1)/2)
}

// eraseLabels drops text touching columns [col0, col1) on rows row0..row1
func (c *Canvas) eraseLabels(col0, row0, col1, row1 int) {
	kept := c.labels[:0]
	for _, l := range c.labels {
		end := l.col + len([]rune(l.text))
		if l.row >= row0 && l.row <= row1 && l.col < col1 && end > col0 {
			continue
		}
		kept = append(kept, l)
	}
	c.labels = kept
}

func (c *Canvas) FillText(text string, x, y int, font types.Font) {
	n := len([]rune(text))
	col := x - n/2
	row := y / 2
	c.eraseLabels(col, row, col+n, row)
	c.labels = append(c.labels, label{text: text, col: col, row: row, color: c.fill.At(y)})
}

// At returns the pixel color, black outside the canvas
func (c *Canvas) At(x, y int) types.Color {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return types.Black
	}
	return c.pix[y*c.w+x]
}

// Text returns the text on the given cell row, left to right
func (c *Canvas) Text(row int) []string {
	var on []label
	for _, l := range c.labels {
		if l.row == row {
			on = append(on, l)
		}
	}
	slices.SortStableFunc(on, func(a, b label) int { return a.col - b.col })
	out := make([]string, len(on))
	for i, l := range on {
		out[i] = l.text
	}
	return out
}

// Flush copies the canvas onto the screen with its top left cell at (ox, oy)
func (c *Canvas) Flush(s tcell.Screen, ox, oy int) {
	cw, ch := c.Cells()
	for row := 0; row < ch; row++ {
		for col := 0; col < cw; col++ {
			top, bottom := c.At(col, row*2), c.At(col, row*2+1)
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			s.SetContent(ox+col, oy+row, halfBlock, nil, style)
		}
	}
	for _, l := range c.labels {
		for i, r := range []rune(l.text) {
			col := l.col + i
			if col < 0 || col >= cw || l.row < 0 || l.row >= ch {
				continue
			}
			style := tcell.StyleDefault.Foreground(rgb(l.color)).Background(rgb(c.At(col, l.row*2))).Bold(true)
			s.SetContent(ox+col, oy+l.row, r, nil, style)
		}
	}
}

func rgb(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
