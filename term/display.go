package term

import (
	"fmt"

	"snake-arcade/game"

	"github.com/gdamore/tcell/v2"
)

// rows taken by the status lines above the board and the help line below
const (
	hudTop    = 2
	hudBottom = 1
)

const help = "arrows move  space pause  enter again  r reset  d difficulty  [ ] width  - = height  m sound  esc quit"

type Status struct {
	Message  string
	Selected game.Options
	Muted    bool
	Games    int
	Best     int
}

// Display lays out the status lines, the board canvas and the initials
// prompt on a tcell screen.
type Display struct {
	screen tcell.Screen
	canvas *Canvas
}

func NewDisplay(s tcell.Screen) *Display {
	d := &Display{screen: s, canvas: NewCanvas(0, 0)}
	d.Layout()
	return d
}

func (d *Display) Canvas() *Canvas { return d.canvas }

// Layout sizes the canvas viewport to the screen; call it on resize
func (d *Display) Layout() {
	w, h := d.screen.Size()
	d.canvas.SetViewport(w, max(h-hudTop-hudBottom, 1))
}

func (d *Display) Draw(g *game.Game, st *Status, prompt *game.InitialsPrompt) {
	s := d.screen
	s.Clear()
	w, h := s.Size()

	sound := "on"
	if st.Muted {
		sound = "off"
	}
	head := fmt.Sprintf("Score: %d   %s %dx%d   sound %s   games %d  best %d",
		g.Score(), st.Selected.Difficulty, st.Selected.BlocksWide, st.Selected.BlocksHigh, sound, st.Games, st.Best)
	d.text(0, 0, head, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	d.text(0, 1, st.Message, tcell.StyleDefault)

	cw, _ := d.canvas.Cells()
	d.canvas.Flush(s, max((w-cw)/2, 0), hudTop)

	d.text(0, h-1, help, tcell.StyleDefault.Foreground(tcell.ColorGray))

	if prompt != nil && prompt.Active() {
		d.drawPrompt(prompt, w, h)
	}
	s.Show()
}

func (d *Display) text(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (d *Display) drawPrompt(p *game.InitialsPrompt, w, h int) {
	bw := max(len(game.PromptTitle), len(game.PromptLabel)) + 4
	bh := 6
	x, y := max((w-bw)/2, 0), max((h-bh)/2, 0)

	box := tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)
	for row := y; row < y+bh; row++ {
		for col := x; col < x+bw; col++ {
			d.screen.SetContent(col, row, ' ', nil, box)
		}
	}
	center := func(row int, text string, style tcell.Style) {
		d.text(x+(bw-len([]rune(text)))/2, row, text, style)
	}
	center(y+1, game.PromptTitle, box.Foreground(tcell.ColorYellow).Bold(true))
	center(y+2, game.PromptLabel, box)
	center(y+4, fmt.Sprintf("[%-3s]", p.Text()), box.Bold(true))
}
