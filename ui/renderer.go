package ui

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/manager"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const borderPadding = 10 // around the game area

var keyHelp = []string{
	"Arrows  move",
	"Space   pause",
	"Enter   play again",
	"R       reset game",
	"D       difficulty",
	"[ ]     width",
	"- =     height",
	"F       fullscreen",
	"M       sound",
	"Esc     quit",
}

// Status is what the side panel shows besides the score
type Status struct {
	Message    string
	Selected   game.Options
	Muted      bool
	Games      int
	Best       int
	Scores     []manager.ScoreEntry
	Persistent bool // scores survive a restart
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	gameWidth    int32
	gameHeight   int32
	statsPanel   int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions reads the window size and reports whether it changed
func (r *Renderer) UpdateDimensions() bool {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if w == r.screenWidth && h == r.screenHeight {
		return false
	}
	r.screenWidth, r.screenHeight = w, h

	r.statsPanel = max(r.screenWidth/5, 220)
	r.gameWidth = max(r.screenWidth-r.statsPanel, 1)
	r.gameHeight = r.screenHeight
	return true
}

// Layout gives the canvas the game area minus the border padding
func (r *Renderer) Layout(c *Canvas) {
	c.SetViewport(r.gameWidth-borderPadding*2, r.gameHeight-borderPadding*2)
}

func (r *Renderer) Draw(c *Canvas, g *game.Game, st *Status, prompt *game.InitialsPrompt) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// center the canvas in the game area
	cw, ch := c.Size()
	offsetX := max((r.gameWidth-cw)/2, borderPadding)
	offsetY := max((r.gameHeight-ch)/2, borderPadding)
	c.Present(offsetX, offsetY)

	fontSize := min(r.screenHeight/40, r.statsPanel/14)
	lineHeight := fontSize + fontSize/2
	r.drawStatsPanel(g, st, fontSize, lineHeight)

	if prompt.Active() {
		r.drawPrompt(prompt, fontSize)
	}
	rl.EndDrawing()
}

func (r *Renderer) drawStatsPanel(g *game.Game, st *Status, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	line := func(text string, col rl.Color) {
		rl.DrawText(text, statsX, statsY, fontSize, col)
		statsY += lineHeight
	}

	rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), statsX, statsY, fontSize*2, rl.Yellow)
	statsY += lineHeight * 2
	line(st.Message, rl.White)
	statsY += lineHeight / 2

	line(fmt.Sprintf("Difficulty: %s", st.Selected.Difficulty), rl.White)
	line(fmt.Sprintf("Board: %dx%d", st.Selected.BlocksWide, st.Selected.BlocksHigh), rl.White)
	sound := "on"
	if st.Muted {
		sound = "off"
	}
	line("Sound: "+sound, rl.White)
	line(fmt.Sprintf("Games: %d  Best: %d", st.Games, st.Best), rl.White)
	statsY += lineHeight / 2

	title := "High Scores:"
	if !st.Persistent {
		title = "High Scores (session):"
	}
	line(title, rl.White)
	for i, e := range st.Scores {
		col := rl.White
		if i == 0 {
			col = rl.Yellow
		}
		line(fmt.Sprintf("%d. %s %6d", i+1, e.Player, e.Score), col)
	}
	statsY += lineHeight / 2

	for _, h := range keyHelp {
		line(h, rl.LightGray)
	}
}

func (r *Renderer) drawPrompt(p *game.InitialsPrompt, fontSize int32) {
	big := fontSize * 2
	w := max(rl.MeasureText(game.PromptTitle, big), rl.MeasureText(game.PromptLabel, fontSize)) + 40
	h := big*4 + fontSize*2
	x := (r.screenWidth - w) / 2
	y := (r.screenHeight - h) / 2

	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Fade(rl.Black, 0.5))
	rl.DrawRectangle(x, y, w, h, rl.DarkGray)
	rl.DrawRectangleLines(x, y, w, h, rl.Yellow)

	centered := func(text string, ty, size int32, col rl.Color) {
		rl.DrawText(text, x+(w-rl.MeasureText(text, size))/2, ty, size, col)
	}
	centered(game.PromptTitle, y+fontSize, big, rl.Yellow)
	centered(game.PromptLabel, y+fontSize+big+fontSize/2, fontSize, rl.White)

	text := p.Text()
	if int(rl.GetTime()*2)%2 == 0 {
		text += "_"
	}
	centered(text, y+h-big-fontSize, big, rl.White)
}
