package ui

import (
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Canvas is a game.Surface backed by a render texture, so whatever the game
// draws stays put until it is painted over. Game calls must happen between
// Begin and End.
type Canvas struct {
	target rl.RenderTexture2D
	loaded bool
	active bool

	width, height int32
	viewW, viewH  int32
	fill          types.Fill
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

func (c *Canvas) SetViewport(w, h int32) {
	c.viewW, c.viewH = w, h
}

func (c *Canvas) Viewport() (int, int) {
	return int(c.viewW), int(c.viewH)
}

func (c *Canvas) Size() (int32, int32) {
	return c.width, c.height
}

func (c *Canvas) SetSize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	active := c.active
	if active {
		rl.EndTextureMode()
	}
	if c.loaded {
		rl.UnloadRenderTexture(c.target)
	}
	c.width, c.height = int32(w), int32(h)
	c.target = rl.LoadRenderTexture(c.width, c.height)
	c.loaded = true

	rl.BeginTextureMode(c.target)
	rl.ClearBackground(rl.Black)
	if !active {
		rl.EndTextureMode()
	}
}

func (c *Canvas) Begin() {
	if !c.loaded {
		c.SetSize(int(c.viewW), int(c.viewH))
	}
	rl.BeginTextureMode(c.target)
	c.active = true
}

func (c *Canvas) End() {
	if c.active {
		rl.EndTextureMode()
		c.active = false
	}
}

func (c *Canvas) Unload() {
	if c.loaded {
		rl.UnloadRenderTexture(c.target)
		c.loaded = false
	}
}

func (c *Canvas) Clear(x, y, w, h int) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), rl.Black)
}

func (c *Canvas) SetFill(f types.Fill) {
	c.fill = f
}

func (c *Canvas) FillRect(x, y, w, h int) {
	f := c.fill
	if !f.IsGradient() {
		rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), color(f.From))
		return
	}
	// vertical gradient down to Span, flat To below it
	top, bottom := y, y+h
	split := min(max(top, f.Span), bottom)
	if split > top {
		rl.DrawRectangleGradientV(int32(x), int32(top), int32(w), int32(split-top), color(f.At(top)), color(f.At(split)))
	}
	if bottom > split {
		rl.DrawRectangle(int32(x), int32(split), int32(w), int32(bottom-split), color(f.To))
	}
}

func (c *Canvas) FillText(text string, x, y int, font types.Font) {
	size := int32(font.Size)
	left := int32(x) - rl.MeasureText(text, size)/2
	top := int32(y) - size
	col := color(c.fill.At(y))
	rl.DrawText(text, left, top, size, col)
	if font.Bold {
		rl.DrawText(text, left+1, top, size, col)
	}
}

// Present draws the canvas onto the screen at (x, y). Render textures are
// stored upside down, hence the negative source height.
func (c *Canvas) Present(x, y int32) {
	if !c.loaded {
		return
	}
	src := rl.NewRectangle(0, 0, float32(c.width), -float32(c.height))
	rl.DrawTextureRec(c.target.Texture, src, rl.NewVector2(float32(x), float32(y)), rl.White)
}

func color(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
