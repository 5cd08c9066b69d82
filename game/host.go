package game

import "snake-arcade/game/types"

// Surface is the 2D raster the game draws on. Coordinates are pixels of the
// canvas; the canvas keeps its contents until painted over or cleared.
type Surface interface {
	// Viewport is the area available to the canvas
	Viewport() (w, h int)
	// SetSize resizes the canvas; contents may be lost
	SetSize(w, h int)
	Clear(x, y, w, h int)
	SetFill(f types.Fill)
	FillRect(x, y, w, h int)
	// FillText draws text horizontally centered on x, with its baseline at y
	FillText(text string, x, y int, font types.Font)
}

// MessageSink shows short status lines
type MessageSink interface {
	Message(msg string)
}

// MessageFunc adapts a function to MessageSink
type MessageFunc func(msg string)

func (f MessageFunc) Message(msg string) { f(msg) }

// Prompter asks the player for their initials and calls submit once with
// whatever was entered.
type Prompter interface {
	PromptInitials(submit func(initials string))
}

type FrameID int

// Scheduler runs callbacks on the next display frame with a millisecond
// timestamp.
type Scheduler interface {
	RequestFrame(cb func(ts float64)) FrameID
	CancelFrame(id FrameID)
}

type EventKind int

const (
	EventReset EventKind = iota
	EventScore
	EventCapture
	EventCrash
	EventTailPop
	EventEndgameDone
)

// Event is delivered to Subscribe callbacks. Score, TailLength and
// Difficulty are a snapshot taken when the event fired.
type Event struct {
	Kind       EventKind
	Score      int
	TailLength int
	Difficulty types.Difficulty
}
