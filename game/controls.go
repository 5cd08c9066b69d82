package game

import (
	"unicode"
)

type Action int

const (
	MoveLeft Action = iota
	MoveRight
	MoveUp
	MoveDown
	TogglePause
	PlayAgain       // restart with the selected options
	ResetGame       // back to defaults, selection included
	CycleDifficulty // applies live
	Narrower
	Wider
	Shorter
	Taller
)

// Controls maps host input to game calls and keeps the options selected for
// the next PlayAgain. Board size and difficulty changes also apply to the
// running game.
type Controls struct {
	game     *Game
	selected Options
}

func NewControls(g *Game) *Controls {
	return &Controls{game: g, selected: g.Options()}
}

func (c *Controls) Selected() Options { return c.selected }

func (c *Controls) Do(a Action) error {
	g := c.game
	switch a {
	case MoveLeft:
		g.MoveL()
	case MoveRight:
		g.MoveR()
	case MoveUp:
		g.MoveU()
	case MoveDown:
		g.MoveD()
	case TogglePause:
		g.TogglePause()
	case PlayAgain:
		return g.Restart(c.selected)
	case ResetGame:
		g.Reset()
		c.selected = g.Options()
	case CycleDifficulty:
		c.selected.Difficulty = c.selected.Difficulty.Next()
		g.SetDifficulty(c.selected.Difficulty)
	case Narrower:
		return c.resize(-1, 0)
	case Wider:
		return c.resize(1, 0)
	case Shorter:
		return c.resize(0, -1)
	case Taller:
		return c.resize(0, 1)
	}
	return nil
}

func (c *Controls) resize(dw, dh int) error {
	w, h := c.selected.BlocksWide+dw, c.selected.BlocksHigh+dh
	if err := c.game.SetBoardSize(w, h); err != nil {
		return err
	}
	c.selected.BlocksWide, c.selected.BlocksHigh = w, h
	return nil
}

const (
	PromptTitle = "You are on the Board!"
	PromptLabel = "Enter your Initials!"
	maxInitials = 3
)

// InitialsPrompt is a Prompter for hosts that feed it keystrokes themselves
// and draw Text while it is Active.
type InitialsPrompt struct {
	text   []rune
	submit func(string)
}

func (p *InitialsPrompt) PromptInitials(submit func(initials string)) {
	p.text = p.text[:0]
	p.submit = submit
}

func (p *InitialsPrompt) Active() bool { return p.submit != nil }

func (p *InitialsPrompt) Text() string { return string(p.text) }

// Type appends a letter or digit; anything else, or a fourth character, is
// ignored.
func (p *InitialsPrompt) Type(r rune) {
	if !p.Active() || len(p.text) >= maxInitials {
		return
	}
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return
	}
	p.text = append(p.text, unicode.ToUpper(r))
}

func (p *InitialsPrompt) Backspace() {
	if len(p.text) > 0 {
		p.text = p.text[:len(p.text)-1]
	}
}

// Submit closes the prompt and hands the text to the game
func (p *InitialsPrompt) Submit() {
	if !p.Active() {
		return
	}
	submit := p.submit
	p.submit = nil
	submit(string(p.text))
}
