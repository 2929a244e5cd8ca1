package layout

import (
	"image"
	"image/color"
)

// FontRole selects one of the renderer's faces
type FontRole int

const (
	FontBig FontRole = iota
	FontMid
	FontSmall
	FontMonth
)

func (r FontRole) String() string {
	switch r {
	case FontBig:
		return "big"
	case FontMid:
		return "mid"
	case FontSmall:
		return "small"
	case FontMonth:
		return "month"
	default:
		return "unknown"
	}
}

// Measurer reports the rendered advance width of s in pixels.
type Measurer interface {
	TextWidth(role FontRole, s string) int
}

// Command is one draw instruction. The set is closed: RectCommand or TextCommand.
type Command interface {
	command()
}

// RectCommand is a rounded rectangle; Bounds has the usual image.Rectangle
// half-open semantics. A rectangle may be filled, outlined, or both.
type RectCommand struct {
	Bounds       image.Rectangle
	Radius       int
	Fill         color.RGBA
	Filled       bool
	Outline      color.RGBA
	OutlineWidth int
}

// TextCommand places text with its top-left corner at At.
type TextCommand struct {
	At    image.Point
	Text  string
	Color color.RGBA
	Role  FontRole
}

func (RectCommand) command() {}
func (TextCommand) command() {}

// Scene is the complete, immutable output of Build.
type Scene struct {
	Width      int
	Height     int
	Background color.RGBA
	Commands   []Command
}

// Texts returns the text commands in draw order.
func (s Scene) Texts() []TextCommand {
	var out []TextCommand
	for _, c := range s.Commands {
		if t, ok := c.(TextCommand); ok {
			out = append(out, t)
		}
	}
	return out
}

// Rects returns the rectangle commands in draw order.
func (s Scene) Rects() []RectCommand {
	var out []RectCommand
	for _, c := range s.Commands {
		if r, ok := c.(RectCommand); ok {
			out = append(out, r)
		}
	}
	return out
}

// FindText returns the first text command with the given content.
func (s Scene) FindText(text string) (TextCommand, bool) {
	for _, t := range s.Texts() {
		if t.Text == text {
			return t, true
		}
	}
	return TextCommand{}, false
}
