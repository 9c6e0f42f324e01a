package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termsense/internal/osc"
)

// Screen is the subset of tcell.Screen the cursor applier needs.
type Screen interface {
	SetCursorStyle(style tcell.CursorStyle, color ...tcell.Color)
}

// Style maps a cursor shape to its tcell equivalent. Steady variants are
// used; blink control is not part of the shape protocol.
func Style(shape osc.CursorShape) tcell.CursorStyle {
	switch shape {
	case osc.CursorBarLeft:
		return tcell.CursorStyleSteadyBar
	case osc.CursorUnderline:
		return tcell.CursorStyleSteadyUnderline
	default:
		return tcell.CursorStyleSteadyBlock
	}
}

// Cursor applies cursor shape changes to a screen.
type Cursor struct {
	screen Screen
	mu     sync.Mutex
	shape  osc.CursorShape
}

// NewCursor creates a cursor applier for the given screen.
func NewCursor(screen Screen) *Cursor {
	return &Cursor{screen: screen, shape: osc.CursorBlock}
}

// Apply sets the screen's cursor style. Wire this as the session's
// OnCursorShape sink.
func (c *Cursor) Apply(shape osc.CursorShape) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if shape == c.shape {
		return
	}
	c.shape = shape
	c.screen.SetCursorStyle(Style(shape))
}

// Shape returns the last applied cursor shape.
func (c *Cursor) Shape() osc.CursorShape {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shape
}
