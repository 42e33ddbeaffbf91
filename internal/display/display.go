// Package display renders status frames on a 128x64 monochrome panel.
// The real implementation drives an SSD1306 over I2C via periph.io.
// The fake implementation records frames for tests.
package display

import (
	"image"
	"image/draw"
)

// Panel geometry.
const (
	Width      = 128
	Height     = 64
	LineHeight = 13
)

// Bounds returns the panel rectangle.
func Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// DrawCommand is one element of a frame: Text or Rect.
type DrawCommand interface {
	draw(dst draw.Image)
}

// Text draws s with its top-left corner at (X, Y).
type Text struct {
	X, Y int
	S    string
}

// Rect draws a W×H rectangle with its top-left corner at (X, Y).
// Invisible rectangles are skipped.
type Rect struct {
	X, Y, W, H int
	Filled     bool
	Visible    bool
}

// Frame is the full contents of the display. Each render replaces the
// previous frame entirely.
type Frame []DrawCommand

// Lines lays out one text line per row from the top of the panel.
func Lines(lines ...string) Frame {
	f := make(Frame, 0, len(lines))
	for i, s := range lines {
		f = append(f, Text{X: 0, Y: i * LineHeight, S: s})
	}
	return f
}

// Texts returns the strings of every Text command in order.
func (f Frame) Texts() []string {
	var out []string
	for _, cmd := range f {
		if t, ok := cmd.(Text); ok {
			out = append(out, t.S)
		}
	}
	return out
}

// Renderer shows frames on a display.
type Renderer interface {
	// Render clears the display, draws f and flushes it in one transfer.
	Render(f Frame) error

	// Close blanks and releases the display.
	Close() error
}
