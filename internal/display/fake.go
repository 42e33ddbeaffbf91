package display

import "periph.io/x/devices/v3/ssd1306/image1bit"

// FakeRenderer records rendered frames for test assertions.
type FakeRenderer struct {
	// Frames contains every frame rendered.
	Frames []Frame

	// Image holds the rasterization of the last frame.
	Image *image1bit.VerticalLSB

	// RenderError, if set, will be returned by Render.
	RenderError error

	// Closed tracks if Close was called
	Closed bool
}

// NewFakeRenderer creates a FakeRenderer backed by a panel-sized image.
func NewFakeRenderer() *FakeRenderer {
	return &FakeRenderer{Image: image1bit.NewVerticalLSB(Bounds())}
}

// Render records f and rasterizes it.
func (f *FakeRenderer) Render(frame Frame) error {
	if f.RenderError != nil {
		return f.RenderError
	}
	f.Frames = append(f.Frames, frame)
	Rasterize(frame, f.Image)
	return nil
}

// Last returns the most recent frame, or nil.
func (f *FakeRenderer) Last() Frame {
	if len(f.Frames) == 0 {
		return nil
	}
	return f.Frames[len(f.Frames)-1]
}

// Close marks the renderer as closed.
func (f *FakeRenderer) Close() error {
	f.Closed = true
	return nil
}
