package display

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// SSD1306 renders frames on an SSD1306 panel.
type SSD1306 struct {
	dev *ssd1306.Dev
	img *image1bit.VerticalLSB
}

// NewSSD1306 opens a 128x64 SSD1306 at its default address on bus.
// host.Init must have been called.
func NewSSD1306(bus i2c.Bus) (*SSD1306, error) {
	opts := ssd1306.DefaultOpts
	opts.W = Width
	opts.H = Height
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		return nil, fmt.Errorf("open ssd1306: %w", err)
	}
	return &SSD1306{
		dev: dev,
		img: image1bit.NewVerticalLSB(dev.Bounds()),
	}, nil
}

// Render rasterizes f into the frame buffer and sends it in one transfer.
func (s *SSD1306) Render(f Frame) error {
	Rasterize(f, s.img)
	if err := s.dev.Draw(s.img.Bounds(), s.img, image.Point{}); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

// Close blanks the panel and turns it off.
func (s *SSD1306) Close() error {
	if err := s.dev.Halt(); err != nil {
		return fmt.Errorf("halt display: %w", err)
	}
	return nil
}
