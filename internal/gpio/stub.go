//go:build !linux

package gpio

import (
	"errors"

	"github.com/sweeney/ledpanel/internal/logic"
)

// RealButtons is not available on non-Linux platforms.
type RealButtons struct{}

// NewRealButtons returns an error on non-Linux platforms.
func NewRealButtons(chipName string, buttons []Button, onEdge EdgeFunc) (*RealButtons, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

// Close is not implemented on non-Linux platforms.
func (b *RealButtons) Close() error {
	return nil
}

// DigitalOutputs is not available on non-Linux platforms.
type DigitalOutputs struct{}

// NewDigitalOutputs returns an error on non-Linux platforms.
func NewDigitalOutputs(chipName string, pins [logic.NumChannels]int) (*DigitalOutputs, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

// Set is not implemented on non-Linux platforms.
func (o *DigitalOutputs) Set(ch logic.Channel, level uint16) error {
	return errors.New("gpio: not supported")
}

// Close is not implemented on non-Linux platforms.
func (o *DigitalOutputs) Close() error {
	return nil
}
