// Package gpio provides push-button edge events and indicator outputs with
// hardware abstraction.
// The real implementations use the Linux GPIO character device and periph.io PWM.
// The fake implementations allow testing without hardware.
package gpio

import "github.com/sweeney/ledpanel/internal/logic"

// Actuator drives the indicator channels.
type Actuator interface {
	// Set writes a level to ch. Levels above the actuator's ceiling are clipped.
	Set(ch logic.Channel, level uint16) error

	// Close turns the outputs off and releases them.
	Close() error
}

// EdgeFunc is called on a falling edge of a button. It runs in the
// edge context and must not block.
type EdgeFunc func(src logic.Source)

// Button binds a source to a line offset.
type Button struct {
	Source logic.Source
	Pin    int
}

// Pin definitions (BCM numbering)
const (
	DefaultPinA      = 5  // button A
	DefaultPinB      = 22 // joystick push
	DefaultPinRed    = 12
	DefaultPinGreen  = 16
	DefaultPinBlue   = 13
	DefaultChip      = "gpiochip0"
	DefaultPWMFreqHz = 1000
)
