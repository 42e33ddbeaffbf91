// Package adc provides joystick axis sampling with hardware abstraction.
// The real implementation reads an ADS1115 over I2C.
// The fake implementation allows testing without hardware.
package adc

import "github.com/sweeney/ledpanel/internal/logic"

// Sampler reads analog axes.
type Sampler interface {
	// ReadAxis returns the latest 12-bit sample (0..4095) for axis.
	// Every call performs a fresh conversion; nothing is cached.
	ReadAxis(axis logic.Axis) (uint16, error)

	// Close releases ADC resources.
	Close() error
}
