package adc

import (
	"fmt"

	"github.com/sweeney/ledpanel/internal/logic"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
)

// Joystick potentiometers are fed from the 3.3V rail.
const referenceVoltage = 3300 * physic.MilliVolt

// RealSampler reads joystick axes from an ADS1115 converter.
// X is wired to AIN0 and Y to AIN1.
type RealSampler struct {
	dev  *ads1x15.Dev
	pins [logic.NumAxes]ads1x15.PinADC
}

// NewRealSampler configures an ADS1115 at its default address on bus.
// host.Init must have been called.
func NewRealSampler(bus i2c.Bus) (*RealSampler, error) {
	dev, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		return nil, fmt.Errorf("open ads1115: %w", err)
	}

	s := &RealSampler{dev: dev}
	channels := [logic.NumAxes]ads1x15.Channel{ads1x15.Channel0, ads1x15.Channel1}
	for i, ch := range channels {
		pin, err := dev.PinForChannel(ch, referenceVoltage, 250*physic.Hertz, ads1x15.BestQuality)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("configure axis %d: %w", i, err)
		}
		s.pins[i] = pin
	}
	return s, nil
}

// ReadAxis performs a single-shot conversion and scales it to 12 bits.
func (s *RealSampler) ReadAxis(axis logic.Axis) (uint16, error) {
	if axis >= logic.NumAxes {
		return 0, fmt.Errorf("unknown axis %d", axis)
	}
	sample, err := s.pins[axis].Read()
	if err != nil {
		return 0, fmt.Errorf("read axis %d: %w", axis, err)
	}
	return fromVoltage(sample.V, referenceVoltage), nil
}

// Close halts the converter pins.
func (s *RealSampler) Close() error {
	var errs []error
	for i, pin := range s.pins {
		if pin == nil {
			continue
		}
		if err := pin.Halt(); err != nil {
			errs = append(errs, fmt.Errorf("halt axis %d: %w", i, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// fromVoltage maps 0..ref onto 0..4095, clipping anything outside.
func fromVoltage(v, ref physic.ElectricPotential) uint16 {
	if v <= 0 || ref <= 0 {
		return 0
	}
	if v >= ref {
		return logic.MaxSample
	}
	return uint16(int64(v) * logic.MaxSample / int64(ref))
}
