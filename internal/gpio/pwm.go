package gpio

import (
	"fmt"

	"github.com/sweeney/ledpanel/internal/logic"
	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
)

// PWMOutputs drives indicators with hardware PWM through periph.io.
type PWMOutputs struct {
	pins     [logic.NumChannels]pgpio.PinIO
	maxLevel uint16
	freq     physic.Frequency
}

// NewPWMOutputs looks up one pin per channel by name ("GPIO12") and maps
// levels 0..maxLevel onto the full duty cycle. host.Init must have been called.
func NewPWMOutputs(names [logic.NumChannels]string, maxLevel uint16, freq physic.Frequency) (*PWMOutputs, error) {
	if maxLevel == 0 {
		return nil, fmt.Errorf("pwm: max level must be positive")
	}
	o := &PWMOutputs{maxLevel: maxLevel, freq: freq}
	for ch, name := range names {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("pwm: %s pin %q not found", logic.Channel(ch), name)
		}
		o.pins[ch] = p
	}
	return o, nil
}

// Set writes the duty cycle for ch. Levels above the ceiling are clipped.
func (o *PWMOutputs) Set(ch logic.Channel, level uint16) error {
	if ch >= logic.NumChannels {
		return fmt.Errorf("unknown channel %d", ch)
	}
	if err := o.pins[ch].PWM(duty(level, o.maxLevel), o.freq); err != nil {
		return fmt.Errorf("pwm %s: %w", ch, err)
	}
	return nil
}

// Close stops PWM and drives every pin low.
func (o *PWMOutputs) Close() error {
	var errs []error
	for ch, p := range o.pins {
		if p == nil {
			continue
		}
		if err := p.Halt(); err != nil {
			errs = append(errs, fmt.Errorf("halt %s: %w", logic.Channel(ch), err))
		}
		if err := p.Out(pgpio.Low); err != nil {
			errs = append(errs, fmt.Errorf("clear %s: %w", logic.Channel(ch), err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// duty maps 0..maxLevel onto 0..DutyMax, clipping above maxLevel.
func duty(level, maxLevel uint16) pgpio.Duty {
	if maxLevel == 0 {
		return 0
	}
	if level > maxLevel {
		level = maxLevel
	}
	return pgpio.Duty(uint64(level) * uint64(pgpio.DutyMax) / uint64(maxLevel))
}

// digitalValue maps a level onto a line value.
func digitalValue(level uint16) int {
	if level > 0 {
		return 1
	}
	return 0
}
