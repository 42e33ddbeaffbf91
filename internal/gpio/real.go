//go:build linux

package gpio

import (
	"fmt"

	"github.com/sweeney/ledpanel/internal/logic"
	"github.com/warthog618/go-gpiocdev"
)

// RealButtons watches push-buttons using the Linux GPIO character device.
// Each line has its own watcher goroutine; that goroutine is the edge context.
type RealButtons struct {
	chip  *gpiocdev.Chip
	lines []*gpiocdev.Line
}

// NewRealButtons requests each button as a pulled-up input and calls onEdge
// on every falling edge (button pressed to ground).
func NewRealButtons(chipName string, buttons []Button, onEdge EdgeFunc) (*RealButtons, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	b := &RealButtons{chip: chip}
	for _, btn := range buttons {
		src := btn.Source
		line, err := chip.RequestLine(btn.Pin,
			gpiocdev.AsInput,
			gpiocdev.WithPullUp,
			gpiocdev.WithFallingEdge,
			gpiocdev.WithEventHandler(func(gpiocdev.LineEvent) {
				onEdge(src)
			}))
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("request %s button pin %d: %w", src, btn.Pin, err)
		}
		b.lines = append(b.lines, line)
	}
	return b, nil
}

// Close stops edge delivery and releases the lines.
// Lines are reconfigured to plain inputs without edge detection first.
func (b *RealButtons) Close() error {
	var errs []error
	for i, line := range b.lines {
		if err := line.Reconfigure(gpiocdev.AsInput, gpiocdev.WithoutEdges); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure button %d: %w", i, err))
		}
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close button %d: %w", i, err))
		}
	}
	if b.chip != nil {
		if err := b.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// DigitalOutputs drives indicators as plain on/off lines.
type DigitalOutputs struct {
	chip  *gpiocdev.Chip
	lines [logic.NumChannels]*gpiocdev.Line
}

// NewDigitalOutputs requests one output line per channel, initially low.
func NewDigitalOutputs(chipName string, pins [logic.NumChannels]int) (*DigitalOutputs, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	o := &DigitalOutputs{chip: chip}
	for ch, pin := range pins {
		line, err := chip.RequestLine(pin, gpiocdev.AsOutput(0))
		if err != nil {
			o.Close()
			return nil, fmt.Errorf("request %s pin %d: %w", logic.Channel(ch), pin, err)
		}
		o.lines[ch] = line
	}
	return o, nil
}

// Set drives ch high for any non-zero level.
func (o *DigitalOutputs) Set(ch logic.Channel, level uint16) error {
	if ch >= logic.NumChannels {
		return fmt.Errorf("unknown channel %d", ch)
	}
	if err := o.lines[ch].SetValue(digitalValue(level)); err != nil {
		return fmt.Errorf("set %s: %w", ch, err)
	}
	return nil
}

// Close drives every line low, returns it to an input and releases it.
func (o *DigitalOutputs) Close() error {
	var errs []error
	for ch, line := range o.lines {
		if line == nil {
			continue
		}
		if err := line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear %s: %w", logic.Channel(ch), err))
		}
		if err := line.Reconfigure(gpiocdev.AsInput); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure %s: %w", logic.Channel(ch), err))
		}
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", logic.Channel(ch), err))
		}
	}
	if o.chip != nil {
		if err := o.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
