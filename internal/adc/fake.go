package adc

import (
	"errors"

	"github.com/sweeney/ledpanel/internal/logic"
)

// FakeSampler is a test double that returns scripted axis values.
type FakeSampler struct {
	// Samples contains scripted values per axis.
	// Each call to ReadAxis consumes the next value for that axis.
	Samples [logic.NumAxes][]uint16

	// index tracks current position per axis
	index [logic.NumAxes]int

	// Reads counts ReadAxis calls per axis.
	Reads [logic.NumAxes]int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by ReadAxis.
	ReadError error
}

// NewFakeSampler creates a FakeSampler with the given X and Y samples.
func NewFakeSampler(x, y []uint16) *FakeSampler {
	return &FakeSampler{Samples: [logic.NumAxes][]uint16{x, y}}
}

// ReadAxis returns the next scripted sample for axis.
// If samples are exhausted, returns the last sample repeatedly.
func (f *FakeSampler) ReadAxis(axis logic.Axis) (uint16, error) {
	if f.ReadError != nil {
		return 0, f.ReadError
	}
	if axis >= logic.NumAxes {
		return 0, errors.New("unknown axis")
	}

	samples := f.Samples[axis]
	if len(samples) == 0 {
		return 0, errors.New("no samples configured")
	}

	f.Reads[axis]++
	v := samples[f.index[axis]]
	if f.index[axis] < len(samples)-1 {
		f.index[axis]++
	}
	return v, nil
}

// Set replaces the script for axis with a single constant value.
func (f *FakeSampler) Set(axis logic.Axis, v uint16) {
	f.Samples[axis] = []uint16{v}
	f.index[axis] = 0
}

// Close marks the sampler as closed.
func (f *FakeSampler) Close() error {
	f.Closed = true
	return nil
}
