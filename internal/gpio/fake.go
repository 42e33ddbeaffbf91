package gpio

import (
	"errors"
	"sync"

	"github.com/sweeney/ledpanel/internal/logic"
)

// Write records a single actuator write.
type Write struct {
	Channel logic.Channel
	Level   uint16
}

// FakeActuator records actuator writes for test assertions.
type FakeActuator struct {
	// Levels holds the last level written to each channel.
	Levels logic.Levels

	// Writes contains every write in order.
	Writes []Write

	// MaxLevel, if non-zero, clips written levels like the real outputs.
	MaxLevel uint16

	// SetError, if set, will be returned by Set.
	SetError error

	// Closed tracks if Close was called
	Closed bool
}

// NewFakeActuator creates a FakeActuator that clips at maxLevel (0 disables clipping).
func NewFakeActuator(maxLevel uint16) *FakeActuator {
	return &FakeActuator{MaxLevel: maxLevel}
}

// Set records the write.
func (f *FakeActuator) Set(ch logic.Channel, level uint16) error {
	if f.SetError != nil {
		return f.SetError
	}
	if ch >= logic.NumChannels {
		return errors.New("unknown channel")
	}
	if f.MaxLevel != 0 && level > f.MaxLevel {
		level = f.MaxLevel
	}
	f.Levels[ch] = level
	f.Writes = append(f.Writes, Write{Channel: ch, Level: level})
	return nil
}

// Close zeroes all levels and marks the actuator closed.
func (f *FakeActuator) Close() error {
	f.Levels = logic.Levels{}
	f.Closed = true
	return nil
}

// Reset clears recorded writes.
func (f *FakeActuator) Reset() {
	f.Levels = logic.Levels{}
	f.Writes = nil
	f.SetError = nil
	f.Closed = false
}

// FakeButtons delivers scripted presses to an EdgeFunc.
type FakeButtons struct {
	mu      sync.Mutex
	onEdge  EdgeFunc
	Presses int
	Closed  bool
}

// NewFakeButtons creates FakeButtons calling onEdge for each press.
func NewFakeButtons(onEdge EdgeFunc) *FakeButtons {
	return &FakeButtons{onEdge: onEdge}
}

// Press simulates a falling edge on src. Presses after Close are dropped.
func (f *FakeButtons) Press(src logic.Source) {
	f.mu.Lock()
	if f.Closed {
		f.mu.Unlock()
		return
	}
	f.Presses++
	onEdge := f.onEdge
	f.mu.Unlock()

	onEdge(src)
}

// Close stops edge delivery.
func (f *FakeButtons) Close() error {
	f.mu.Lock()
	f.Closed = true
	f.mu.Unlock()
	return nil
}
