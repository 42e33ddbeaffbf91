package logic

import "sync/atomic"

// FakeClock is a settable Clock for tests.
type FakeClock struct {
	ms atomic.Uint32
}

// NewFakeClock creates a FakeClock reading startMs.
func NewFakeClock(startMs uint32) *FakeClock {
	c := &FakeClock{}
	c.ms.Store(startMs)
	return c
}

// NowMs returns the current fake uptime.
func (c *FakeClock) NowMs() uint32 {
	return c.ms.Load()
}

// Set moves the clock to ms.
func (c *FakeClock) Set(ms uint32) {
	c.ms.Store(ms)
}

// Advance moves the clock forward by ms.
func (c *FakeClock) Advance(ms uint32) {
	c.ms.Add(ms)
}
