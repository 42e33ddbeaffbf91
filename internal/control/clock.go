package control

import (
	"time"

	"github.com/sweeney/ledpanel/internal/logic"
)

// MonotonicClock reports milliseconds since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// NowMs returns uptime in milliseconds, wrapping at 2^32.
func (c *MonotonicClock) NowMs() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

var _ logic.Clock = (*MonotonicClock)(nil)
