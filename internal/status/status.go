// Package status provides a thread-safe status tracker for the ledpanel daemon.
// It is written by the control loop and read by the heartbeat log and --print-state.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/ledpanel/internal/logic"
)

// Config contains daemon configuration for display.
type Config struct {
	Scenario    string
	IntervalMs  int64
	DebounceMs  int64
	HeartbeatMs int64
	Tolerance   int
	CenterX     uint16
	CenterY     uint16
}

// Tick describes the outcome of one loop iteration.
type Tick struct {
	Time    time.Time
	Enabled bool
	Mode    logic.ModeSnapshot
	Levels  logic.Levels
	Band    logic.Band
	Samples [logic.NumAxes]uint16
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type and safe to use after the lock is released.
type Snapshot struct {
	Last      Tick
	Ticks     uint64
	Edges     logic.EdgeCounts
	StartTime time.Time
	Now       time.Time
	Config    Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu            sync.RWMutex
	snap          Snapshot
	lastHeartbeat time.Time
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
		lastHeartbeat: startTime,
	}
}

// Update records the latest tick and edge counters.
// Called from the control loop on every tick.
func (t *Tracker) Update(tick Tick, edges logic.EdgeCounts) {
	t.mu.Lock()
	t.snap.Last = tick
	t.snap.Ticks++
	t.snap.Edges = edges
	t.mu.Unlock()
}

// CheckHeartbeat reports whether interval has elapsed since the last
// heartbeat (or startup), and if so starts a new interval.
// Returns false if interval is <= 0 (disabled) or no tick has run yet.
func (t *Tracker) CheckHeartbeat(now time.Time, interval time.Duration) bool {
	if interval <= 0 {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.snap.Ticks == 0 {
		return false
	}
	if now.Sub(t.lastHeartbeat) < interval {
		return false
	}
	t.lastHeartbeat = now
	return true
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
