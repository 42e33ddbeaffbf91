package logic

// DebounceWindowMs is the minimum gap between two accepted edges on one source.
const DebounceWindowMs = 100

// Debouncer filters contact bounce from button edges.
//
// Accept is only called from the edge context. Each source has its own slot,
// so handlers for different sources never touch the same cell.
type Debouncer struct {
	windowMs uint32
	last     [NumSources]uint32
}

// NewDebouncer creates a debouncer with the given window in milliseconds.
func NewDebouncer(windowMs uint32) *Debouncer {
	return &Debouncer{windowMs: windowMs}
}

// Accept reports whether an edge from src at nowMs is a genuine press.
// An accepted edge becomes the new reference for src; rejected edges do not
// move it. Uptime wraparound is not handled.
func (d *Debouncer) Accept(src Source, nowMs uint32) bool {
	if src >= NumSources {
		return false
	}
	if nowMs-d.last[src] <= d.windowMs {
		return false
	}
	d.last[src] = nowMs
	return true
}

// Window returns the debounce window in milliseconds.
func (d *Debouncer) Window() uint32 {
	return d.windowMs
}
