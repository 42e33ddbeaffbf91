package logic

import "sync/atomic"

// DefaultTarget is the centered target percentage used at startup.
const DefaultTarget = 50

// ModeState holds the flags shared by the edge context and the loop context.
// Every field is its own atomic cell; no update spans two fields.
type ModeState struct {
	powered  atomic.Bool
	manual   atomic.Bool
	ledOn    atomic.Bool
	border   atomic.Bool
	target   atomic.Uint32
	measured atomic.Uint32
}

// ModeSnapshot is a plain copy of ModeState taken at a tick boundary.
type ModeSnapshot struct {
	Powered  bool
	Manual   bool
	LEDOn    bool
	Border   bool
	Target   uint8
	Measured uint8
}

// NewModeState returns the startup state: powered, automatic, centered target.
func NewModeState() *ModeState {
	m := &ModeState{}
	m.powered.Store(true)
	m.target.Store(DefaultTarget)
	return m
}

func (m *ModeState) Powered() bool { return m.powered.Load() }
func (m *ModeState) Manual() bool  { return m.manual.Load() }
func (m *ModeState) LEDOn() bool   { return m.ledOn.Load() }
func (m *ModeState) Border() bool  { return m.border.Load() }

func (m *ModeState) SetPowered(v bool) { m.powered.Store(v) }
func (m *ModeState) SetManual(v bool)  { m.manual.Store(v) }
func (m *ModeState) SetLEDOn(v bool)   { m.ledOn.Store(v) }
func (m *ModeState) SetBorder(v bool)  { m.border.Store(v) }

// TogglePowered flips the powered flag and returns the new value.
func (m *ModeState) TogglePowered() bool { return toggle(&m.powered) }

// ToggleManual flips between manual and automatic operation.
func (m *ModeState) ToggleManual() bool { return toggle(&m.manual) }

// ToggleLED flips the green indicator flag.
func (m *ModeState) ToggleLED() bool { return toggle(&m.ledOn) }

// ToggleBorder flips the display border flag.
func (m *ModeState) ToggleBorder() bool { return toggle(&m.border) }

// Target returns the desired percentage.
func (m *ModeState) Target() uint8 { return uint8(m.target.Load()) }

// SetTarget stores the desired percentage, clamped to 100.
func (m *ModeState) SetTarget(p uint8) { m.target.Store(uint32(clampPercent(p))) }

// Measured returns the measured percentage.
func (m *ModeState) Measured() uint8 { return uint8(m.measured.Load()) }

// SetMeasured stores the measured percentage, clamped to 100.
func (m *ModeState) SetMeasured(p uint8) { m.measured.Store(uint32(clampPercent(p))) }

// Snapshot copies every field with one load each. Fields may come from
// either side of a concurrent edge, but each one is untorn.
func (m *ModeState) Snapshot() ModeSnapshot {
	return ModeSnapshot{
		Powered:  m.powered.Load(),
		Manual:   m.manual.Load(),
		LEDOn:    m.ledOn.Load(),
		Border:   m.border.Load(),
		Target:   uint8(m.target.Load()),
		Measured: uint8(m.measured.Load()),
	}
}

func toggle(b *atomic.Bool) bool {
	for {
		old := b.Load()
		if b.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func clampPercent(p uint8) uint8 {
	if p > 100 {
		return 100
	}
	return p
}
