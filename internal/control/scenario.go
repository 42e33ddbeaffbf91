// Package control runs the sample-decide-actuate-render loop and the
// button edge handler for one scenario.
package control

import (
	"fmt"
	"time"

	"github.com/sweeney/ledpanel/internal/adc"
	"github.com/sweeney/ledpanel/internal/display"
	"github.com/sweeney/ledpanel/internal/logic"
)

// Output is what one tick of a scenario decided.
type Output struct {
	Levels  logic.Levels
	Frame   display.Frame
	Band    logic.Band
	Samples [logic.NumAxes]uint16

	// Delay is extra time to wait before the next tick.
	Delay time.Duration
}

// Scenario is one control policy with its button bindings and screen layout.
type Scenario interface {
	Name() string

	// Interval is the default pause between ticks.
	Interval() time.Duration

	// MaxLevel is the actuator ceiling the policy produces.
	MaxLevel() uint16

	// Enabled reports whether the loop should run the policy this tick.
	Enabled(m logic.ModeSnapshot) bool

	// DisabledMessage is shown while Enabled is false.
	DisabledMessage() string

	// Step samples, maps and runs the policy using m as the only view of
	// mode state for the tick.
	Step(m logic.ModeSnapshot, s adc.Sampler) (Output, error)

	// HandleEdge applies an accepted button edge. It runs in the edge
	// context: single-word mode writes only. Returns a diagnostic and
	// whether the source is bound at all.
	HandleEdge(src logic.Source) (string, bool)
}

// Scenario names.
const (
	ScenarioJoystick   = "joystick"
	ScenarioCursor     = "cursor"
	ScenarioIrrigation = "irrigation"
)

// Names lists the known scenarios.
var Names = []string{ScenarioJoystick, ScenarioCursor, ScenarioIrrigation}

// Options tunes scenario construction.
type Options struct {
	CenterX   uint16
	CenterY   uint16
	Tolerance int
}

// DefaultOptions returns the board calibration and band defaults.
func DefaultOptions() Options {
	return Options{
		CenterX:   logic.DefaultCenterX,
		CenterY:   logic.DefaultCenterY,
		Tolerance: logic.BandTolerance,
	}
}

// NewScenario builds the named scenario over mode.
func NewScenario(name string, mode *logic.ModeState, opts Options) (Scenario, error) {
	switch name {
	case ScenarioJoystick:
		return NewJoystick(mode), nil
	case ScenarioCursor:
		return NewCursor(mode, opts.CenterX, opts.CenterY), nil
	case ScenarioIrrigation:
		if opts.Tolerance < 0 {
			return nil, fmt.Errorf("tolerance must not be negative: %d", opts.Tolerance)
		}
		return NewIrrigation(mode, opts.Tolerance), nil
	}
	return nil, fmt.Errorf("unknown scenario %q (want one of %v)", name, Names)
}

func readAxes(s adc.Sampler) ([logic.NumAxes]uint16, error) {
	var out [logic.NumAxes]uint16
	for axis := logic.Axis(0); axis < logic.NumAxes; axis++ {
		v, err := s.ReadAxis(axis)
		if err != nil {
			return out, fmt.Errorf("sample axis %d: %w", axis, err)
		}
		out[axis] = logic.ClampSample(v)
	}
	return out, nil
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
