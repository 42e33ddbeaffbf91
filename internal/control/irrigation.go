package control

import (
	"fmt"
	"time"

	"github.com/sweeney/ledpanel/internal/adc"
	"github.com/sweeney/ledpanel/internal/display"
	"github.com/sweeney/ledpanel/internal/logic"
)

// Irrigation keeps a simulated soil humidity within a band around a target.
//
// The X axis sets the target. In manual mode the Y axis is the humidity
// sensor; in automatic mode humidity is simulated and rises one percent per
// tick while below target, followed by an extra SimulationDelayMs wait.
// Button A switches the system on and off, the joystick button switches
// between manual and automatic.
type Irrigation struct {
	mode      *logic.ModeState
	tolerance int
}

// NewIrrigation creates the irrigation scenario with a ±tolerance band.
func NewIrrigation(mode *logic.ModeState, tolerance int) *Irrigation {
	return &Irrigation{mode: mode, tolerance: tolerance}
}

func (ir *Irrigation) Name() string                      { return ScenarioIrrigation }
func (ir *Irrigation) Interval() time.Duration           { return 500 * time.Millisecond }
func (ir *Irrigation) MaxLevel() uint16                  { return logic.MaxSample }
func (ir *Irrigation) Enabled(m logic.ModeSnapshot) bool { return m.Powered }
func (ir *Irrigation) DisabledMessage() string           { return "SYSTEM OFF" }

func (ir *Irrigation) Step(m logic.ModeSnapshot, s adc.Sampler) (Output, error) {
	axes, err := readAxes(s)
	if err != nil {
		return Output{}, err
	}

	target := logic.Percent(axes[logic.AxisX])
	measured := m.Measured
	var delay time.Duration
	if m.Manual {
		measured = logic.Percent(axes[logic.AxisY])
	} else {
		var watering bool
		if measured, watering = logic.Irrigate(measured, target); watering {
			delay = logic.SimulationDelayMs * time.Millisecond
		}
	}
	ir.mode.SetTarget(target)
	ir.mode.SetMeasured(measured)

	band := logic.Classify(measured, target, ir.tolerance)
	mode := "AUTO"
	if m.Manual {
		mode = "MANUAL"
	}

	return Output{
		Levels:  logic.BandLevels(band, logic.MaxSample),
		Band:    band,
		Samples: axes,
		Delay:   delay,
		Frame: display.Lines(
			fmt.Sprintf("Humidity: %d%%", measured),
			fmt.Sprintf("Target: %d%%", target),
			"Mode: "+mode,
			"Band: "+string(band),
		),
	}, nil
}

func (ir *Irrigation) HandleEdge(src logic.Source) (string, bool) {
	switch src {
	case logic.SourcePrimary:
		return "system " + onOff(ir.mode.TogglePowered()), true
	case logic.SourceSecondary:
		if ir.mode.ToggleManual() {
			return "mode MANUAL", true
		}
		return "mode AUTO", true
	}
	return "", false
}
