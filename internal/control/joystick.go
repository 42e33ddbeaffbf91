package control

import (
	"fmt"
	"time"

	"github.com/sweeney/ledpanel/internal/adc"
	"github.com/sweeney/ledpanel/internal/display"
	"github.com/sweeney/ledpanel/internal/logic"
)

// JoystickMaxLevel is the PWM wrap of the raw joystick scenario.
const JoystickMaxLevel = 1023

// Joystick maps each axis straight onto an LED: red follows X, blue follows Y.
// Button A toggles the green LED.
type Joystick struct {
	mode *logic.ModeState
}

// NewJoystick creates the raw joystick scenario.
func NewJoystick(mode *logic.ModeState) *Joystick {
	return &Joystick{mode: mode}
}

func (j *Joystick) Name() string                    { return ScenarioJoystick }
func (j *Joystick) Interval() time.Duration         { return 100 * time.Millisecond }
func (j *Joystick) MaxLevel() uint16                { return JoystickMaxLevel }
func (j *Joystick) Enabled(logic.ModeSnapshot) bool { return true }
func (j *Joystick) DisabledMessage() string         { return "" }

func (j *Joystick) Step(m logic.ModeSnapshot, s adc.Sampler) (Output, error) {
	axes, err := readAxes(s)
	if err != nil {
		return Output{}, err
	}
	x, y := axes[logic.AxisX], axes[logic.AxisY]

	levels := logic.LinearLevels(x, y, JoystickMaxLevel)
	if m.LEDOn {
		levels[logic.ChannelGreen] = JoystickMaxLevel
	}

	return Output{
		Levels:  levels,
		Samples: axes,
		Frame:   display.Lines(fmt.Sprintf("X: %d  Y: %d", x, y)),
	}, nil
}

func (j *Joystick) HandleEdge(src logic.Source) (string, bool) {
	if src != logic.SourcePrimary {
		return "", false
	}
	return "green LED " + onOff(j.mode.ToggleLED()), true
}
