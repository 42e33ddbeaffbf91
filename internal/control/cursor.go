package control

import (
	"time"

	"github.com/sweeney/ledpanel/internal/adc"
	"github.com/sweeney/ledpanel/internal/display"
	"github.com/sweeney/ledpanel/internal/logic"
)

// CursorSize is the side of the square cursor in pixels.
const CursorSize = 8

// Cursor moves a square across the display with the joystick and lights
// red and blue by distance from the rest position. Button A toggles the PWM
// LEDs; the joystick button toggles the green LED and the display border.
type Cursor struct {
	mode    *logic.ModeState
	centerX uint16
	centerY uint16
}

// NewCursor creates the cursor scenario with the given rest position.
func NewCursor(mode *logic.ModeState, centerX, centerY uint16) *Cursor {
	return &Cursor{mode: mode, centerX: centerX, centerY: centerY}
}

func (c *Cursor) Name() string                    { return ScenarioCursor }
func (c *Cursor) Interval() time.Duration         { return 10 * time.Millisecond }
func (c *Cursor) MaxLevel() uint16                { return logic.MaxSample }
func (c *Cursor) Enabled(logic.ModeSnapshot) bool { return true }
func (c *Cursor) DisabledMessage() string         { return "" }

// Step uses Powered as the PWM enable flag. The green LED is independent of it.
func (c *Cursor) Step(m logic.ModeSnapshot, s adc.Sampler) (Output, error) {
	axes, err := readAxes(s)
	if err != nil {
		return Output{}, err
	}
	x, y := axes[logic.AxisX], axes[logic.AxisY]

	levels := logic.ProportionalLevels(x, y, c.centerX, c.centerY, m.Powered)
	if m.LEDOn {
		levels[logic.ChannelGreen] = logic.MaxSample
	}

	frame := display.Frame{
		display.Rect{X: 0, Y: 0, W: display.Width, H: display.Height, Visible: m.Border},
		display.Rect{
			X:       logic.Position(x, display.Width-CursorSize),
			Y:       logic.PositionInverted(y, display.Height-CursorSize),
			W:       CursorSize,
			H:       CursorSize,
			Filled:  true,
			Visible: true,
		},
	}

	return Output{Levels: levels, Samples: axes, Frame: frame}, nil
}

func (c *Cursor) HandleEdge(src logic.Source) (string, bool) {
	switch src {
	case logic.SourcePrimary:
		return "PWM LEDs " + onOff(c.mode.TogglePowered()), true
	case logic.SourceSecondary:
		led := c.mode.ToggleLED()
		border := c.mode.ToggleBorder()
		return "green LED " + onOff(led) + ", border " + onOff(border), true
	}
	return "", false
}
