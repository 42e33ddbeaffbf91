// Package logic contains the pure control logic for the LED panel.
// This package has NO hardware dependencies (no GPIO, ADC, display, or time.Sleep).
// Time is always injectable as millisecond uptime stamps.
package logic

// MaxSample is the largest value of a 12-bit analog sample.
const MaxSample = 4095

// Board-specific joystick rest positions. These are calibration constants,
// not exact midpoints of the sample range.
const (
	DefaultCenterX = 2006
	DefaultCenterY = 1925
)

// Source identifies a push-button that raises edge events.
type Source uint8

const (
	SourcePrimary   Source = iota // button A
	SourceSecondary               // joystick push
	NumSources
)

func (s Source) String() string {
	switch s {
	case SourcePrimary:
		return "primary"
	case SourceSecondary:
		return "secondary"
	}
	return "unknown"
}

// Axis identifies an analog input channel.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	NumAxes
)

// Channel identifies an indicator output.
type Channel uint8

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	NumChannels
)

func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	}
	return "unknown"
}

// Levels holds one actuator level per channel, indexed by Channel.
type Levels [NumChannels]uint16

// Band classifies a measured value relative to a desired value.
type Band string

const (
	BandNone   Band = ""
	BandBelow  Band = "BELOW"
	BandWithin Band = "WITHIN"
	BandAbove  Band = "ABOVE"
)

// Clock returns monotonic uptime in milliseconds. It wraps at 2^32.
type Clock interface {
	NowMs() uint32
}

// EdgeCounts tracks accepted and rejected button edges since startup.
type EdgeCounts struct {
	PrimaryAccepted   uint32
	PrimaryRejected   uint32
	SecondaryAccepted uint32
	SecondaryRejected uint32
}
