package logic

// BandTolerance is the half-width of the WITHIN band, in percent.
const BandTolerance = 10

// SimulationDelayMs is the pause after each simulated measurement step.
const SimulationDelayMs = 100

// Classify places measured relative to desired ± tolerance. It is evaluated
// fresh every tick; there is no memory of the previous band.
func Classify(measured, desired uint8, tolerance int) Band {
	m := int(measured)
	d := int(desired)
	switch {
	case m < d-tolerance:
		return BandBelow
	case m > d+tolerance:
		return BandAbove
	default:
		return BandWithin
	}
}

// BandChannel returns the indicator lit for a band.
// Dry is red, on target is green, too wet is blue.
func BandChannel(b Band) (Channel, bool) {
	switch b {
	case BandBelow:
		return ChannelRed, true
	case BandWithin:
		return ChannelGreen, true
	case BandAbove:
		return ChannelBlue, true
	}
	return 0, false
}

// BandLevels drives exactly one channel to on and the others to zero.
func BandLevels(b Band, on uint16) Levels {
	var l Levels
	if ch, ok := BandChannel(b); ok {
		l[ch] = on
	}
	return l
}

// ProportionalLevels drives red from the X distance and blue from the Y
// distance to center. Green is left at zero. When enabled is false every
// channel is zero regardless of the samples.
func ProportionalLevels(x, y, centerX, centerY uint16, enabled bool) Levels {
	var l Levels
	if !enabled {
		return l
	}
	l[ChannelRed] = Intensity(x, centerX)
	l[ChannelBlue] = Intensity(y, centerY)
	return l
}

// LinearLevels drives red from X and blue from Y scaled onto 0..max.
func LinearLevels(x, y, max uint16) Levels {
	var l Levels
	l[ChannelRed] = Scale(x, max)
	l[ChannelBlue] = Scale(y, max)
	return l
}

// Irrigate advances the simulated measurement one step toward desired.
// It only ever rises; watering reports whether a step was taken.
func Irrigate(measured, desired uint8) (next uint8, watering bool) {
	if measured < desired && measured < 100 {
		return measured + 1, true
	}
	return measured, false
}
