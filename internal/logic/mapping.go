package logic

// ClampSample limits v to the 12-bit sample range.
func ClampSample(v uint16) uint16 {
	if v > MaxSample {
		return MaxSample
	}
	return v
}

// Intensity returns the distance of value from center.
// Both inputs are clamped first since centers are calibration constants.
func Intensity(value, center uint16) uint16 {
	v := ClampSample(value)
	c := ClampSample(center)
	if v > c {
		return v - c
	}
	return c - v
}

// Position maps a sample onto [0, span].
func Position(value uint16, span int) int {
	if span <= 0 {
		return 0
	}
	return clampInt(int(ClampSample(value))*span/MaxSample, 0, span)
}

// PositionInverted maps a sample onto [0, span] with the axis reversed.
// The Y axis uses this: the stick reads high at the top, the display grows down.
func PositionInverted(value uint16, span int) int {
	if span <= 0 {
		return 0
	}
	return clampInt((MaxSample-int(ClampSample(value)))*span/MaxSample, 0, span)
}

// Percent maps a sample onto 0..100.
func Percent(value uint16) uint8 {
	return uint8(uint32(ClampSample(value)) * 100 / MaxSample)
}

// FromPercent maps 0..100 back onto the sample range.
func FromPercent(p uint8) uint16 {
	return uint16(uint32(clampPercent(p)) * MaxSample / 100)
}

// Scale maps a sample linearly onto 0..max.
func Scale(value, max uint16) uint16 {
	return uint16(uint32(ClampSample(value)) * uint32(max) / MaxSample)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
