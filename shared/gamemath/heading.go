package gamemath

import "math"

// DegToRad converts a heading in degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// HeadingVector returns the unit displacement for a heading in degrees.
// Heading 0 points along +Y and positive headings rotate counter-clockwise,
// so a heading of 90 points along -X.
func HeadingVector(deg float64) (dx, dy float64) {
	rad := DegToRad(deg)
	return -math.Sin(rad), math.Cos(rad)
}

// InsideBound reports whether v lies strictly within (-bound, bound).
func InsideBound(v, bound float64) bool {
	return v < bound && v > -bound
}

// ClampAbs clamps a value to [-max, max].
func ClampAbs(v, max float64) float64 {
	if v > max {
		return max
	}
	if v < -max {
		return -max
	}
	return v
}
