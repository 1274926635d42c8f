package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// AngleTo returns the screen-convention angle from (x0, y0) to (x1, y1):
// 0 points right (+x), -pi/2 points up.
func AngleTo(x0, y0, x1, y1 float64) float64 {
	return math.Atan2(y1-y0, x1-x0)
}

// Finite reports whether every argument is a usable number (no NaN, no Inf).
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
