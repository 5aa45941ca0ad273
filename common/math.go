package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Dist returns the euclidean distance between two points.
func Dist(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

// MoveToward advances (x, y) by at most step toward (tx, ty) and returns the
// new position plus the distance still remaining after the move.
func MoveToward(x, y, tx, ty, step float64) (float64, float64, float64) {
	d := Dist(x, y, tx, ty)
	if d <= step || d == 0 {
		return tx, ty, 0
	}
	nx := x + (tx-x)/d*step
	ny := y + (ty-y)/d*step
	return nx, ny, d - step
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
