package vmath

import "math"

// Vec2 is a float pixel-space vector used for visual positions
type Vec2 struct {
	X, Y float64
}

// V2 builds a Vec2
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Len returns euclidean magnitude
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Approach moves a single axis value toward target by factor, snapping when within threshold
// A step that no longer changes the value also snaps, so the approach always terminates
// Returns the new value and whether it still differs from target
func Approach(cur, target, factor, threshold float64) (float64, bool) {
	if math.Abs(target-cur) <= threshold {
		return target, false
	}
	next := cur + (target-cur)*factor
	if next == cur {
		return target, false
	}
	return next, true
}

// WrapAngle folds an angle into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
