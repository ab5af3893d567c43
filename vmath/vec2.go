package vmath

import "math"

// Vec2 is a float64 2D vector in world units (pixels, y grows downward)
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns v.X*o.X + v.Y*o.Y
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// MagSq returns squared magnitude without sqrt
func (v Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// Normalize returns unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Mag()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// Midpoint returns the point halfway between a and b
func Midpoint(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// DistSq returns squared distance between two points
func DistSq(a, b Vec2) float64 {
	return b.Sub(a).MagSq()
}

// Dist returns Euclidean distance between two points
func Dist(a, b Vec2) float64 {
	return math.Sqrt(DistSq(a, b))
}

// RemoveNormal subtracts fraction of the velocity component along unit normal n
// fraction 1 eliminates the normal component entirely
func RemoveNormal(vel, n Vec2, fraction float64) Vec2 {
	vn := vel.Dot(n)
	return vel.Sub(n.Scale(vn * fraction))
}

// Clamp restricts x to [lo, hi]; lo wins when the range is inverted
func Clamp(x, lo, hi float64) float64 {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}

// ClampInt restricts x to [lo, hi]
func ClampInt(x, lo, hi int) int {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}

// ApproachZero reduces |x| by dec without crossing zero
func ApproachZero(x, dec float64) float64 {
	if math.Abs(x) <= dec {
		return 0
	}
	if x > 0 {
		return x - dec
	}
	return x + dec
}
