// Package vec2 provides 2D vector geometry primitives used throughout the
// navigation core: the velocity-obstacle solver and the navigation mesh.
package vec2

import "math"

// Vec2 is a 2D vector or point. All operations are pure.
type Vec2 struct {
	X, Y float64
}

// Zero is the additive identity.
var Zero = Vec2{}

// New returns the vector (x, y).
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a + b.
func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns s * v.
func Scale(s float64, v Vec2) Vec2 {
	return Vec2{X: s * v.X, Y: s * v.Y}
}

// Neg returns -v.
func Neg(v Vec2) Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns a·b.
func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Det returns the perp-dot (2D cross) product a.x*b.y - a.y*b.x.
// Positive when b is counterclockwise of a.
func Det(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// AbsSq returns |v|².
func AbsSq(v Vec2) float64 {
	return Dot(v, v)
}

// Abs returns |v|.
func Abs(v Vec2) float64 {
	return math.Sqrt(AbsSq(v))
}

// DistSq returns the squared distance between a and b.
func DistSq(a, b Vec2) float64 {
	return AbsSq(Sub(b, a))
}

// Dist returns the distance between a and b.
func Dist(a, b Vec2) float64 {
	return math.Sqrt(DistSq(a, b))
}

// Normalize returns v scaled to unit length. Precondition: v is non-zero.
func Normalize(v Vec2) Vec2 {
	return Scale(1/Abs(v), v)
}

// Normal returns the unit vector perpendicular to (b-a), rotated -90°
// (i.e. (dy, -dx) normalized).
func Normal(a, b Vec2) Vec2 {
	d := Sub(b, a)
	return Normalize(Vec2{X: d.Y, Y: -d.X})
}

// Project returns the foot of the perpendicular from p onto the line
// through a and b.
func Project(p, a, b Vec2) Vec2 {
	ab := Sub(b, a)
	denom := AbsSq(ab)
	if denom == 0 {
		return a
	}
	t := Dot(Sub(p, a), ab) / denom
	return Add(a, Scale(t, ab))
}

// Atan returns the angle of v in radians, in [-π, π].
func Atan(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// Sqr returns x*x.
func Sqr(x float64) float64 {
	return x * x
}

// TriArea2 returns twice the signed area of triangle (a, b, c). Negative
// when a, b, c wind clockwise; this is the system's winding convention,
// matching the point-in-triangle sign test and the mesh construction check.
func TriArea2(a, b, c Vec2) float64 {
	return Det(Sub(c, a), Sub(b, a))
}
