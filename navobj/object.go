// Package navobj defines the polymorphic obstacle/object model consumed by
// the agent's velocity-obstacle construction: mobile and static circles, and
// convex static obstacles.
package navobj

import (
	"math"

	"github.com/JoelSalzesson/ArNavNav/vec2"
)

// Object is anything an agent can build a velocity obstacle against: a
// circular body (mobile or static) or a convex polygon obstacle.
type Object interface {
	// Position returns the object's reference point. For a circle this is
	// its center; for a convex obstacle it is any representative interior
	// point (its centroid), used only for bookkeeping, never geometry.
	Position() vec2.Vec2

	// DistSqToSurface returns the squared distance from p to the nearest
	// point on the object's surface, or zero if p is inside the object.
	DistSqToSurface(p vec2.Vec2) float64

	// IsCircle reports whether this object can be treated as a circle
	// (mobile or static) for velocity-obstacle construction. Exhaustive
	// matching in agent package: circle vs. convex obstacle.
	IsCircle() bool
}

// CircleLike is implemented by any Object that behaves as a circle for
// velocity-obstacle construction: a static circular obstacle, or the body
// of a mobile agent.
type CircleLike interface {
	Object
	// CircleGeometry returns the circle's center, radius, whether it is
	// mobile (an agent, versus an immobile obstacle), and — meaningful
	// only when mobile — its current and preferred velocity.
	CircleGeometry() (center vec2.Vec2, radius float64, mobile bool, velocity, prefVelocity vec2.Vec2)
}

// Circle is a circular object: a static obstacle, or the body of a mobile
// agent.
type Circle struct {
	Center vec2.Vec2
	Radius float64
	// Mobile marks whether this circle has a meaningful Velocity/PrefVelocity
	// (an agent), as opposed to an immobile obstacle.
	Mobile bool
	// Velocity and PrefVelocity are only meaningful when Mobile is true.
	// The Agent type embeds and keeps these in sync every tick; a bare
	// Circle used as a static obstacle leaves them zero.
	Velocity     vec2.Vec2
	PrefVelocity vec2.Vec2
}

// NewStaticCircle returns an immobile circular obstacle.
func NewStaticCircle(center vec2.Vec2, radius float64) *Circle {
	return &Circle{Center: center, Radius: radius}
}

// Position implements Object.
func (c *Circle) Position() vec2.Vec2 { return c.Center }

// IsCircle implements Object.
func (c *Circle) IsCircle() bool { return true }

// DistSqToSurface implements Object.
func (c *Circle) DistSqToSurface(p vec2.Vec2) float64 {
	d := vec2.Dist(p, c.Center) - c.Radius
	if d < 0 {
		return 0
	}
	return d * d
}

// CircleGeometry implements CircleLike.
func (c *Circle) CircleGeometry() (vec2.Vec2, float64, bool, vec2.Vec2, vec2.Vec2) {
	return c.Center, c.Radius, c.Mobile, c.Velocity, c.PrefVelocity
}

// ConvexObstacle is a static, convex, clockwise-wound polygon obstacle.
type ConvexObstacle struct {
	// Vertices is the polygon boundary, clockwise-wound (the mesh
	// convention: vec2.TriArea2 of three consecutive clockwise vertices is
	// negative).
	Vertices []vec2.Vec2
}

// NewConvexObstacle returns a convex obstacle from clockwise-wound vertices.
// The caller is responsible for passing a convex, clockwise polygon; this
// constructor does not validate convexity.
func NewConvexObstacle(vertices []vec2.Vec2) *ConvexObstacle {
	return &ConvexObstacle{Vertices: append([]vec2.Vec2(nil), vertices...)}
}

// Position implements Object, returning the polygon centroid.
func (o *ConvexObstacle) Position() vec2.Vec2 {
	var sum vec2.Vec2
	for _, v := range o.Vertices {
		sum = vec2.Add(sum, v)
	}
	n := float64(len(o.Vertices))
	if n == 0 {
		return vec2.Zero
	}
	return vec2.Scale(1/n, sum)
}

// IsCircle implements Object.
func (o *ConvexObstacle) IsCircle() bool { return false }

// containsPoint reports whether p is inside the clockwise polygon (on the
// clockwise-interior side of every edge).
func (o *ConvexObstacle) containsPoint(p vec2.Vec2) bool {
	n := len(o.Vertices)
	for i := 0; i < n; i++ {
		a := o.Vertices[i]
		b := o.Vertices[(i+1)%n]
		// Clockwise winding: interior is to the right of each directed
		// edge a->b, i.e. det(b-a, p-a) <= 0.
		if vec2.Det(vec2.Sub(b, a), vec2.Sub(p, a)) > 0 {
			return false
		}
	}
	return true
}

// DistSqToSurface implements Object.
func (o *ConvexObstacle) DistSqToSurface(p vec2.Vec2) float64 {
	if o.containsPoint(p) {
		return 0
	}
	n := len(o.Vertices)
	best := math.MaxFloat64
	for i := 0; i < n; i++ {
		a := o.Vertices[i]
		b := o.Vertices[(i+1)%n]
		d := distSqToSegment(p, a, b)
		if d < best {
			best = d
		}
	}
	return best
}

// farthestPair returns the two vertices with the largest distance between
// them. Requires len(Vertices) >= 2.
func (o *ConvexObstacle) farthestPair() (a, b vec2.Vec2) {
	a, b = o.Vertices[0], o.Vertices[1]
	best := vec2.DistSq(a, b)
	for i := 0; i < len(o.Vertices); i++ {
		for j := i + 1; j < len(o.Vertices); j++ {
			if d := vec2.DistSq(o.Vertices[i], o.Vertices[j]); d > best {
				a, b, best = o.Vertices[i], o.Vertices[j], d
			}
		}
	}
	return a, b
}

// distSqToSegment returns the squared distance from p to the segment a-b.
func distSqToSegment(p, a, b vec2.Vec2) float64 {
	proj := vec2.Project(p, a, b)
	ab := vec2.Sub(b, a)
	denom := vec2.AbsSq(ab)
	if denom == 0 {
		return vec2.DistSq(p, a)
	}
	t := vec2.Dot(vec2.Sub(proj, a), ab) / denom
	if t < 0 {
		return vec2.DistSq(p, a)
	}
	if t > 1 {
		return vec2.DistSq(p, b)
	}
	return vec2.DistSq(p, proj)
}

// SpanningPoints returns the two silhouette (tangent) vertices of the
// obstacle as seen from p, and whether p lies outside the obstacle inflated
// by clearance r. Tangent vertices are found directly on the polygon (a
// vertex v is a tangent point iff every other vertex lies on the same side
// of line p-v); the clearance r only affects the inside/outside test, not
// the tangent direction — see DESIGN.md for the simplification rationale.
func (o *ConvexObstacle) SpanningPoints(p vec2.Vec2, r float64) (p1, p2 vec2.Vec2, outside bool) {
	n := len(o.Vertices)
	outside = o.DistSqToSurface(p) > r*r

	if n == 0 {
		return vec2.Zero, vec2.Zero, outside
	}
	if n == 1 {
		return o.Vertices[0], o.Vertices[0], outside
	}

	var tangents []vec2.Vec2
	for i := 0; i < n && len(tangents) < 2; i++ {
		v := o.Vertices[i]
		if v == p {
			continue
		}
		sign := 0
		isTangent := true
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			d := vec2.Det(vec2.Sub(v, p), vec2.Sub(o.Vertices[j], p))
			if d == 0 {
				continue
			}
			s := 1
			if d < 0 {
				s = -1
			}
			if sign == 0 {
				sign = s
			} else if s != sign {
				isTangent = false
				break
			}
		}
		if isTangent {
			tangents = append(tangents, v)
		}
	}

	switch len(tangents) {
	case 0:
		// p coincides with (or is enclosed tightly by) the polygon; fall
		// back to the two vertices farthest apart from each other, so the
		// degenerate VO built from them still has two distinct sides.
		a, b := o.farthestPair()
		return a, b, outside
	case 1:
		return tangents[0], tangents[0], outside
	default:
		// Orient (p1, p2) so a genuine outside silhouette has
		// det(p1-p, p2-p) >= 0 — the agent discards the velocity obstacle
		// when that determinant is negative (obstacle seen from behind).
		if vec2.Det(vec2.Sub(tangents[0], p), vec2.Sub(tangents[1], p)) >= 0 {
			return tangents[0], tangents[1], outside
		}
		return tangents[1], tangents[0], outside
	}
}
