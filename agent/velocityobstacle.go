package agent

import (
	"math"

	"github.com/JoelSalzesson/ArNavNav/navobj"
	"github.com/JoelSalzesson/ArNavNav/vec2"
)

// VelocityObstacle is a truncated cone in velocity space: "if my velocity
// lies between the two rays from Apex, collision is imminent."
type VelocityObstacle struct {
	Apex  vec2.Vec2
	Side1 vec2.Vec2
	Side2 vec2.Vec2
}

// buildVelocityObstacles constructs one VelocityObstacle per neighbor,
// following the hybrid-reciprocal (HRVO) rules of the solver: mobile circle
// neighbors split avoidance responsibility by passing side, immobile
// circles get a zero apex, overlapping circles degenerate to a half-plane,
// and convex obstacles use their silhouette tangents (discarded if the
// silhouette winds the wrong way, meaning the obstacle is seen from
// behind itself).
func (a *Agent) buildVelocityObstacles() []VelocityObstacle {
	vos := make([]VelocityObstacle, 0, a.Neighbors.Len())

	for i := 0; i < a.Neighbors.Len(); i++ {
		obj := a.Neighbors.At(i)

		if circ, ok := obj.(navobj.CircleLike); ok {
			vos = append(vos, a.circleVelocityObstacle(circ))
			continue
		}

		vo, ok := a.convexVelocityObstacle(obj)
		if ok {
			vos = append(vos, vo)
		}
	}

	return vos
}

func (a *Agent) circleVelocityObstacle(other navobj.CircleLike) VelocityObstacle {
	center, radius, mobile, velocity, prefVelocity := other.CircleGeometry()

	selfPos := a.Position()
	delta := vec2.Sub(center, selfPos)
	combinedRadius := a.Radius + radius

	if vec2.AbsSq(delta) > vec2.Sqr(combinedRadius) {
		return a.nonOverlappingCircleVO(delta, combinedRadius, mobile, velocity, prefVelocity)
	}
	return a.overlappingCircleVO(center, mobile, velocity)
}

func (a *Agent) nonOverlappingCircleVO(delta vec2.Vec2, combinedRadius float64, mobile bool, otherVel, otherPref vec2.Vec2) VelocityObstacle {
	angle := vec2.Atan(delta)
	opening := math.Asin(combinedRadius / vec2.Abs(delta))

	side1 := vec2.New(math.Cos(angle-opening), math.Sin(angle-opening))
	side2 := vec2.New(math.Cos(angle+opening), math.Sin(angle+opening))

	var apex vec2.Vec2
	if mobile {
		d := 2 * math.Sin(opening) * math.Cos(opening)
		if vec2.Det(delta, vec2.Sub(a.PrefVelocity, otherPref)) > 0 {
			s := 0.5 * vec2.Det(vec2.Sub(a.Velocity, otherVel), side2) / d
			apex = vec2.Add(otherVel, vec2.Scale(s, side1))
		} else {
			s := 0.5 * vec2.Det(vec2.Sub(a.Velocity, otherVel), side1) / d
			apex = vec2.Add(otherVel, vec2.Scale(s, side2))
		}
	}

	return VelocityObstacle{Apex: apex, Side1: side1, Side2: side2}
}

func (a *Agent) overlappingCircleVO(otherCenter vec2.Vec2, mobile bool, otherVel vec2.Vec2) VelocityObstacle {
	side1 := vec2.Normal(a.Position(), otherCenter)
	side2 := vec2.Neg(side1)

	var apex vec2.Vec2
	if mobile {
		apex = vec2.Scale(0.5, vec2.Add(otherVel, a.Velocity))
	}

	return VelocityObstacle{Apex: apex, Side1: side1, Side2: side2}
}

func (a *Agent) convexVelocityObstacle(obj navobj.Object) (VelocityObstacle, bool) {
	spanner, ok := obj.(interface {
		SpanningPoints(p vec2.Vec2, r float64) (p1, p2 vec2.Vec2, outside bool)
	})
	if !ok {
		return VelocityObstacle{}, false
	}

	p1, p2, outside := spanner.SpanningPoints(a.Position(), a.Radius)

	var side1, side2 vec2.Vec2
	if outside {
		side1 = vec2.Normalize(vec2.Sub(p1, a.Position()))
		side2 = vec2.Normalize(vec2.Sub(p2, a.Position()))
		if vec2.Det(side1, side2) < 0 {
			// Silhouette seen from behind itself: discard.
			return VelocityObstacle{}, false
		}
	} else {
		// Fallback path: the agent is inside the inflated obstacle. Use
		// the silhouette sides anyway, with no apex adjustment. See
		// DESIGN.md for the known limitation in deep-penetration cases.
		side1 = vec2.Normalize(vec2.Sub(p1, a.Position()))
		side2 = vec2.Normalize(vec2.Sub(p2, a.Position()))
	}

	return VelocityObstacle{Apex: vec2.Zero, Side1: side1, Side2: side2}, true
}
