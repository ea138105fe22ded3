// Package navplan defines the goal-segment contract consumed by an agent's
// preferred-velocity computation, and the ordered plan built from it.
package navplan

import "github.com/JoelSalzesson/ArNavNav/vec2"

// GoalSegment is one leg of an agent's plan. Implementations come from a
// SubGoalMaker (an external collaborator outside this module's scope); this
// package only defines the contract agents consume.
type GoalSegment interface {
	// GetDest returns the point the agent should currently steer toward,
	// which may depend on the agent's current position (e.g. a segment
	// goal that re-targets the closest point ahead on a line).
	GetDest(from vec2.Vec2) vec2.Vec2

	// ShouldTaper reports whether this segment must be reached exactly
	// (decelerate to arrive) rather than passed through at speed.
	ShouldTaper() bool

	// IsPassed reports whether pos has advanced far enough past this
	// segment that the plan should move to the next one.
	IsPassed(pos vec2.Vec2) bool
}

// SubGoalMaker produces goal segments from mesh vertices along a path. It is
// an external collaborator; this package only states its contract.
type SubGoalMaker interface {
	// MakeSubGoal appends one or two goal segments to addTo for the vertex
	// this maker represents, given the direction the path is coming from
	// and a clearance distance to keep from the vertex.
	MakeSubGoal(keepDist float64, comingFrom vec2.Vec2, addTo *Plan)

	// MakePathRef returns a single representative point for this vertex,
	// used when extracting a path through a mesh corridor.
	MakePathRef(keepDist float64) vec2.Vec2
}

// Plan is a finite ordered sequence of goal segments.
type Plan struct {
	Segments []GoalSegment
}

// NewPlan returns a plan over the given segments, in order.
func NewPlan(segments ...GoalSegment) *Plan {
	return &Plan{Segments: segments}
}

// Append adds segments to the end of the plan.
func (p *Plan) Append(segments ...GoalSegment) {
	p.Segments = append(p.Segments, segments...)
}

// Len returns the number of segments in the plan.
func (p *Plan) Len() int {
	return len(p.Segments)
}

// At returns the segment at index i.
func (p *Plan) At(i int) GoalSegment {
	return p.Segments[i]
}

// PointGoal is a GoalSegment that must be reached exactly: a single target
// point, passed once the agent is within radius of it.
type PointGoal struct {
	Point  vec2.Vec2
	Radius float64
}

// NewPointGoal returns a taper-to-exact-arrival goal at p, passed once the
// agent is within radius of it.
func NewPointGoal(p vec2.Vec2, radius float64) *PointGoal {
	return &PointGoal{Point: p, Radius: radius}
}

// GetDest implements GoalSegment.
func (g *PointGoal) GetDest(from vec2.Vec2) vec2.Vec2 { return g.Point }

// ShouldTaper implements GoalSegment: point goals are always exact.
func (g *PointGoal) ShouldTaper() bool { return true }

// IsPassed implements GoalSegment.
func (g *PointGoal) IsPassed(pos vec2.Vec2) bool {
	return vec2.DistSq(pos, g.Point) < g.Radius*g.Radius
}

// LineGoal is a GoalSegment that need not be reached exactly: the agent is
// free to overshoot the destination line, since a later segment picks up
// the path. It is passed once the agent crosses the plane through Point
// perpendicular to Forward.
type LineGoal struct {
	Point   vec2.Vec2
	Forward vec2.Vec2 // unit direction of travel through this segment
}

// NewLineGoal returns a non-tapering goal at p, passed once the agent
// crosses the line through p perpendicular to forward.
func NewLineGoal(p, forward vec2.Vec2) *LineGoal {
	return &LineGoal{Point: p, Forward: forward}
}

// GetDest implements GoalSegment.
func (g *LineGoal) GetDest(from vec2.Vec2) vec2.Vec2 { return g.Point }

// ShouldTaper implements GoalSegment: line goals may be overshot.
func (g *LineGoal) ShouldTaper() bool { return false }

// IsPassed implements GoalSegment.
func (g *LineGoal) IsPassed(pos vec2.Vec2) bool {
	return vec2.Dot(vec2.Sub(pos, g.Point), g.Forward) > 0
}
