// Package agent implements the reciprocal velocity-obstacle solver: per-tick
// neighbor selection, preferred-velocity computation, velocity-obstacle
// construction, the candidate search over the feasible velocity disk, and
// acceleration-limited integration.
package agent

import (
	"math"

	"github.com/JoelSalzesson/ArNavNav/navobj"
	"github.com/JoelSalzesson/ArNavNav/navplan"
	"github.com/JoelSalzesson/ArNavNav/spatialindex"
	"github.com/JoelSalzesson/ArNavNav/vec2"
)

// Agent is a mobile circular Object that navigates a plan of goal segments
// while avoiding nearby agents and static obstacles.
type Agent struct {
	*navobj.Circle

	NewVelocity vec2.Vec2

	MaxSpeed     float64
	PrefSpeed    float64
	MaxAccel     float64
	NeighborDist float64
	MaxNeighbors int

	Plan        *navplan.Plan
	IndexInPlan int
	CurGoalPos  navplan.GoalSegment

	Neighbors neighborSet

	// reachedEnd latches once the plan has been fully consumed; further
	// calls to Update are no-ops.
	reachedEnd bool
}

// New returns an agent at position with the given radius, ready to have its
// kinematic limits and plan configured.
func New(position vec2.Vec2, radius float64) *Agent {
	return &Agent{
		Circle: &navobj.Circle{
			Center: position,
			Radius: radius,
			Mobile: true,
		},
		MaxNeighbors: 10,
	}
}

// SetPlan assigns the plan this agent should follow, starting at its first
// segment.
func (a *Agent) SetPlan(plan *navplan.Plan) {
	a.Plan = plan
	a.IndexInPlan = 0
	a.reachedEnd = false
	if plan != nil && plan.Len() > 0 {
		a.CurGoalPos = plan.At(0)
		a.IndexInPlan = 1
	} else {
		a.CurGoalPos = nil
	}
}

// ReachedEnd reports whether this agent has consumed its entire plan.
func (a *Agent) ReachedEnd() bool {
	return a.reachedEnd
}

// ComputeNeighbors rebuilds the agent's neighbor set from the spatial
// index, keeping the MaxNeighbors nearest objects (by squared distance to
// surface) within NeighborDist.
func (a *Agent) ComputeNeighbors(index spatialindex.SpatialIndex) {
	a.Neighbors.clear()
	rangeSq := a.NeighborDist * a.NeighborDist

	index.Query(a.Position(), a.NeighborDist, func(obj navobj.Object) {
		if obj == navobj.Object(a) {
			return
		}
		a.insertNeighbor(obj, &rangeSq)
	})
}

func (a *Agent) insertNeighbor(obj navobj.Object, rangeSq *float64) {
	distSq := obj.DistSqToSurface(a.Position())
	if distSq >= *rangeSq {
		return
	}
	a.Neighbors.insert(distSq, obj, a.MaxNeighbors)
	if a.Neighbors.full(a.MaxNeighbors) {
		*rangeSq = a.Neighbors.worstKey()
	}
}

// ComputePreferredVelocity computes PrefVelocity toward the current goal
// segment, exactly arriving (rather than overshooting) when the segment
// tapers and the agent would otherwise pass the goal within this tick.
func (a *Agent) ComputePreferredVelocity(dt float64) {
	if a.CurGoalPos == nil {
		a.PrefVelocity = vec2.Zero
		return
	}

	goalPnt := a.CurGoalPos.GetDest(a.Position())
	toGoal := vec2.Sub(goalPnt, a.Position())
	distSq := vec2.AbsSq(toGoal)

	if a.CurGoalPos.ShouldTaper() && vec2.Sqr(a.PrefSpeed*dt) > distSq {
		a.PrefVelocity = vec2.Scale(1/dt, toGoal)
		return
	}
	if distSq == 0 {
		a.PrefVelocity = vec2.Zero
		return
	}
	a.PrefVelocity = vec2.Scale(a.PrefSpeed/math.Sqrt(distSq), toGoal)
}

// Update applies the acceleration-limited integration step: Velocity moves
// toward NewVelocity at no more than MaxAccel*dt, Position advances by
// Velocity*dt, and the plan advances past any goal segment the new position
// has passed. It returns whether the step was acceleration-clamped (could
// not reach NewVelocity outright) and whether the plan is now fully
// consumed.
func (a *Agent) Update(dt float64) (clamped, reachedEnd bool) {
	dv := vec2.Sub(a.NewVelocity, a.Velocity)
	dvAbs := vec2.Abs(dv)
	maxStep := a.MaxAccel * dt

	if dvAbs < maxStep {
		a.Velocity = a.NewVelocity
	} else if dvAbs > 0 {
		alpha := maxStep / dvAbs
		a.Velocity = vec2.Add(vec2.Scale(1-alpha, a.Velocity), vec2.Scale(alpha, a.NewVelocity))
		clamped = true
	}

	a.Center = vec2.Add(a.Center, vec2.Scale(dt, a.Velocity))

	if a.CurGoalPos != nil && a.CurGoalPos.IsPassed(a.Position()) {
		if a.Plan != nil && a.IndexInPlan < a.Plan.Len() {
			a.CurGoalPos = a.Plan.At(a.IndexInPlan)
			a.IndexInPlan++
		} else {
			a.reachedEnd = true
		}
	}

	return clamped, a.reachedEnd
}
