package agent

import (
	"math"

	"github.com/JoelSalzesson/ArNavNav/vec2"
)

// Dump captures one tick's velocity-obstacle set and chosen velocity for a
// single agent, for debugging/introspection.
type Dump struct {
	VOs      []VelocityObstacle
	Selected vec2.Vec2
}

// noVO is the sentinel tag for "no velocity obstacle" (the original's
// INT_MAX): a candidate tagged with it is exempt from no VO's feasibility
// test by virtue of never matching a real index.
const noVO = -1

type candidate struct {
	position vec2.Vec2
	vo1, vo2 int
}

// ComputeNewVelocity builds this tick's velocity obstacles from the current
// neighbor set and searches the feasible velocity disk for the point
// closest to PrefVelocity. If dump is non-nil, it is filled with the VO set
// and the chosen velocity. If no candidate is feasible, NewVelocity is set
// to zero (the agent halts this tick) and ComputeNewVelocity returns false.
func (a *Agent) ComputeNewVelocity(dump *Dump) bool {
	vos := a.buildVelocityObstacles()

	best := candidate{vo1: noVO, vo2: noVO}
	bestScore := math.Inf(1)
	found := false

	check := func(c candidate) {
		score := vec2.DistSq(a.PrefVelocity, c.position)
		if score >= bestScore {
			return
		}
		for k := range vos {
			if k == c.vo1 || k == c.vo2 {
				continue
			}
			vo := vos[k]
			rel := vec2.Sub(c.position, vo.Apex)
			if vec2.Det(vo.Side2, rel) < 0 && vec2.Det(vo.Side1, rel) > 0 {
				return
			}
		}
		best = c
		bestScore = score
		found = true
	}

	maxSpeedSq := a.MaxSpeed * a.MaxSpeed

	// 1. Anchor: preferred velocity, capped to the max-speed disk.
	anchor := a.PrefVelocity
	if vec2.AbsSq(anchor) >= maxSpeedSq && vec2.AbsSq(anchor) > 0 {
		anchor = vec2.Scale(a.MaxSpeed, vec2.Normalize(anchor))
	}
	check(candidate{position: anchor, vo1: noVO, vo2: noVO})

	// 2. Feet of the perpendicular from PrefVelocity onto each VO ray.
	for i, vo := range vos {
		rel := vec2.Sub(a.PrefVelocity, vo.Apex)

		dot1 := vec2.Dot(rel, vo.Side1)
		if dot1 > 0 && vec2.Det(vo.Side1, rel) > 0 {
			pos := vec2.Add(vo.Apex, vec2.Scale(dot1, vo.Side1))
			if vec2.AbsSq(pos) < maxSpeedSq {
				check(candidate{position: pos, vo1: i, vo2: i})
			}
		}

		dot2 := vec2.Dot(rel, vo.Side2)
		if dot2 > 0 && vec2.Det(vo.Side2, rel) < 0 {
			pos := vec2.Add(vo.Apex, vec2.Scale(dot2, vo.Side2))
			if vec2.AbsSq(pos) < maxSpeedSq {
				check(candidate{position: pos, vo1: i, vo2: i})
			}
		}
	}

	// 3. Intersections of each VO ray with the max-speed circle.
	for j, vo := range vos {
		a.maxSpeedRayCandidates(vo, j, maxSpeedSq, check)
	}

	// 4. Pairwise ray intersections between distinct VOs.
	for i := 0; i < len(vos); i++ {
		for j := i + 1; j < len(vos); j++ {
			a.pairwiseRayCandidates(vos[i], vos[j], i, j, maxSpeedSq, check)
		}
	}

	if found {
		a.NewVelocity = best.position
	} else {
		a.NewVelocity = vec2.Zero
	}

	if dump != nil {
		dump.VOs = vos
		dump.Selected = a.NewVelocity
	}

	return found
}

// maxSpeedRayCandidates adds, for each of the VO's two rays, the (up to
// two) points where the ray meets the max-speed circle; intersections of
// the supporting line behind the apex are skipped.
func (a *Agent) maxSpeedRayCandidates(vo VelocityObstacle, j int, maxSpeedSq float64, check func(candidate)) {
	for _, side := range [2]vec2.Vec2{vo.Side1, vo.Side2} {
		discriminant := maxSpeedSq - vec2.Sqr(vec2.Det(vo.Apex, side))
		if discriminant <= 0 {
			continue
		}
		sq := math.Sqrt(discriminant)
		base := -vec2.Dot(vo.Apex, side)

		for _, t := range [2]float64{base + sq, base - sq} {
			if t < 0 {
				continue
			}
			pos := vec2.Add(vo.Apex, vec2.Scale(t, side))
			check(candidate{position: pos, vo1: noVO, vo2: j})
		}
	}
}

// pairwiseRayCandidates adds the intersections, within the max-speed disk,
// of every (side of VO i, side of VO j) combination with i < j.
func (a *Agent) pairwiseRayCandidates(voI, voJ VelocityObstacle, i, j int, maxSpeedSq float64, check func(candidate)) {
	sidesI := [2]vec2.Vec2{voI.Side1, voI.Side2}
	sidesJ := [2]vec2.Vec2{voJ.Side1, voJ.Side2}

	for _, sideI := range sidesI {
		for _, sideJ := range sidesJ {
			d := vec2.Det(sideI, sideJ)
			if d == 0 {
				continue
			}
			apexDelta := vec2.Sub(voJ.Apex, voI.Apex)
			s := vec2.Det(apexDelta, sideJ) / d
			t := vec2.Det(apexDelta, sideI) / d
			if s < 0 || t < 0 {
				continue
			}
			pos := vec2.Add(voI.Apex, vec2.Scale(s, sideI))
			if vec2.AbsSq(pos) < maxSpeedSq {
				check(candidate{position: pos, vo1: i, vo2: j})
			}
		}
	}
}
