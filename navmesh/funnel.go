package navmesh

import "github.com/JoelSalzesson/ArNavNav/vec2"

// vertexEqEpsilon bounds the funnel's vertex-equality test. It is the only
// place in the mesh package where equality is approximate rather than
// strict.
const vertexEqEpsilon = 1e-6

// MakePath converts a triangle corridor into the shortest polyline from
// start to end using the Simple Stupid Funnel Algorithm: portals formed by
// each corridor edge are string-pulled taut around an apex that advances
// whenever the funnel would otherwise widen past straight.
func (m *Mesh) MakePath(corridor []int, start, end vec2.Vec2, output *[]vec2.Vec2) {
	n := len(corridor)
	left := make([]vec2.Vec2, 0, n+1)
	right := make([]vec2.Vec2, 0, n+1)

	left = append(left, start)
	right = append(right, start)

	for i := 0; i < n-1; i++ {
		r, l := m.commonVtx(corridor[i], corridor[i+1])
		right = append(right, m.Vertices[r].P)
		left = append(left, m.Vertices[l].P)
	}

	left = append(left, end)
	right = append(right, end)

	stringPull(right, left, output)
}

// commonVtx returns the two vertices shared by adjacent corridor triangles
// a and b, labeled right/left so left lies counterclockwise of right as
// seen crossing from a into b. Found by matching each ordered edge of a
// against the reversed edges of b, rather than enumerating all nine
// vertex-index combinations.
func (m *Mesh) commonVtx(a, b int) (right, left int) {
	ta, tb := m.Triangles[a], m.Triangles[b]

	for i := 0; i < 3; i++ {
		v0, v1 := ta.V[i], ta.V[(i+1)%3]
		for j := 0; j < 3; j++ {
			if tb.V[j] == v1 && tb.V[(j+1)%3] == v0 {
				return v1, v0
			}
		}
	}
	panic("navmesh: adjacent corridor triangles share no edge")
}

func vequal(a, b vec2.Vec2) bool {
	return vec2.DistSq(a, b) < vertexEqEpsilon
}

// stringPull runs the funnel scan over parallel portalsRight/portalsLeft
// sequences (same length, index 0 and the last index both degenerate to
// the start/end point), appending the resulting polyline to *output.
func stringPull(portalsRight, portalsLeft []vec2.Vec2, output *[]vec2.Vec2) {
	apexIndex, leftIndex, rightIndex := 0, 0, 0
	apex := portalsLeft[0]
	left := portalsLeft[0]
	right := portalsRight[0]

	*output = append(*output, apex)

	for i := 1; i < len(portalsRight); i++ {
		newLeft := portalsLeft[i]
		newRight := portalsRight[i]

		if vec2.TriArea2(apex, right, newRight) >= 0 {
			if vequal(apex, right) || vec2.TriArea2(apex, left, newRight) < 0 {
				right = newRight
				rightIndex = i
			} else {
				*output = append(*output, left)

				apex = left
				apexIndex = leftIndex
				left, right = apex, apex
				leftIndex, rightIndex = apexIndex, apexIndex

				i = apexIndex
				continue
			}
		}

		if vec2.TriArea2(apex, left, newLeft) <= 0 {
			if vequal(apex, left) || vec2.TriArea2(apex, right, newLeft) > 0 {
				left = newLeft
				leftIndex = i
			} else {
				*output = append(*output, right)

				apex = right
				apexIndex = rightIndex
				left, right = apex, apex
				leftIndex, rightIndex = apexIndex, apexIndex

				i = apexIndex
				continue
			}
		}
	}

	// The unconditional append below can repeat the destination when the
	// last funnel event was an insert triggered by the final (doubled)
	// portal column, since that insert already emitted the same point.
	last := portalsRight[len(portalsRight)-1]
	if n := len(*output); n == 0 || !vequal((*output)[n-1], last) {
		*output = append(*output, last)
	}
}
