package navmesh

import (
	"container/heap"
	"math"

	"github.com/JoelSalzesson/ArNavNav/vec2"
)

// heapItem is one entry of the A* frontier: a half-edge and its priority
// (cost-so-far plus heuristic distance to the search start).
type heapItem struct {
	he   int
	prio float64
}

type heapQueue []heapItem

func (q heapQueue) Len() int           { return len(q) }
func (q heapQueue) Less(i, j int) bool { return q[i].prio < q[j].prio }
func (q heapQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *heapQueue) Push(x any) { *q = append(*q, x.(heapItem)) }

func (q *heapQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// EdgesAstarSearch finds the cheapest triangle corridor from start to end
// (triangle indices containing startPos and endPos respectively),
// appending it in order to *corridor. It searches the half-edge graph, not
// the triangle adjacency graph directly, so portal midpoints can serve as
// the distance metric the heuristic needs to stay admissible.
//
// Returns false if start and end are the same triangle, or if no corridor
// reaches start from end. CostSoFar and CameFrom on every half-edge are
// reset at the start of the call, so a mesh must not be searched
// concurrently from two goroutines.
func (m *Mesh) EdgesAstarSearch(startPos, endPos vec2.Vec2, start, end int, corridor *[]int) bool {
	if start == end {
		return false
	}

	for i := range m.HalfEdges {
		m.HalfEdges[i].CostSoFar = math.Inf(1)
		m.HalfEdges[i].CameFrom = noEdge
	}

	var pq heapQueue
	var destEdges []int
	var destCost []float64

	startTri := m.Triangles[start]
	endTri := m.Triangles[end]

	for i := 0; i < 3; i++ {
		// Start-triangle half-edges are the goal set: fix their midpoint
		// to the true start position projected onto the edge.
		sh := startTri.H[i]
		proj := vec2.Project(startPos, m.Vertices[m.HalfEdges[sh].From].P, m.Vertices[m.HalfEdges[sh].To].P)
		m.HalfEdges[sh].MidPnt = proj
		if opp := m.HalfEdges[sh].Opposite; opp != noEdge {
			m.HalfEdges[opp].MidPnt = proj
		}
		destEdges = append(destEdges, sh)
		destCost = append(destCost, math.Inf(1))

		// Half-edges entering the end triangle from outside are the
		// search's seed frontier.
		h := m.HalfEdges[endTri.H[i]].Opposite
		if h == noEdge {
			continue
		}
		proj = vec2.Project(endPos, m.Vertices[m.HalfEdges[h].From].P, m.Vertices[m.HalfEdges[h].To].P)
		m.HalfEdges[h].MidPnt = proj
		if opp := m.HalfEdges[h].Opposite; opp != noEdge {
			m.HalfEdges[opp].MidPnt = proj
		}
		m.HalfEdges[h].CostSoFar = dist(endPos, proj)
		m.HalfEdges[h].CameFrom = dummyEdge
		heur := dist(proj, startPos)
		heap.Push(&pq, heapItem{he: h, prio: m.HalfEdges[h].CostSoFar + heur})
	}

	destReached := 0
	for pq.Len() > 0 {
		top := heap.Pop(&pq).(heapItem)
		cur := top.he

		if idx := indexOf(destEdges, cur); idx >= 0 {
			destCost[idx] = top.prio
			destReached++
			if destReached > len(destEdges) {
				break
			}
			continue
		}

		curHE := m.HalfEdges[cur]
		successors := [2]int{
			m.HalfEdges[curHE.Next].Opposite,
			m.HalfEdges[m.HalfEdges[curHE.Next].Next].Opposite,
		}
		for _, n := range successors {
			if n == noEdge {
				continue
			}
			costToThis := curHE.CostSoFar + dist(curHE.MidPnt, m.HalfEdges[n].MidPnt)
			if costToThis > m.HalfEdges[n].CostSoFar {
				continue
			}
			m.HalfEdges[n].CostSoFar = costToThis
			m.HalfEdges[n].CameFrom = cur
			heur := dist(m.HalfEdges[n].MidPnt, startPos)
			heap.Push(&pq, heapItem{he: n, prio: costToThis + heur})
		}
	}

	if destReached == 0 {
		return false
	}

	best := 0
	for i := 1; i < len(destCost); i++ {
		if destCost[i] < destCost[best] {
			best = i
		}
	}

	// The search ran from end to start, so walking CameFrom back from the
	// start-triangle goal edge already visits triangles in start-to-end order.
	for h := destEdges[best]; h != dummyEdge; h = m.HalfEdges[h].CameFrom {
		*corridor = append(*corridor, m.HalfEdges[h].Tri)
	}
	*corridor = append(*corridor, end)
	return true
}

// dist is the (non-squared) Euclidean distance. A* needs a linear metric
// here, not the squared distance, to keep the heuristic admissible.
func dist(a, b vec2.Vec2) float64 {
	return vec2.Dist(a, b)
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
