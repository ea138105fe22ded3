// Package navmesh implements a triangulated planar subdivision with
// half-edge connectivity: point location, an A* search over the half-edge
// graph, and funnel string-pulling through the resulting triangle corridor.
//
// Triangles, vertices, and half-edges form a cyclic ownership graph
// (h.Opposite.Opposite == h, t.H[i].Tri == t). Rather than pointers, every
// cross-reference is a stable integer index into one of the Mesh's three
// arenas, so the whole structure is plain data with no cycles for the
// garbage collector to chase.
package navmesh

import (
	"fmt"

	"github.com/JoelSalzesson/ArNavNav/vec2"
)

// noEdge marks an absent half-edge reference (a boundary edge's Opposite,
// or an unset CameFrom).
const noEdge = -1

// dummyEdge marks the root of an A* search in CameFrom, distinct from
// noEdge so walking cameFrom back to the root is unambiguous.
const dummyEdge = -2

// Vertex is a 2D point in the mesh.
type Vertex struct {
	P vec2.Vec2
}

// Triangle is a clockwise-wound triple of vertices. H[i] is the half-edge
// from V[i] to V[(i+1)%3]; Nei[i] is the triangle across H[i], or noEdge
// if H[i] is a boundary edge. H and Nei are populated by ConnectTri.
type Triangle struct {
	V   [3]int
	H   [3]int
	Nei [3]int
}

// HalfEdge is one directed side of a triangle. Next cycles through the
// three half-edges of the same triangle; Opposite is the matching
// half-edge of the neighboring triangle, or noEdge on the mesh boundary.
//
// MidPnt, CostSoFar, and CameFrom are A* scratch fields: MidPnt is the
// edge midpoint at rest, but is overwritten with a projected point at
// path endpoints for the duration of a search. CostSoFar and CameFrom are
// reset at the start of every search (see EdgesAstarSearch), so concurrent
// searches over the same mesh are not safe without external serialization.
type HalfEdge struct {
	From, To int
	Tri      int
	Next     int
	Opposite int

	MidPnt    vec2.Vec2
	CostSoFar float64
	CameFrom  int
}

// Mesh is an immutable-during-simulation triangulation: vertices and
// triangles are fixed after ConnectTri succeeds, and only the half-edge
// scratch fields change, once per A* search.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
	HalfEdges []HalfEdge
}

// NewMesh returns an empty mesh over the given vertex positions. Triangles
// are added with AddTriangle and the mesh is finalized with ConnectTri.
func NewMesh(vertices []vec2.Vec2) *Mesh {
	m := &Mesh{Vertices: make([]Vertex, len(vertices))}
	for i, p := range vertices {
		m.Vertices[i] = Vertex{P: p}
	}
	return m
}

// AddTriangle appends a triangle over vertex indices v0, v1, v2, which must
// be wound clockwise (checked by ConnectTri, not here, since a single
// triangle's winding can't be validated against the rest of the mesh until
// construction is complete). It returns the new triangle's index.
func (m *Mesh) AddTriangle(v0, v1, v2 int) int {
	idx := len(m.Triangles)
	m.Triangles = append(m.Triangles, Triangle{V: [3]int{v0, v1, v2}})
	return idx
}

// vpair keys the scratch map used to pair opposite half-edges during
// ConnectTri. It is local to a single ConnectTri call and released on
// return, unlike the original's module-level map.
type vpair struct{ from, to int }

// ConnectTri builds the half-edge arena from the triangles added so far,
// pairing opposite half-edges and filling in Triangle.Nei. It fails if any
// triangle is wound counterclockwise, or if two half-edges share the same
// (from, to) orientation (meaning the mesh is not consistently clockwise).
func (m *Mesh) ConnectTri() error {
	unpaired := make(map[vpair]int)
	m.HalfEdges = m.HalfEdges[:0]

	for ti := range m.Triangles {
		t := &m.Triangles[ti]
		v0, v1, v2 := m.Vertices[t.V[0]].P, m.Vertices[t.V[1]].P, m.Vertices[t.V[2]].P
		if vec2.TriArea2(v0, v1, v2) >= 0 {
			return fmt.Errorf("navmesh: triangle %d is not wound clockwise", ti)
		}

		var h [3]int
		for i := 0; i < 3; i++ {
			from, to := t.V[i], t.V[(i+1)%3]
			h[i] = len(m.HalfEdges)
			m.HalfEdges = append(m.HalfEdges, HalfEdge{
				From:      from,
				To:        to,
				Tri:       ti,
				Opposite:  noEdge,
				CameFrom:  noEdge,
				MidPnt:    vec2.Scale(0.5, vec2.Add(m.Vertices[from].P, m.Vertices[to].P)),
			})
		}
		for i := 0; i < 3; i++ {
			m.HalfEdges[h[i]].Next = h[(i+1)%3]
		}
		t.H = h

		for i := 0; i < 3; i++ {
			from, to := t.V[i], t.V[(i+1)%3]
			if err := seekPair(unpaired, m.HalfEdges, from, to, h[i]); err != nil {
				return err
			}
		}
	}

	for ti := range m.Triangles {
		t := &m.Triangles[ti]
		t.Nei = [3]int{noEdge, noEdge, noEdge}
		for i := 0; i < 3; i++ {
			if opp := m.HalfEdges[t.H[i]].Opposite; opp != noEdge {
				t.Nei[i] = m.HalfEdges[opp].Tri
			}
		}
	}
	return nil
}

// seekPair looks for a previously-added half-edge running the reverse
// direction (to, from) to pair as add's opposite, then records add under
// its own (from, to) key — erroring if that key is already taken, which
// means two triangles share an edge with the same orientation instead of
// opposite orientations.
func seekPair(unpaired map[vpair]int, halfEdges []HalfEdge, from, to, add int) error {
	if existing, ok := unpaired[vpair{to, from}]; ok {
		delete(unpaired, vpair{to, from})
		halfEdges[existing].Opposite = add
		halfEdges[add].Opposite = existing
	}

	key := vpair{from, to}
	if _, ok := unpaired[key]; ok {
		return fmt.Errorf("navmesh: not all triangles are clockwise (duplicate edge %d->%d)", from, to)
	}
	unpaired[key] = add
	return nil
}

// FindContaining returns the index of the triangle containing p, by linear
// scan with a sign-test point-in-triangle check, and whether one was
// found.
func (m *Mesh) FindContaining(p vec2.Vec2) (int, bool) {
	for ti, t := range m.Triangles {
		v0, v1, v2 := m.Vertices[t.V[0]].P, m.Vertices[t.V[1]].P, m.Vertices[t.V[2]].P
		if isPointInTri(p, v0, v1, v2) {
			return ti, true
		}
	}
	return -1, false
}

// isPointInTri reports whether p is inside the clockwise triangle v0,v1,v2
// by checking it lies on the same (clockwise-interior) side of all three
// edges, using the same triarea2 sign convention as the rest of the mesh.
func isPointInTri(p, v0, v1, v2 vec2.Vec2) bool {
	b1 := vec2.TriArea2(v1, v0, p) < 0
	b2 := vec2.TriArea2(v2, v1, p) < 0
	b3 := vec2.TriArea2(v0, v2, p) < 0
	return b1 == b2 && b2 == b3
}
