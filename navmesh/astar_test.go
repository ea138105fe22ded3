package navmesh

import (
	"testing"

	"github.com/JoelSalzesson/ArNavNav/vec2"
)

func TestEdgesAstarSearchSingleTriangleCorridor(t *testing.T) {
	verts := []vec2.Vec2{vec2.New(0, -10), vec2.New(10, -10), vec2.New(0, 10)}
	m := NewMesh(verts)
	m.AddTriangle(0, 1, 2)
	if err := m.ConnectTri(); err != nil {
		t.Fatalf("ConnectTri: %v", err)
	}

	start, ok := m.FindContaining(vec2.New(1, 1))
	if !ok {
		t.Fatal("FindContaining(1,1): not found")
	}
	end, ok := m.FindContaining(vec2.New(2, 2))
	if !ok {
		t.Fatal("FindContaining(2,2): not found")
	}
	if start != end {
		t.Fatalf("expected both points in the same (only) triangle, got %d and %d", start, end)
	}

	var corridor []int
	if m.EdgesAstarSearch(vec2.New(1, 1), vec2.New(2, 2), start, end, &corridor) {
		t.Fatal("EdgesAstarSearch: expected false when start == end triangle")
	}
	if len(corridor) != 0 {
		t.Fatalf("corridor should be untouched on failure, got %v", corridor)
	}
}

func TestEdgesAstarSearchCrossesStrip(t *testing.T) {
	m := buildStrip(t)

	start, ok := m.FindContaining(vec2.New(0.3, 0))
	if !ok {
		t.Fatal("FindContaining(0.3,0): not found")
	}
	end, ok := m.FindContaining(vec2.New(2.7, 0))
	if !ok {
		t.Fatal("FindContaining(2.7,0): not found")
	}

	var corridor []int
	if !m.EdgesAstarSearch(vec2.New(0.3, 0), vec2.New(2.7, 0), start, end, &corridor) {
		t.Fatal("EdgesAstarSearch: expected a corridor to be found")
	}

	if corridor[0] != start {
		t.Errorf("corridor[0] = %d, want start triangle %d", corridor[0], start)
	}
	if corridor[len(corridor)-1] != end {
		t.Errorf("corridor last = %d, want end triangle %d", corridor[len(corridor)-1], end)
	}

	for i := 0; i < len(corridor)-1; i++ {
		if !adjacent(m, corridor[i], corridor[i+1]) {
			t.Errorf("corridor[%d]=%d and corridor[%d]=%d do not share an edge", i, corridor[i], i+1, corridor[i+1])
		}
	}
}

func adjacent(m *Mesh, a, b int) bool {
	for _, n := range m.Triangles[a].Nei {
		if n == b {
			return true
		}
	}
	return false
}
