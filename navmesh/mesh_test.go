package navmesh

import (
	"testing"

	"github.com/JoelSalzesson/ArNavNav/vec2"
)

// buildStrip returns a 3-quad (6-triangle) strip mesh spanning x in [0,3],
// y in [-1,1]: columns of vertices at x = 0,1,2,3, each quad split into two
// clockwise triangles sharing its diagonal.
func buildStrip(t *testing.T) *Mesh {
	t.Helper()

	verts := make([]vec2.Vec2, 0, 8)
	bottom := make([]int, 4)
	top := make([]int, 4)
	for i := 0; i < 4; i++ {
		bottom[i] = len(verts)
		verts = append(verts, vec2.New(float64(i), -1))
		top[i] = len(verts)
		verts = append(verts, vec2.New(float64(i), 1))
	}

	m := NewMesh(verts)
	for i := 0; i < 3; i++ {
		m.AddTriangle(bottom[i], bottom[i+1], top[i])   // Tri1: lower-left
		m.AddTriangle(bottom[i+1], top[i+1], top[i])    // Tri2: upper-right
	}
	if err := m.ConnectTri(); err != nil {
		t.Fatalf("ConnectTri: %v", err)
	}
	return m
}

func TestConnectTriOppositePairing(t *testing.T) {
	m := buildStrip(t)

	for hi, h := range m.HalfEdges {
		if h.Opposite == noEdge {
			continue
		}
		opp := m.HalfEdges[h.Opposite]
		if opp.Opposite != hi {
			t.Errorf("half-edge %d: opposite.opposite = %d, want %d", hi, opp.Opposite, hi)
		}
		if opp.Tri == h.Tri {
			t.Errorf("half-edge %d: opposite.tri == tri (%d)", hi, h.Tri)
		}
	}
}

func TestConnectTriRejectsCounterclockwise(t *testing.T) {
	verts := []vec2.Vec2{vec2.New(0, -1), vec2.New(1, -1), vec2.New(0, 1)}
	m := NewMesh(verts)
	m.AddTriangle(0, 2, 1) // reversed winding

	if err := m.ConnectTri(); err == nil {
		t.Fatal("ConnectTri: expected error for counterclockwise triangle, got nil")
	}
}

func TestFindContaining(t *testing.T) {
	m := buildStrip(t)

	tri, ok := m.FindContaining(vec2.New(0.3, 0))
	if !ok || tri != 0 {
		t.Fatalf("FindContaining(0.3,0) = (%d, %v), want (0, true)", tri, ok)
	}

	tri, ok = m.FindContaining(vec2.New(2.7, 0))
	if !ok || tri != 5 {
		t.Fatalf("FindContaining(2.7,0) = (%d, %v), want (5, true)", tri, ok)
	}

	_, ok = m.FindContaining(vec2.New(100, 100))
	if ok {
		t.Fatal("FindContaining(100,100): expected no containing triangle")
	}
}
