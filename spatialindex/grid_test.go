package spatialindex

import (
	"testing"

	"github.com/JoelSalzesson/ArNavNav/navobj"
	"github.com/JoelSalzesson/ArNavNav/vec2"
)

func TestGridQueryVisitsWithinRadius(t *testing.T) {
	g := NewGrid(0, 0, 100, 100, 5)

	near := navobj.NewStaticCircle(vec2.New(10, 10), 0.5)
	far := navobj.NewStaticCircle(vec2.New(90, 90), 0.5)
	g.Insert(near)
	g.Insert(far)

	var visited []navobj.Object
	g.Query(vec2.New(10, 10), 3, func(obj navobj.Object) {
		visited = append(visited, obj)
	})

	foundNear, foundFar := false, false
	for _, obj := range visited {
		if obj == navobj.Object(near) {
			foundNear = true
		}
		if obj == navobj.Object(far) {
			foundFar = true
		}
	}
	if !foundNear {
		t.Error("Query: expected nearby object to be visited")
	}
	if foundFar {
		t.Error("Query: far-away object should not be visited")
	}
}

func TestGridQueryClampsNearEdgeWithoutPanicking(t *testing.T) {
	g := NewGrid(0, 0, 20, 20, 5)
	g.Insert(navobj.NewStaticCircle(vec2.New(1, 1), 0.5))

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Query panicked near world edge: %v", r)
		}
	}()

	count := 0
	g.Query(vec2.New(0, 0), 50, func(navobj.Object) { count++ })
	if count == 0 {
		t.Error("Query: expected the inserted object to be visited even when the query radius extends past the world edge")
	}
}

func TestGridClearRemovesObjects(t *testing.T) {
	g := NewGrid(0, 0, 20, 20, 5)
	g.Insert(navobj.NewStaticCircle(vec2.New(5, 5), 0.5))
	g.Clear()

	count := 0
	g.Query(vec2.New(5, 5), 50, func(navobj.Object) { count++ })
	if count != 0 {
		t.Errorf("Query after Clear: got %d objects, want 0", count)
	}
}
