package vec2

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestDetOrientation(t *testing.T) {
	a := New(1, 0)
	b := New(0, 1)
	if Det(a, b) <= 0 {
		t.Fatalf("expected b counterclockwise of a, got det=%v", Det(a, b))
	}
	if Det(b, a) >= 0 {
		t.Fatalf("expected a clockwise of b, got det=%v", Det(b, a))
	}
}

func TestProjectIdempotent(t *testing.T) {
	a := New(0, 0)
	b := New(10, 0)
	p := New(3, 7)

	proj1 := Project(p, a, b)
	proj2 := Project(proj1, a, b)

	if !almostEqual(proj1.X, proj2.X) || !almostEqual(proj1.Y, proj2.Y) {
		t.Fatalf("project(project(p)) != project(p): %v vs %v", proj1, proj2)
	}
	if !almostEqual(proj1.Y, 0) {
		t.Fatalf("expected projection onto x-axis to have y=0, got %v", proj1.Y)
	}
}

func TestTriArea2ClockwiseConvention(t *testing.T) {
	// (0,0) -> (1,0) -> (0,1) is clockwise under this system's winding
	// convention, so TriArea2 must be negative; reversing the last two
	// vertices flips the winding and the sign.
	clockwise := TriArea2(New(0, 0), New(1, 0), New(0, 1))
	counterClockwise := TriArea2(New(0, 0), New(0, 1), New(1, 0))

	if clockwise >= 0 {
		t.Fatalf("expected negative area for clockwise triangle, got %v", clockwise)
	}
	if counterClockwise <= 0 {
		t.Fatalf("expected positive area for counter-clockwise triangle, got %v", counterClockwise)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	v := Normalize(New(3, 4))
	if !almostEqual(Abs(v), 1) {
		t.Fatalf("expected unit length, got %v", Abs(v))
	}
}

func TestNormalPerpendicular(t *testing.T) {
	n := Normal(New(0, 0), New(5, 0))
	if !almostEqual(Dot(n, New(1, 0)), 0) {
		t.Fatalf("expected normal perpendicular to segment direction, got dot=%v", Dot(n, New(1, 0)))
	}
	if !almostEqual(Abs(n), 1) {
		t.Fatalf("expected unit normal, got %v", Abs(n))
	}
}
