package vec2

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// toR2/fromR2 bridge this package's Vec2 to gonum's reference r2.Vec, used
// below purely as an independent cross-check on the hand-rolled arithmetic.
func toR2(v Vec2) r2.Vec { return r2.Vec{X: v.X, Y: v.Y} }

func TestAddMatchesGonumR2(t *testing.T) {
	a, b := New(3, -4), New(-1.5, 2)

	got := Add(a, b)
	want := r2.Add(toR2(a), toR2(b))

	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
		t.Fatalf("Add(%v, %v) = %v, gonum r2.Add = %v", a, b, got, want)
	}
}

func TestDotMatchesGonumR2(t *testing.T) {
	a, b := New(2, 5), New(-3, 7)

	got := Dot(a, b)
	want := r2.Dot(toR2(a), toR2(b))

	if !almostEqual(got, want) {
		t.Fatalf("Dot(%v, %v) = %v, gonum r2.Dot = %v", a, b, got, want)
	}
}

func TestAbsMatchesGonumR2Norm(t *testing.T) {
	v := New(3, 4)

	got := Abs(v)
	want := r2.Norm(toR2(v))

	if !almostEqual(got, want) {
		t.Fatalf("Abs(%v) = %v, gonum r2.Norm = %v", v, got, want)
	}
}
