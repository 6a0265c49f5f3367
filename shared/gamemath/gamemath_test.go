package gamemath

import (
	"math"
	"testing"
)

const eps = 1e-9

func deg(d float64) float64 { return d * math.Pi / 180 }

func TestNudgeFromAxes(t *testing.T) {
	band := deg(15)
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"on zero axis goes positive", 0, deg(15)},
		{"just below zero axis", deg(-3), deg(-15)},
		{"just above right angle", deg(95), deg(105)},
		{"just below right angle", deg(80), deg(75)},
		{"near straight angle", deg(182), deg(195)},
		{"near three quarter turn", deg(268), deg(255)},
		{"near full turn", deg(359), deg(345)},
		{"outside band untouched", deg(40), deg(40)},
		{"band edge untouched", deg(15), deg(15)},
	}
	for _, tc := range cases {
		got := NudgeFromAxes(tc.in, band)
		if math.Abs(got-tc.want) > eps {
			t.Fatalf("%s: NudgeFromAxes(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestDeflectIsUnitAndLeavesPaddle(t *testing.T) {
	tangent := Vec2{X: 1}
	normal := Vec2{Y: 1}
	for _, rel := range []float64{-0.5, 0, 0.25, 0.5, 0.75, 1, 1.5} {
		d := Deflect(rel, deg(90), tangent, normal)
		if math.Abs(d.Len()-1) > eps {
			t.Fatalf("rel %v: |d| = %v, want 1", rel, d.Len())
		}
		if d.Y <= 0 {
			t.Fatalf("rel %v: direction %v does not leave the paddle", rel, d)
		}
	}

	centre := Deflect(0.5, deg(90), tangent, normal)
	if math.Abs(centre.X) > eps || math.Abs(centre.Y-1) > eps {
		t.Fatalf("centre strike = %v, want straight along the normal", centre)
	}
	start := Deflect(0, deg(90), tangent, normal)
	end := Deflect(1, deg(90), tangent, normal)
	if start.X <= 0 || end.X >= 0 {
		t.Fatalf("start %v should lean +tangent and end %v -tangent", start, end)
	}
	if math.Abs(start.X-math.Sqrt2/2) > eps {
		t.Fatalf("start strike tangent = %v, want %v", start.X, math.Sqrt2/2)
	}
}

func TestScaleBoost(t *testing.T) {
	if got := ScaleBoost(1, 1.2, 3); math.Abs(got-1.2) > eps {
		t.Fatalf("ScaleBoost(1, 1.2, 3) = %v", got)
	}
	if got := ScaleBoost(2.9, 1.2, 3); got != 3 {
		t.Fatalf("lunge boost should cap at 3, got %v", got)
	}
	if got := ScaleBoost(1.98, 1.05, 2); got != 2 {
		t.Fatalf("passive boost should cap at 2, got %v", got)
	}
	if got := ScaleBoost(2.5, 1.05, 2); got != 2.5 {
		t.Fatalf("passive hit lowered a lunge boost to %v", got)
	}
}

func TestRectAndCircles(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 5}
	if !r.Contains(Vec2{X: 10, Y: 25}) {
		t.Fatal("edge point should be contained")
	}
	if r.Contains(Vec2{X: 9.9, Y: 22}) {
		t.Fatal("outside point reported inside")
	}
	in := r.Inflate(2)
	if in.X != 8 || in.Y != 18 || in.W != 34 || in.H != 9 {
		t.Fatalf("Inflate(2) = %+v", in)
	}
	if !CirclesOverlap(Vec2{}, 1, Vec2{X: 2}, 1) {
		t.Fatal("touching circles should overlap")
	}
	if CirclesOverlap(Vec2{}, 1, Vec2{X: 2.01}, 1) {
		t.Fatal("separate circles reported overlapping")
	}
	if _, ok := (Vec2{}).Normalized(); ok {
		t.Fatal("zero vector normalised")
	}
	if Clamp(5, 0, -1) != 0 {
		t.Fatal("inverted range should collapse to lo")
	}
}
