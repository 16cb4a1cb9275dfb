package orrery

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestAngles(t *testing.T) {
	for _, c := range []struct {
		deg, rad float64
	}{
		{0, 0}, {30, math.Pi / 6}, {90, math.Pi / 2}, {180, math.Pi}, {270, 3 * math.Pi / 2},
		{360, 0}, {-90, 3 * math.Pi / 2}, {750, math.Pi / 6}, {-720, 0},
	} {
		if got := Deg2rad(c.deg); !scalar.EqualWithinAbs(got, c.rad, 1e-12) {
			t.Fatalf("Deg2rad(%f) = %f != %f", c.deg, got, c.rad)
		}
	}
	for i := 0.0; i < 360; i += 0.5 {
		if back := Rad2deg(Deg2rad(i)); !scalar.EqualWithinAbs(back, i, 1e-9) {
			t.Fatalf("Rad2deg(Deg2rad(%f)) = %f", i, back)
		}
		if ok, err := anglesEqual(Deg2rad(i-360), Deg2rad(i)); !ok {
			t.Fatalf("%f: %s", i, err)
		}
	}
}

func TestWrapπ(t *testing.T) {
	for a := -20.0; a <= 20; a += 0.37 {
		w, revs := wrapπ(a)
		if w < -math.Pi || w >= math.Pi {
			t.Fatalf("wrapπ(%f) = %f out of [-π, π)", a, w)
		}
		if revs != math.Trunc(revs) {
			t.Fatalf("wrapπ(%f) removed %f revolutions", a, revs)
		}
		if !scalar.EqualWithinAbs(w+2*math.Pi*revs, a, 1e-12) {
			t.Fatalf("wrapπ(%f) = %f + %f revs", a, w, revs)
		}
	}
	if w, revs := wrapπ(1); w != 1 || revs != 0 {
		t.Fatalf("wrapπ(1) = %f, %f", w, revs)
	}
}

func TestMisc(t *testing.T) {
	if n := Norm([]float64{3, 4, 0}); n != 5 {
		t.Fatalf("norm = %f", n)
	}
	if !vectorsEqual(add([]float64{1, 2, 3}, []float64{-1, 0.5, 7}), []float64{0, 2.5, 10}) {
		t.Fatal("add fail")
	}
	if !finite(1, 2, -3) || finite(1, math.NaN()) || finite(math.Inf(-1)) {
		t.Fatal("finite fail")
	}
}
