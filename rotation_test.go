package orrery

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestR1R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r1 := R1(x)
	r3 := R3(x)
	if r1.At(0, 0) != 1 || r3.At(2, 2) != 1 {
		t.Fatal("expected R1.At(0, 0) = R3.At(2, 2) = 1")
	}
	if r1.At(1, 1) != c || r1.At(2, 2) != c || r1.At(1, 2) != s || r1.At(2, 1) != -s {
		t.Fatal("R1 misplaced trigonometric terms")
	}
	if r3.At(0, 0) != c || r3.At(1, 1) != c || r3.At(0, 1) != s || r3.At(1, 0) != -s {
		t.Fatal("R3 misplaced trigonometric terms")
	}
	if r3.At(2, 0) != 0 || r3.At(0, 2) != 0 || r1.At(0, 1) != 0 || r1.At(1, 0) != 0 {
		t.Fatal("misplaced zeros")
	}
}

func TestPerifocalToInertial(t *testing.T) {
	for _, c := range []struct{ i, Ω, ω float64 }{
		{0, 0, 0}, {5.145, 0, 0}, {87.87, 227.89, 53.38}, {112.783, 223.046, 0}, {179, 359, 1},
	} {
		i, Ω, ω := Deg2rad(c.i), Deg2rad(c.Ω), Deg2rad(c.ω)
		dcm := PerifocalToInertial(i, Ω, ω)
		var tmp, exp mat.Dense
		tmp.Mul(R1(-i), R3(-ω))
		exp.Mul(R3(-Ω), &tmp)
		if !mat.EqualApprox(dcm, &exp, 1e-12) {
			t.Logf("\n%v", mat.Formatted(dcm))
			t.Logf("\n%v", mat.Formatted(&exp))
			t.Fatalf("DCM(%+v) is not R3(-Ω)*R1(-i)*R3(-ω)", c)
		}
		// Rotations are orthonormal.
		var id mat.Dense
		id.Mul(dcm.T(), dcm)
		if !mat.EqualApprox(&id, eye(), 1e-12) {
			t.Fatalf("DCM(%+v) is not orthogonal", c)
		}
		if det := mat.Det(dcm); math.Abs(det-1) > 1e-12 {
			t.Fatalf("DCM(%+v) determinant = %f", c, det)
		}
	}
	if !mat.EqualApprox(PerifocalToInertial(0, 0, 0), eye(), 1e-15) {
		t.Fatal("zero angles should lead to identity")
	}
	// Polar orbit: Q points to the pole.
	if q := MxV33(PerifocalToInertial(math.Pi/2, 0, 0), []float64{0, 1, 0}); !vectorsEqual(q, []float64{0, 0, 1}) {
		t.Fatalf("Q = %+v", q)
	}
	// Only ω: rotation within the reference plane.
	if p := MxV33(PerifocalToInertial(0, 0, math.Pi/2), []float64{1, 0, 0}); !vectorsEqual(p, []float64{0, 1, 0}) {
		t.Fatalf("P = %+v", p)
	}
}

func TestPerifocalPosition(t *testing.T) {
	μ := 3.986004418e14
	a, e := 1e7, 0.5
	h := math.Sqrt(μ * a * (1 - e*e))
	if r := PerifocalPosition(0, h, μ, e); !vectorsEqual(r, []float64{a * (1 - e), 0, 0}) {
		t.Fatalf("periapsis = %+v", r)
	}
	if r := PerifocalPosition(math.Pi, h, μ, e); !vectorsEqual(r, []float64{-a * (1 + e), 0, 0}) {
		t.Fatalf("apoapsis = %+v", r)
	}
	if r := PerifocalPosition(math.Pi/2, h, μ, e); !vectorsEqual(r, []float64{0, a * (1 - e*e), 0}) {
		t.Fatalf("semi parameter = %+v", r)
	}
}

func eye() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}
