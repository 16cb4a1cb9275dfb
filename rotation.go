package orrery

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PerifocalToInertial returns the direction cosine matrix from the perifocal (PQW) frame
// to the inertial frame of the parent, given the inclination, the RAAN and the argument
// of periapsis, all in radians.
// This is R3(-Ω)*R1(-i)*R3(-ω), written out to avoid the two matrix products per body.
func PerifocalToInertial(i, Ω, ω float64) *mat.Dense {
	si, ci := math.Sincos(i)
	sa, ca := math.Sincos(Ω)
	sw, cw := math.Sincos(ω)
	return mat.NewDense(3, 3, []float64{
		-sa*ci*sw + ca*cw, -sa*ci*cw - ca*sw, sa * si,
		ca*ci*sw + sa*cw, ca*ci*cw - sa*sw, -ca * si,
		si * sw, si * cw, ci})
}

// PerifocalPosition returns the position in the orbital plane at true anomaly θ (radians)
// for an orbit of specific angular momentum h, gravitational parameter μ and eccentricity e.
func PerifocalPosition(θ, h, μ, e float64) []float64 {
	sinθ, cosθ := math.Sincos(θ)
	r := h * h / μ / (1 + e*cosθ)
	return []float64{r * cosθ, r * sinθ, 0}
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m mat.Matrix, v []float64) (o []float64) {
	vVec := mat.NewVecDense(len(v), v)
	var rVec mat.VecDense
	rVec.MulVec(m, vVec)
	return []float64{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}
