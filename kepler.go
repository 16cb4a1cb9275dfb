package orrery

import (
	"math"
)

const (
	// DefaultTolerance is the default convergence threshold on the eccentric anomaly, in radians.
	DefaultTolerance = 1e-12
	// DefaultMaxIterations caps the Newton iterations of the Kepler solver.
	DefaultMaxIterations = 100
)

// KeplerSolver maps time since periapsis to true anomaly for a closed orbit.
type KeplerSolver struct {
	e, a, μ, ν0   float64
	tolerance     float64
	maxIterations int
}

// NewKeplerSolver returns a solver with the default tolerance and iteration cap.
// The eccentricity must be in [0, 1), the semi major axis (m) and μ (m^3/s^2) positive,
// and the true anomaly at epoch ν0 is in radians.
func NewKeplerSolver(e, a, μ, ν0 float64) KeplerSolver {
	return KeplerSolver{e, a, μ, ν0, DefaultTolerance, DefaultMaxIterations}
}

// Precise returns a copy of this solver with the provided tolerance and iteration cap.
// Non positive values keep the current settings.
func (k KeplerSolver) Precise(tolerance float64, maxIterations int) KeplerSolver {
	if tolerance > 0 {
		k.tolerance = tolerance
	}
	if maxIterations > 0 {
		k.maxIterations = maxIterations
	}
	return k
}

// Period returns the orbital period in seconds.
func (k KeplerSolver) Period() float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(k.a, 3)/k.μ)
}

// TimeSincePeriapsis returns the time elapsed since periapsis at epoch, in [0, T).
// Starting the sample grid there puts the first sample where the body actually is at epoch.
func (k KeplerSolver) TimeSincePeriapsis() float64 {
	T := k.Period()
	E := EccentricFromTrue(k.ν0, k.e)
	t := T / (2 * math.Pi) * MeanAnomaly(E, k.e)
	if t < 0 {
		t += T
	}
	return t
}

// TimeGrid returns `resolution` times uniformly spaced over one period, both ends included,
// starting at TimeSincePeriapsis.
func (k KeplerSolver) TimeGrid(resolution int) []float64 {
	t0 := k.TimeSincePeriapsis()
	T := k.Period()
	times := make([]float64, resolution)
	if resolution == 1 {
		times[0] = t0
		return times
	}
	step := T / float64(resolution-1)
	for i := range times {
		times[i] = t0 + float64(i)*step
	}
	// Avoid accumulating the step rounding on the last sample.
	times[resolution-1] = t0 + T
	return times
}

// TrueAnomalyAtTimes returns the true anomaly (radians) at each time since periapsis.
// Circular orbits are swept linearly. Otherwise, Kepler's equation is solved for each sample.
func (k KeplerSolver) TrueAnomalyAtTimes(times []float64) ([]float64, error) {
	ν, _, err := k.solve(times)
	return ν, err
}

// solve also returns the number of Newton iterations of each sample (nil for circular orbits).
func (k KeplerSolver) solve(times []float64) (ν []float64, iterations []int, err error) {
	n := 2 * math.Pi / k.Period() // mean motion
	ν = make([]float64, len(times))
	if k.e == 0 {
		for i, t := range times {
			ν[i] = n * t
		}
		return ν, nil, nil
	}
	iterations = make([]int, len(times))
	for i, t := range times {
		M := n * t
		E, its, err := EccentricAnomaly(M, k.e, k.tolerance, k.maxIterations)
		iterations[i] = its
		if err != nil {
			return nil, iterations[:i+1], &KeplerError{Sample: i, M: M, E: E, Ecc: k.e, Iterations: its}
		}
		ν[i] = TrueFromEccentric(E, k.e)
	}
	return ν, iterations, nil
}

// MeanAnomaly returns M from the eccentric anomaly E (Kepler's equation).
func MeanAnomaly(E, e float64) float64 {
	return E - e*math.Sin(E)
}

// EccentricAnomaly solves Kepler's equation M = E - e*sin(E) for E with Newton's method.
// The iteration is seeded with E = M after removing whole revolutions from M, which are
// added back to the solution. It returns the number of iterations used, and an error if
// |ΔE| did not drop below the tolerance within maxIterations.
func EccentricAnomaly(M, e, tolerance float64, maxIterations int) (E float64, iterations int, err error) {
	Mr, revs := wrapπ(M)
	E = Mr
	for iterations < maxIterations {
		iterations++
		ΔE := (E - e*math.Sin(E) - Mr) / (1 - e*math.Cos(E))
		E -= ΔE
		if math.IsNaN(E) {
			break
		}
		// The root satisfies |E-M| = e|sin(E)| <= e, so large overshoots are clamped back.
		E = math.Max(Mr-e, math.Min(Mr+e, E))
		if math.Abs(ΔE) < tolerance {
			return E + 2*math.Pi*revs, iterations, nil
		}
	}
	return E + 2*math.Pi*revs, iterations, ErrNoConvergence
}

// TrueFromEccentric returns the true anomaly from the eccentric anomaly, in (-π, π].
func TrueFromEccentric(E, e float64) float64 {
	return 2 * math.Atan(math.Sqrt((1+e)/(1-e))*math.Tan(E/2))
}

// EccentricFromTrue returns the eccentric anomaly from the true anomaly, in (-π, π].
func EccentricFromTrue(ν, e float64) float64 {
	return 2 * math.Atan(math.Sqrt((1-e)/(1+e))*math.Tan(ν/2))
}
