package orrery

import (
	"fmt"
)

// Elements defines an orbit relative to its parent via the classical orbital elements.
// Distances are in meters and angles in degrees, which is the unit bodies are
// described in. Angles are normalized to radians when the body is added to a System.
type Elements struct {
	SMA         float64 // Semi major axis a
	Ecc         float64 // Eccentricity e
	Inc         float64 // Inclination i
	TrueAnomaly float64 // True anomaly ν at epoch
	RAAN        float64 // Right ascension of the ascending node Ω
	ArgPeri     float64 // Argument of periapsis ω
}

// Validate returns an error if these elements cannot describe a closed two-body orbit.
func (el Elements) Validate() error {
	if !finite(el.SMA, el.Ecc, el.Inc, el.TrueAnomaly, el.RAAN, el.ArgPeri) {
		return fmt.Errorf("%w: non finite element in %s", ErrInvalidElements, el)
	}
	if el.SMA <= 0 {
		return fmt.Errorf("%w: semi major axis must be positive (a=%g)", ErrInvalidElements, el.SMA)
	}
	if el.Ecc < 0 || el.Ecc >= 1 {
		// Parabolic and hyperbolic orbits are not closed, so there is no period to sample.
		return fmt.Errorf("%w: eccentricity must be in [0, 1) (e=%g)", ErrInvalidElements, el.Ecc)
	}
	return nil
}

// SemiParameter returns the semi parameter p.
func (el Elements) SemiParameter() float64 {
	return el.SMA * (1 - el.Ecc*el.Ecc)
}

// Apoapsis returns the apoapsis radius.
func (el Elements) Apoapsis() float64 {
	return el.SMA * (1 + el.Ecc)
}

// Periapsis returns the periapsis radius.
func (el Elements) Periapsis() float64 {
	return el.SMA * (1 - el.Ecc)
}

// String implements the stringer interface (hence the value receiver)
func (el Elements) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f ν=%.3f", el.SMA, el.Ecc, el.Inc, el.RAAN, el.ArgPeri, el.TrueAnomaly)
}

// orbit is the normalized form of Elements, with all angles in radians.
type orbit struct {
	a, e, i, Ω, ω, ν float64
}

func newOrbit(el Elements) orbit {
	return orbit{el.SMA, el.Ecc, Deg2rad(el.Inc), Deg2rad(el.RAAN), Deg2rad(el.ArgPeri), Deg2rad(el.TrueAnomaly)}
}

// Elements returns the orbital elements in degrees.
func (o orbit) Elements() Elements {
	return Elements{SMA: o.a, Ecc: o.e, Inc: Rad2deg(o.i), TrueAnomaly: Rad2deg(o.ν), RAAN: Rad2deg(o.Ω), ArgPeri: Rad2deg(o.ω)}
}
