package orrery

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const angleε = 1e-9

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !scalar.EqualWithinAbsOrRel(a[i], b[i], 1e-6, 1e-9) {
			return false
		}
	}
	return true
}

//anglesEqual returns whether two angles in Radians are equal.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Mod(math.Abs(a-b), 2*math.Pi)
	diff = math.Min(diff, 2*math.Pi-diff)
	if diff < angleε {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10f degrees", math.Abs(Rad2deg(diff)))
}

// earthMass yields μ = 3.986004418e14 m^3/s^2 for its satellites.
const earthMass = 3.986004418e14 / G

// newEarthSystem returns Sol, Earth and Luna, plus a probe orbiting Luna.
func newEarthSystem(t *testing.T) (s *System, sol, earth, luna, probe BodyID) {
	t.Helper()
	s = NewSystem("test")
	var err error
	if sol, err = s.AddRoot("Sol", Star, 696000e3, 1.9891e30); err != nil {
		t.Fatal(err)
	}
	if earth, err = s.Add("Earth", sol, Planet, 6371e3, 5.9724e24, Elements{SMA: 149.6e9, Ecc: 0.0167086, Inc: 1.578690, TrueAnomaly: 10, RAAN: 174.873, ArgPeri: 288.1}); err != nil {
		t.Fatal(err)
	}
	if luna, err = s.Add("Luna", earth, Moon, 1737.1e3, 0.07346e24, Elements{SMA: .3844e9, Inc: 5.145, TrueAnomaly: 45}); err != nil {
		t.Fatal(err)
	}
	if probe, err = s.Add("Probe", luna, Asteroid, 1, 1000, Elements{SMA: 5e6, Ecc: 0.2, Inc: 80, TrueAnomaly: 30, RAAN: 12, ArgPeri: 70}); err != nil {
		t.Fatal(err)
	}
	return
}
