package orrery

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidElements is returned when orbital elements cannot describe a closed orbit.
	ErrInvalidElements = errors.New("orrery: invalid orbital elements")
	// ErrInvalidBody is returned for non positive masses or radii.
	ErrInvalidBody = errors.New("orrery: invalid body")
	// ErrUnknownBody is returned for a handle which is not part of the system.
	ErrUnknownBody = errors.New("orrery: unknown body")
	// ErrRootExists is returned when adding a second root to a system.
	ErrRootExists = errors.New("orrery: system already has a root")
	// ErrNoRoot is returned when a system has no root yet.
	ErrNoRoot = errors.New("orrery: system has no root")
	// ErrResolution is returned when asking for fewer than MinResolution samples.
	ErrResolution = errors.New("orrery: invalid resolution")
	// ErrNoConvergence is returned when Kepler's equation could not be solved.
	ErrNoConvergence = errors.New("orrery: Kepler's equation did not converge")
)

// KeplerError wraps a solver failure with the sample it happened on.
type KeplerError struct {
	Sample     int
	M          float64 // Mean anomaly
	E          float64 // Last eccentric anomaly iterate
	Ecc        float64
	Iterations int
}

func (e *KeplerError) Error() string {
	return fmt.Sprintf("%s: sample %d (M=%g e=%g) after %d iterations (E=%g)", ErrNoConvergence, e.Sample, e.M, e.Ecc, e.Iterations, e.E)
}

func (e *KeplerError) Unwrap() error {
	return ErrNoConvergence
}
