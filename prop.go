package orrery

import (
	"fmt"
	"math"
	"time"

	"github.com/go-kit/kit/log/level"
)

// MinResolution is the smallest number of samples of an orbit: a single point is not an orbit.
const MinResolution = 2

// Track is an ordered sequence of 3D positions, in meters.
type Track [][]float64

// NewTrack returns a track of n points at the origin.
func NewTrack(n int) Track {
	t := make(Track, n)
	for i := range t {
		t[i] = []float64{0, 0, 0}
	}
	return t
}

// Add returns the elementwise sum of both tracks, which must be of the same length.
func (t Track) Add(o Track) Track {
	if len(t) != len(o) {
		panic(fmt.Errorf("cannot add tracks of %d and %d points", len(t), len(o)))
	}
	sum := make(Track, len(t))
	for i := range t {
		sum[i] = add(t[i], o[i])
	}
	return sum
}

// MaxAbs returns the largest absolute value of each coordinate over the track.
func (t Track) MaxAbs() []float64 {
	m := []float64{0, 0, 0}
	for _, p := range t {
		for j := 0; j < 3; j++ {
			m[j] = math.Max(m[j], math.Abs(p[j]))
		}
	}
	return m
}

// Radii returns the distance to the origin of each point.
func (t Track) Radii() []float64 {
	r := make([]float64, len(t))
	for i, p := range t {
		r[i] = norm(p)
	}
	return r
}

// GenerateOrbit returns `resolution` positions sampled uniformly in time over one full period
// of the body, starting at its position at epoch. Positions are expressed in the frame of the
// parent (see Offset to express them in the frame of the root). Both ends of the track
// are the same point since the samples span exactly one period.
// The root body has no orbit and returns a single point at the origin.
// The track is cached until a different resolution is requested, so the returned slice
// is shared and must not be modified.
func (s *System) GenerateOrbit(id BodyID, resolution int) (Track, error) {
	if resolution < MinResolution {
		return nil, fmt.Errorf("%w: %d < %d", ErrResolution, resolution, MinResolution)
	}
	b, err := s.Body(id)
	if err != nil {
		return nil, err
	}

	b.lock.Lock()
	defer b.lock.Unlock()
	if b.track != nil && b.trackRes == resolution {
		s.metrics.recordPropagation(b.name, "cached")
		return b.track, nil
	}
	if b.IsRoot() {
		return Track{{0, 0, 0}}, nil
	}

	start := time.Now()
	track, err := s.propagate(b, resolution)
	if err != nil {
		s.metrics.recordPropagation(b.name, "failed")
		level.Warn(s.logger).Log("subsys", "prop", "body", b.name, "resolution", resolution, "err", err)
		return nil, fmt.Errorf("%s: %w", b.name, err)
	}
	b.track = track
	b.trackRes = resolution
	s.metrics.recordPropagation(b.name, "computed")
	level.Debug(s.logger).Log("subsys", "prop", "body", b.name, "resolution", resolution, "took", time.Since(start))
	return track, nil
}

// propagate does not touch the cache.
func (s *System) propagate(b *Body, resolution int) (Track, error) {
	solver := s.solver(b)
	ν, iterations, err := solver.solve(solver.TimeGrid(resolution))
	s.metrics.recordIterations(iterations)
	if err != nil {
		return nil, err
	}
	h := s.angularMomentum(b)
	μ := s.gm(b)
	dcm := PerifocalToInertial(b.orbit.i, b.orbit.Ω, b.orbit.ω)
	track := make(Track, resolution)
	for k, νk := range ν {
		track[k] = MxV33(dcm, PerifocalPosition(νk, h, μ, b.orbit.e))
	}
	return track, nil
}
