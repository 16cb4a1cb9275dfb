package orrery

import (
	"fmt"
)

// Offset returns, for each of the `resolution` samples, the position of the parent of id
// expressed in the frame of the root: adding it to GenerateOrbit re-bases the orbit onto
// the root. The root has a zero offset.
//
// Each ancestor contributes the first point of its own track, i.e. its position at epoch,
// repeated over all samples. A moon therefore circles a fixed snapshot of its planet rather
// than following it along its orbit.
func (s *System) Offset(id BodyID, resolution int) (Track, error) {
	if resolution < MinResolution {
		return nil, fmt.Errorf("%w: %d < %d", ErrResolution, resolution, MinResolution)
	}
	b, err := s.Body(id)
	if err != nil {
		return nil, err
	}
	offset := NewTrack(resolution)
	for !b.IsRoot() {
		parent := s.bodies[b.parent]
		track, err := s.GenerateOrbit(parent.id, resolution)
		if err != nil {
			return nil, fmt.Errorf("offset of %s: %w", b.name, err)
		}
		for k := range offset {
			offset[k] = add(offset[k], track[0])
		}
		b = parent
	}
	return offset, nil
}

// Absolute returns the track of id expressed in the frame of the root (Offset + GenerateOrbit).
// The root returns `resolution` points at the origin.
func (s *System) Absolute(id BodyID, resolution int) (Track, error) {
	offset, err := s.Offset(id, resolution)
	if err != nil {
		return nil, err
	}
	b := s.bodies[id]
	if b.IsRoot() {
		return offset, nil
	}
	track, err := s.GenerateOrbit(id, resolution)
	if err != nil {
		return nil, err
	}
	return offset.Add(track), nil
}

// Bounds returns the largest absolute value of each coordinate reached by id or any of its
// descendants, in the frame of the root. This is the half-size of a box containing the
// whole subsystem, e.g. to scale a plot.
func (s *System) Bounds(id BodyID, resolution int) ([]float64, error) {
	bounds := []float64{0, 0, 0}
	err := s.Walk(id, func(b *Body, _ int) error {
		track, err := s.Absolute(b.id, resolution)
		if err != nil {
			return err
		}
		for j, v := range track.MaxAbs() {
			if v > bounds[j] {
				bounds[j] = v
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bounds, nil
}
